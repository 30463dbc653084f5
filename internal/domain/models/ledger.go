package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
)

// Ledger maps network names to their deployment records in deployment order.
// Records already in the ledger are kept as raw JSON so that rewriting the
// file never changes them. Network key order follows the loaded document;
// networks seen for the first time are appended at the end.
type Ledger struct {
	networks []string
	entries  map[string][]json.RawMessage
}

// NewLedger returns an empty ledger
func NewLedger() *Ledger {
	return &Ledger{entries: make(map[string][]json.RawMessage)}
}

// Networks returns the network names in document order
func (l *Ledger) Networks() []string {
	return slices.Clone(l.networks)
}

// Len returns the number of records stored for a network
func (l *Ledger) Len(network string) int {
	return len(l.entries[network])
}

// Append adds a record to the end of the network's sequence, creating the
// sequence if needed. Other networks are untouched.
func (l *Ledger) Append(network string, record DeploymentRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode deployment record: %w", err)
	}
	l.ensure(network)
	l.entries[network] = append(l.entries[network], json.RawMessage(data))
	return nil
}

// Records decodes the records stored for a network
func (l *Ledger) Records(network string) ([]DeploymentRecord, error) {
	raw := l.entries[network]
	records := make([]DeploymentRecord, 0, len(raw))
	for i, entry := range raw {
		var record DeploymentRecord
		if err := json.Unmarshal(entry, &record); err != nil {
			return nil, fmt.Errorf("failed to decode %s record %d: %w", network, i, err)
		}
		records = append(records, record)
	}
	return records, nil
}

func (l *Ledger) ensure(network string) {
	if l.entries == nil {
		l.entries = make(map[string][]json.RawMessage)
	}
	if _, ok := l.entries[network]; !ok {
		l.networks = append(l.networks, network)
		l.entries[network] = []json.RawMessage{}
	}
}

// MarshalJSON writes networks in ledger order
func (l *Ledger) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, network := range l.networks {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(network)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		buf.WriteByte('[')
		for j, entry := range l.entries[network] {
			if j > 0 {
				buf.WriteByte(',')
			}
			buf.Write(entry)
		}
		buf.WriteByte(']')
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a ledger document, remembering the key order
func (l *Ledger) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("ledger must be a JSON object")
	}

	*l = Ledger{entries: make(map[string][]json.RawMessage)}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		network, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected ledger key %v", tok)
		}

		var entries []json.RawMessage
		if err := dec.Decode(&entries); err != nil {
			return fmt.Errorf("ledger entry %s must be an array of records: %w", network, err)
		}
		if entries == nil {
			entries = []json.RawMessage{}
		}

		if _, seen := l.entries[network]; !seen {
			l.networks = append(l.networks, network)
		}
		l.entries[network] = entries
	}

	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}
