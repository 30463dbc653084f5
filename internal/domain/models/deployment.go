package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// Record keys that are not contract names
const (
	keyBlockNumber  = "blockNumber"
	keyTotalGasUsed = "totalGasUsed"
	keyGasPrice     = "gasPrice"
	keyTotalGasCost = "totalGasCost"
	keyTimestamp    = "timestamp"
	keyCommitRef    = "commitRef"
)

var recordFieldKeys = []string{
	keyBlockNumber,
	keyTotalGasUsed,
	keyGasPrice,
	keyTotalGasCost,
	keyTimestamp,
	keyCommitRef,
}

// DeploymentRecord is one entry of the deployment ledger. It is created once
// per successful run and never modified afterwards.
//
// On disk the contract addresses are top-level keys next to the summary
// fields, e.g.
//
//	{
//	  "MintController": "0x...",
//	  "WrappedPocket": "0x...",
//	  "blockNumber": "17000000",
//	  "totalGasUsed": "21000 gas",
//	  ...
//	}
type DeploymentRecord struct {
	Contracts    map[string]string // contract name -> address
	BlockNumber  string            // decimal
	TotalGasUsed string            // e.g. "21000 gas"
	GasPrice     string            // e.g. "1 gwei"
	TotalGasCost string            // e.g. "0.000021 ETH"
	Timestamp    string            // UTC, RFC 1123 with GMT zone
	CommitRef    string            // short git revision
}

// ContractNames returns the contract names in the record, sorted
func (r *DeploymentRecord) ContractNames() []string {
	names := lo.Keys(r.Contracts)
	slices.Sort(names)
	return names
}

// RecordEntry is one key/value pair of a record in storage order
type RecordEntry struct {
	Key   string
	Value string
}

// Entries returns the record's keys in storage order: contract addresses
// first (sorted by name), followed by the summary fields in a fixed order.
func (r DeploymentRecord) Entries() ([]RecordEntry, error) {
	entries := make([]RecordEntry, 0, len(r.Contracts)+len(recordFieldKeys))
	for _, name := range r.ContractNames() {
		if lo.Contains(recordFieldKeys, name) {
			return nil, fmt.Errorf("contract name %q collides with a record field", name)
		}
		entries = append(entries, RecordEntry{Key: name, Value: r.Contracts[name]})
	}

	return append(entries,
		RecordEntry{Key: keyBlockNumber, Value: r.BlockNumber},
		RecordEntry{Key: keyTotalGasUsed, Value: r.TotalGasUsed},
		RecordEntry{Key: keyGasPrice, Value: r.GasPrice},
		RecordEntry{Key: keyTotalGasCost, Value: r.TotalGasCost},
		RecordEntry{Key: keyTimestamp, Value: r.Timestamp},
		RecordEntry{Key: keyCommitRef, Value: r.CommitRef},
	), nil
}

// MarshalJSON writes a flat object in the order given by Entries
func (r DeploymentRecord) MarshalJSON() ([]byte, error) {
	entries, err := r.Entries()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, entry := range entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(entry.Key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(entry.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a flat record. Unknown string-valued keys are treated
// as contract addresses; null values decode as empty strings.
func (r *DeploymentRecord) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*r = DeploymentRecord{Contracts: make(map[string]string)}
	targets := map[string]*string{
		keyBlockNumber:  &r.BlockNumber,
		keyTotalGasUsed: &r.TotalGasUsed,
		keyGasPrice:     &r.GasPrice,
		keyTotalGasCost: &r.TotalGasCost,
		keyTimestamp:    &r.Timestamp,
		keyCommitRef:    &r.CommitRef,
	}

	for key, value := range raw {
		var s *string
		if err := json.Unmarshal(value, &s); err != nil {
			if _, known := targets[key]; known {
				return fmt.Errorf("field %s: %w", key, err)
			}
			// Not a string, so not an address either
			continue
		}
		if target, known := targets[key]; known {
			if s != nil {
				*target = *s
			}
			continue
		}
		if s != nil && strings.TrimSpace(*s) != "" {
			r.Contracts[key] = *s
		}
	}

	return nil
}
