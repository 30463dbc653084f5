package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/trebuchet-org/wpokt-deploy/internal/domain/models"
	"github.com/trebuchet-org/wpokt-deploy/internal/usecase"
	"gopkg.in/yaml.v3"
)

// Output formats of the history command
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// HistoryRenderer renders ledger records
type HistoryRenderer struct {
	out io.Writer
}

// NewHistoryRenderer creates a new history renderer
func NewHistoryRenderer(out io.Writer) *HistoryRenderer {
	return &HistoryRenderer{out: out}
}

// RenderHistory renders the result in the requested format
func (r *HistoryRenderer) RenderHistory(result *usecase.ShowHistoryResult, format string) error {
	switch format {
	case "", FormatTable:
		return r.renderTable(result)
	case FormatJSON:
		return r.renderJSON(result)
	case FormatYAML:
		return r.renderYAML(result)
	default:
		return fmt.Errorf("unsupported output format %q (expected %s, %s or %s)", format, FormatTable, FormatJSON, FormatYAML)
	}
}

func (r *HistoryRenderer) renderTable(result *usecase.ShowHistoryResult) error {
	if len(result.Networks) == 0 {
		fmt.Fprintf(r.out, "No deployments recorded in %s\n", result.LedgerPath)
		return nil
	}

	for i, history := range result.Networks {
		if i > 0 {
			fmt.Fprintln(r.out)
		}
		fmt.Fprintf(r.out, "%s %s\n", networkBg.Sprintf(" %s ", history.Network),
			labelStyle.Sprintf("%d deployment(s)", len(history.Records)))

		t := newTable()
		t.AppendHeader(table.Row{"#", "CONTRACTS", "BLOCK", "GAS USED", "GAS PRICE", "COST", "COMMIT", "TIMESTAMP"})
		for n, record := range history.Records {
			t.AppendRow(table.Row{
				n + 1,
				formatContracts(record),
				record.BlockNumber,
				record.TotalGasUsed,
				record.GasPrice,
				record.TotalGasCost,
				record.CommitRef,
				labelStyle.Sprint(record.Timestamp),
			})
		}
		fmt.Fprintln(r.out, t.Render())
	}
	return nil
}

// formatContracts lists one "name address" pair per line
func formatContracts(record models.DeploymentRecord) string {
	var buf bytes.Buffer
	for i, name := range record.ContractNames() {
		if i > 0 {
			buf.WriteByte('\n')
		}
		fmt.Fprintf(&buf, "%s %s", nameStyle.Sprint(name), addressStyle.Sprint(record.Contracts[name]))
	}
	return buf.String()
}

// renderJSON writes the selected networks in ledger layout
func (r *HistoryRenderer) renderJSON(result *usecase.ShowHistoryResult) error {
	ledger := models.NewLedger()
	for _, history := range result.Networks {
		for _, record := range history.Records {
			if err := ledger.Append(history.Network, record); err != nil {
				return err
			}
		}
	}

	enc := json.NewEncoder(r.out)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(ledger)
}

// renderYAML builds the document node by node so that key order matches
// the ledger file
func (r *HistoryRenderer) renderYAML(result *usecase.ShowHistoryResult) error {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, history := range result.Networks {
		records := &yaml.Node{Kind: yaml.SequenceNode}
		for _, record := range history.Records {
			node, err := recordNode(record)
			if err != nil {
				return err
			}
			records.Content = append(records.Content, node)
		}
		root.Content = append(root.Content, scalarNode(history.Network), records)
	}

	enc := yaml.NewEncoder(r.out)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return err
	}
	return enc.Close()
}

func recordNode(record models.DeploymentRecord) (*yaml.Node, error) {
	entries, err := record.Entries()
	if err != nil {
		return nil, err
	}

	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, entry := range entries {
		node.Content = append(node.Content, scalarNode(entry.Key), scalarNode(entry.Value))
	}
	return node, nil
}

func scalarNode(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}
