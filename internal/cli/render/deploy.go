package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/trebuchet-org/wpokt-deploy/internal/usecase"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DeployRenderer renders the summary of a deployment run
type DeployRenderer struct {
	out io.Writer
}

// NewDeployRenderer creates a new deploy renderer
func NewDeployRenderer(out io.Writer) *DeployRenderer {
	return &DeployRenderer{out: out}
}

// RenderDeployResult renders addresses, gas usage and where the record went
func (r *DeployRenderer) RenderDeployResult(result *usecase.DeployResult) error {
	network := result.Network
	title := cases.Title(language.English).String(network.Name)

	fmt.Fprintln(r.out)
	fmt.Fprintf(r.out, "%s\n\n", networkBg.Sprintf(" %s (chain %d) ", title, network.ChainID))

	if result.Deployer != "" {
		fmt.Fprintf(r.out, "%s %s\n\n", labelStyle.Sprint("Deployer:"), addressStyle.Sprint(result.Deployer))
	}

	// Contracts
	headerStyle.Fprintln(r.out, "Contracts")
	t := newTable()
	for _, name := range result.Record.ContractNames() {
		t.AppendRow(table.Row{"  " + nameStyle.Sprint(name), addressStyle.Sprint(result.Record.Contracts[name])})
	}
	fmt.Fprintln(r.out, t.Render())
	fmt.Fprintln(r.out)

	// Gas
	headerStyle.Fprintln(r.out, "Gas")
	g := newTable()
	g.AppendRows([]table.Row{
		{"  " + labelStyle.Sprint("Block number"), result.Record.BlockNumber},
		{"  " + labelStyle.Sprint("Total gas used"), result.Record.TotalGasUsed},
		{"  " + labelStyle.Sprint("Gas price"), result.Record.GasPrice},
		{"  " + labelStyle.Sprint("Total gas cost"), result.Record.TotalGasCost},
	})
	fmt.Fprintln(r.out, g.Render())
	fmt.Fprintln(r.out)

	// Verification
	if result.SkippedVerify {
		fmt.Fprintln(r.out, FormatWarning(fmt.Sprintf("Verification skipped on %s", network.Name)))
	} else {
		for _, v := range result.Verified {
			if v.URL != "" {
				fmt.Fprintf(r.out, "%s %s\n", FormatSuccess(fmt.Sprintf("%s verified", v.Name)), color.New(color.Faint).Sprint(v.URL))
			} else {
				fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("%s verified", v.Name)))
			}
		}
	}

	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Saved deployment to %s (commit %s)", result.LedgerPath, result.Record.CommitRef)))
	return nil
}
