package render

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/trebuchet-org/wpokt-deploy/internal/usecase"
)

// NetworksRenderer renders network lists
type NetworksRenderer struct {
	out io.Writer
}

// NewNetworksRenderer creates a new networks renderer
func NewNetworksRenderer(out io.Writer) *NetworksRenderer {
	return &NetworksRenderer{out: out}
}

// RenderNetworksList renders the registry as a table
func (r *NetworksRenderer) RenderNetworksList(result *usecase.ListNetworksResult) error {
	if len(result.Networks) == 0 {
		fmt.Fprintln(r.out, "No networks configured")
		return nil
	}

	fmt.Fprintln(r.out, "🌐 Available Networks:")
	fmt.Fprintln(r.out)

	t := newTable()
	t.AppendHeader(table.Row{"NETWORK", "CHAIN ID", "RPC URL", "EXPLORER"})
	for _, network := range result.Networks {
		if network.Error != nil && network.ChainID == 0 {
			t.AppendRow(table.Row{network.Name, "-", FormatError(network.Error.Error()), ""})
			continue
		}

		name := nameStyle.Sprint(network.Name)
		if network.Local {
			name += " " + localStyle.Sprint("(local)")
		}
		switch {
		case network.Reachable:
			name += " " + FormatSuccess("reachable")
		case network.Error != nil:
			name += " " + FormatError(network.Error.Error())
		}
		t.AppendRow(table.Row{name, network.ChainID, network.RPCURL, network.ExplorerURL})
	}
	fmt.Fprintln(r.out, t.Render())

	return nil
}
