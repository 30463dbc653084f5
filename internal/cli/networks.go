package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/wpokt-deploy/internal/usecase"
	"github.com/trebuchet-org/wpokt-deploy/internal/cli/render"
)

// NewNetworksCmd creates the networks command
func NewNetworksCmd() *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "networks",
		Short: "List the networks contracts can be deployed to",
		Long: `List the supported networks with their chain id, RPC endpoint and block explorer.

RPC endpoints can be overridden in the [rpc_endpoints] section of foundry.toml.
With --check every endpoint is queried for the chain id it serves.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Get app from context
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListNetworks.Run(cmd.Context(), usecase.ListNetworksParams{Check: check})
			if err != nil {
				return err
			}

			renderer := render.NewNetworksRenderer(cmd.OutOrStdout())
			return renderer.RenderNetworksList(result)
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "Query each RPC endpoint for its chain id")

	return cmd
}
