package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/wpokt-deploy/internal/cli/render"
	"github.com/trebuchet-org/wpokt-deploy/internal/usecase"
)

// NewHistoryCmd creates the history command
func NewHistoryCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "history [network]",
		Short: "Show recorded deployments",
		Long: `Show the deployments recorded in the ledger, oldest first.

Without a network every network in the ledger is shown.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.ShowHistoryParams{}
			if len(args) > 0 {
				params.Network = args[0]
			}

			result, err := app.ShowHistory.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			renderer := render.NewHistoryRenderer(cmd.OutOrStdout())
			return renderer.RenderHistory(result, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", render.FormatTable, "Output format (table, json, yaml)")

	return cmd
}
