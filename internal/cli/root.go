package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/wpokt-deploy/internal/app"
	"github.com/trebuchet-org/wpokt-deploy/internal/cli/render"
	"github.com/trebuchet-org/wpokt-deploy/internal/config"
	"github.com/trebuchet-org/wpokt-deploy/internal/usecase"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// NewRootCmd creates the root command. Called with a network name it deploys
// the wrapped POKT contracts to that network.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "wpokt-deploy <network>",
		Short: "Deploy and verify the wrapped POKT contracts with Foundry",
		Long: `wpokt-deploy runs the Foundry deploy script against a network, verifies the
deployed contracts on Etherscan and appends the addresses, gas usage and
commit to the deployment ledger.

Requires PRIVATE_KEY, INFURA_ID and ETHERSCAN_API_KEY in the environment or
in a .env file at the project root.`,
		Example: `  wpokt-deploy anvil
  wpokt-deploy sepolia --yes
  wpokt-deploy history mainnet --output json`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			projectRoot, err := cmd.Flags().GetString("project-root")
			if err != nil {
				return err
			}
			if projectRoot == "" {
				if projectRoot, err = config.FindProjectRoot(); err != nil {
					return err
				}
			}

			// Set up viper with env, config file and flags
			v := config.SetupViper(projectRoot, cmd)

			// Initialize app with DI
			appInstance, err := app.InitApp(v)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			// Store app in context
			ctx := context.WithValue(cmd.Context(), appKey, appInstance)
			cmd.SetContext(ctx)

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.DeployParams{}
			if len(args) > 0 {
				params.Network = args[0]
			}

			result, err := app.DeployContracts.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			renderer := render.NewDeployRenderer(cmd.OutOrStdout())
			return renderer.RenderDeployResult(result)
		},
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.String("project-root", "", "Foundry project root (defaults to the nearest directory with foundry.toml)")
	flags.String("ledger", config.DefaultLedgerPath, "Deployment ledger file, relative to the project root")
	flags.String("script", config.DefaultScriptPath, "Forge deploy script")
	flags.String("compiler-version", config.DefaultCompilerVersion, "Solidity compiler version passed to verification")
	flags.Bool("debug", false, "Enable debug output")
	flags.Bool("non-interactive", false, "Disable interactive prompts")
	flags.BoolP("yes", "y", false, "Skip the confirmation prompt for public networks")
	flags.Bool("pty", false, "Run forge in a pseudo-terminal to keep its colored output")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands",
	})

	networksCmd := NewNetworksCmd()
	networksCmd.GroupID = "management"
	rootCmd.AddCommand(networksCmd)

	historyCmd := NewHistoryCmd()
	historyCmd.GroupID = "management"
	rootCmd.AddCommand(historyCmd)

	// Version command
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}
