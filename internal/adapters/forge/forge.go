package forge

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/trebuchet-org/wpokt-deploy/internal/domain/config"
	"github.com/trebuchet-org/wpokt-deploy/internal/usecase"
)

// streamingRunner runs a command with inherited output
type streamingRunner interface {
	Run(ctx context.Context, c Command) error
}

// ForgeAdapter runs the forge deploy script
type ForgeAdapter struct {
	log         *slog.Logger
	runner      streamingRunner
	projectRoot string
	scriptPath  string
}

// NewForgeAdapter creates a new forge adapter
func NewForgeAdapter(cfg *config.RuntimeConfig, runner *Runner, log *slog.Logger) *ForgeAdapter {
	return &ForgeAdapter{
		log:         log.With("component", "ForgeAdapter"),
		runner:      runner,
		projectRoot: cfg.ProjectRoot,
		scriptPath:  cfg.ScriptPath,
	}
}

// Deploy broadcasts the deploy script to the network. Output streams to the
// terminal; once the command returns the transactions are on chain.
func (f *ForgeAdapter) Deploy(ctx context.Context, network *config.Network) error {
	cmd := f.buildCommand(network)
	f.log.Debug("running forge script", "script", f.scriptPath, "network", network.Name, "chainId", network.ChainID)

	if err := f.runner.Run(ctx, cmd); err != nil {
		return fmt.Errorf("forge script failed: %w", err)
	}
	return nil
}

// buildCommand builds the forge script invocation
func (f *ForgeAdapter) buildCommand(network *config.Network) Command {
	return Command{
		Name: "forge",
		Args: []string{
			"script", f.scriptPath,
			"--broadcast",
			"--rpc-url", network.RPCURL,
			"--private-key", network.SigningKey,
		},
		Dir:    f.projectRoot,
		Redact: []string{network.SigningKey, network.RPCURL},
	}
}

// BroadcastPath returns the run-latest.json forge writes for the script on a chain
func (f *ForgeAdapter) BroadcastPath(chainID uint64) string {
	return filepath.Join(f.projectRoot, "broadcast", filepath.Base(f.scriptPath), fmt.Sprintf("%d", chainID), "run-latest.json")
}

var _ usecase.ScriptDeployer = (*ForgeAdapter)(nil)
