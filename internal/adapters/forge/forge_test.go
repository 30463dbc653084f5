package forge

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/wpokt-deploy/internal/domain"
	"github.com/trebuchet-org/wpokt-deploy/internal/domain/config"
)

// fakeRunner records the command instead of running it
type fakeRunner struct {
	commands []Command
	err      error
}

func (f *fakeRunner) Run(ctx context.Context, c Command) error {
	f.commands = append(f.commands, c)
	return f.err
}

func newTestForgeAdapter(runner streamingRunner) *ForgeAdapter {
	return &ForgeAdapter{
		log:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		runner:      runner,
		projectRoot: "/tmp/project",
		scriptPath:  "scripts/Deploy.s.sol",
	}
}

func testNetwork() *config.Network {
	return &config.Network{
		Name:       "sepolia",
		ChainID:    11155111,
		RPCURL:     "https://sepolia.infura.io/v3/project-id",
		SigningKey: "0xsecretkey",
	}
}

func TestForgeAdapter_Deploy(t *testing.T) {
	runner := &fakeRunner{}
	adapter := newTestForgeAdapter(runner)

	require.NoError(t, adapter.Deploy(context.Background(), testNetwork()))
	require.Len(t, runner.commands, 1)

	cmd := runner.commands[0]
	assert.Equal(t, "forge", cmd.Name)
	assert.Equal(t, "/tmp/project", cmd.Dir)
	assert.Equal(t, []string{
		"script", "scripts/Deploy.s.sol",
		"--broadcast",
		"--rpc-url", "https://sepolia.infura.io/v3/project-id",
		"--private-key", "0xsecretkey",
	}, cmd.Args)

	// Secrets never show up in the printable form
	assert.Equal(t, "forge script scripts/Deploy.s.sol --broadcast --rpc-url *** --private-key ***", cmd.String())
}

func TestForgeAdapter_DeployFailure(t *testing.T) {
	runner := &fakeRunner{err: &domain.ToolError{Command: "forge script", Err: errors.New("exit status 1")}}
	adapter := newTestForgeAdapter(runner)

	err := adapter.Deploy(context.Background(), testNetwork())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrExternalToolFailure)
	assert.Contains(t, err.Error(), "forge script failed")
}

func TestForgeAdapter_BroadcastPath(t *testing.T) {
	adapter := newTestForgeAdapter(&fakeRunner{})

	assert.Equal(t,
		filepath.Join("/tmp/project", "broadcast", "Deploy.s.sol", "31337", "run-latest.json"),
		adapter.BroadcastPath(31337),
	)
}
