package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/wpokt-deploy/internal/config"
)

func TestRootCmd_Flags(t *testing.T) {
	cmd := NewRootCmd()

	tests := []struct {
		name     string
		defValue string
	}{
		{"project-root", ""},
		{"ledger", config.DefaultLedgerPath},
		{"script", config.DefaultScriptPath},
		{"compiler-version", config.DefaultCompilerVersion},
		{"debug", "false"},
		{"non-interactive", "false"},
		{"yes", "false"},
		{"pty", "false"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag := cmd.PersistentFlags().Lookup(tt.name)
			require.NotNil(t, flag)
			assert.Equal(t, tt.defValue, flag.DefValue)
		})
	}
}

func TestRootCmd_Subcommands(t *testing.T) {
	cmd := NewRootCmd()

	for _, name := range []string{"networks", "history", "version"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, sub.Name())
	}
}

func TestRootCmd_RejectsExtraArgs(t *testing.T) {
	cmd := NewRootCmd()
	cmd.SetArgs([]string{"sepolia", "mainnet"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts at most 1 arg")
}

func TestVersionCmd(t *testing.T) {
	config.SetBuildFlags("v1.2.3", "abc1234", "2024-01-01")
	t.Cleanup(func() { config.SetBuildFlags("dev", "unknown", "unknown") })

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetArgs([]string{"version"})
	cmd.SetOut(&out)

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "wpokt-deploy version v1.2.3 (commit abc1234, built 2024-01-01)\n", out.String())
}
