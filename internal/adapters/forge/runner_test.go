package forge

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/wpokt-deploy/internal/domain"
)

func newTestRunner(t *testing.T, stdout, stderr io.Writer) *Runner {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	return &Runner{
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		stdin:  strings.NewReader(""),
		stdout: stdout,
		stderr: stderr,
	}
}

func sh(script string, redact ...string) Command {
	return Command{Name: "sh", Args: []string{"-c", script}, Redact: redact}
}

func TestRunner_RunInheritsStreams(t *testing.T) {
	var stdout, stderr bytes.Buffer
	runner := newTestRunner(t, &stdout, &stderr)

	err := runner.Run(context.Background(), sh("echo out; echo err >&2"))
	require.NoError(t, err)
	assert.Equal(t, "out\n", stdout.String())
	assert.Equal(t, "err\n", stderr.String())
}

func TestRunner_RunFailure(t *testing.T) {
	var stdout, stderr bytes.Buffer
	runner := newTestRunner(t, &stdout, &stderr)

	err := runner.Run(context.Background(), sh("echo 'rpc key-123 rejected' >&2; exit 3", "key-123"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrExternalToolFailure)

	var toolErr *domain.ToolError
	require.ErrorAs(t, err, &toolErr)
	assert.Equal(t, "rpc *** rejected\n", toolErr.Output)
	assert.NotContains(t, toolErr.Command, "key-123")

	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 3, exitErr.ExitCode())
}

func TestRunner_Output(t *testing.T) {
	runner := newTestRunner(t, io.Discard, io.Discard)

	out, err := runner.Output(context.Background(), sh("echo a1b2c3d; echo noise >&2"))
	require.NoError(t, err)
	assert.Equal(t, "a1b2c3d\n", out)

	_, err = runner.Output(context.Background(), sh("echo 'fatal: not a git repository' >&2; exit 128"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fatal: not a git repository")
}

func TestRunner_CombinedOutput(t *testing.T) {
	runner := newTestRunner(t, io.Discard, io.Discard)

	out, err := runner.CombinedOutput(context.Background(), sh("echo one; echo two >&2; exit 1"))
	require.Error(t, err)
	assert.Contains(t, out, "one")
	assert.Contains(t, out, "two")
}

func TestRunner_Env(t *testing.T) {
	var stdout bytes.Buffer
	runner := newTestRunner(t, &stdout, io.Discard)

	c := sh("echo $DEPLOY_TEST_VALUE")
	c.Env = []string{"DEPLOY_TEST_VALUE=hello"}
	require.NoError(t, runner.Run(context.Background(), c))
	assert.Equal(t, "hello\n", stdout.String())
}

func TestRunner_MissingBinary(t *testing.T) {
	runner := newTestRunner(t, io.Discard, io.Discard)

	err := runner.Run(context.Background(), Command{Name: "definitely-not-a-real-binary"})
	assert.ErrorIs(t, err, domain.ErrExternalToolFailure)
}

func TestTail(t *testing.T) {
	assert.Equal(t, "abc", tail("abc", 5))
	assert.Equal(t, "cde", tail("abcde", 3))
}
