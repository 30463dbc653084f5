package git

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/wpokt-deploy/internal/adapters/forge"
	"github.com/trebuchet-org/wpokt-deploy/internal/domain"
)

type fakeRunner struct {
	command forge.Command
	output  string
	err     error
}

func (f *fakeRunner) Output(ctx context.Context, c forge.Command) (string, error) {
	f.command = c
	return f.output, f.err
}

func TestRevisionReader_ShortRevision(t *testing.T) {
	runner := &fakeRunner{output: "a1b2c3d\n"}
	reader := &RevisionReader{runner: runner, projectRoot: "/tmp/project"}

	ref, err := reader.ShortRevision(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "a1b2c3d", ref)

	assert.Equal(t, "git", runner.command.Name)
	assert.Equal(t, []string{"rev-parse", "--short", "HEAD"}, runner.command.Args)
	assert.Equal(t, "/tmp/project", runner.command.Dir)
}

func TestRevisionReader_Failure(t *testing.T) {
	runner := &fakeRunner{err: &domain.ToolError{Command: "git rev-parse --short HEAD", Err: errors.New("exit status 128")}}
	reader := &RevisionReader{runner: runner, projectRoot: "/tmp/project"}

	_, err := reader.ShortRevision(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrExternalToolFailure)
	assert.Contains(t, err.Error(), "failed to read git revision")
}
