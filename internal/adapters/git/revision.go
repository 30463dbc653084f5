package git

import (
	"context"
	"fmt"
	"strings"

	"github.com/trebuchet-org/wpokt-deploy/internal/adapters/forge"
	"github.com/trebuchet-org/wpokt-deploy/internal/domain/config"
	"github.com/trebuchet-org/wpokt-deploy/internal/usecase"
)

// outputRunner runs a command and returns its stdout
type outputRunner interface {
	Output(ctx context.Context, c forge.Command) (string, error)
}

// RevisionReader reads the checked out revision with git
type RevisionReader struct {
	runner      outputRunner
	projectRoot string
}

// NewRevisionReader creates a new revision reader
func NewRevisionReader(cfg *config.RuntimeConfig, runner *forge.Runner) *RevisionReader {
	return &RevisionReader{
		runner:      runner,
		projectRoot: cfg.ProjectRoot,
	}
}

// ShortRevision returns the abbreviated hash of HEAD
func (r *RevisionReader) ShortRevision(ctx context.Context) (string, error) {
	out, err := r.runner.Output(ctx, forge.Command{
		Name: "git",
		Args: []string{"rev-parse", "--short", "HEAD"},
		Dir:  r.projectRoot,
	})
	if err != nil {
		return "", fmt.Errorf("failed to read git revision: %w", err)
	}
	return strings.TrimSpace(out), nil
}

var _ usecase.RevisionReader = (*RevisionReader)(nil)
