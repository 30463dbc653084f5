package interactive

import (
	"context"
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/trebuchet-org/wpokt-deploy/internal/domain/config"
	"github.com/trebuchet-org/wpokt-deploy/internal/usecase"
)

// ConfirmAdapter asks yes/no questions on the terminal
type ConfirmAdapter struct {
	config *config.RuntimeConfig
	// run is replaced in tests
	run func(prompt promptui.Prompt) (string, error)
}

// NewConfirmAdapter creates a new confirm adapter
func NewConfirmAdapter(cfg *config.RuntimeConfig) *ConfirmAdapter {
	return &ConfirmAdapter{
		config: cfg,
		run: func(p promptui.Prompt) (string, error) {
			return p.Run()
		},
	}
}

// Confirm shows a y/N prompt. A declined prompt returns false without an error.
func (c *ConfirmAdapter) Confirm(ctx context.Context, prompt string) (bool, error) {
	if c.config.NonInteractive {
		return false, fmt.Errorf("confirmation not available in non-interactive mode")
	}

	_, err := c.run(promptui.Prompt{
		Label:     prompt,
		IsConfirm: true,
	})
	if err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}
		if errors.Is(err, promptui.ErrInterrupt) {
			return false, fmt.Errorf("interrupted")
		}
		return false, err
	}
	return true, nil
}

var _ usecase.Confirmer = (*ConfirmAdapter)(nil)
