package interactive

import (
	"context"
	"errors"
	"testing"

	"github.com/manifoldco/promptui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/wpokt-deploy/internal/domain/config"
)

func TestConfirmAdapter(t *testing.T) {
	tests := []struct {
		name    string
		result  string
		err     error
		want    bool
		wantErr bool
	}{
		{"accepted", "y", nil, true, false},
		{"declined", "", promptui.ErrAbort, false, false},
		{"interrupted", "", promptui.ErrInterrupt, false, true},
		{"terminal error", "", errors.New("inappropriate ioctl for device"), false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var label interface{}
			adapter := NewConfirmAdapter(&config.RuntimeConfig{})
			adapter.run = func(p promptui.Prompt) (string, error) {
				label = p.Label
				assert.True(t, p.IsConfirm)
				return tt.result, tt.err
			}

			ok, err := adapter.Confirm(context.Background(), "Broadcast to mainnet")
			assert.Equal(t, tt.want, ok)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, "Broadcast to mainnet", label)
		})
	}
}

func TestConfirmAdapter_NonInteractive(t *testing.T) {
	adapter := NewConfirmAdapter(&config.RuntimeConfig{NonInteractive: true})
	adapter.run = func(p promptui.Prompt) (string, error) {
		t.Fatal("prompt must not run")
		return "", nil
	}

	ok, err := adapter.Confirm(context.Background(), "Broadcast to mainnet")
	require.Error(t, err)
	assert.False(t, ok)
}
