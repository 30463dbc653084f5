package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/trebuchet-org/wpokt-deploy/internal/domain/config"
	"github.com/trebuchet-org/wpokt-deploy/internal/domain/models"
	"github.com/trebuchet-org/wpokt-deploy/internal/usecase"
)

// LedgerStoreAdapter implements LedgerStore on a JSON file. Writes are
// read-modify-write without locking; one deployment at a time is assumed.
type LedgerStoreAdapter struct {
	path string
}

// NewLedgerStoreAdapter creates a new LedgerStoreAdapter
func NewLedgerStoreAdapter(cfg *config.RuntimeConfig) *LedgerStoreAdapter {
	return &LedgerStoreAdapter{path: cfg.LedgerPath}
}

// Path returns the ledger file location
func (s *LedgerStoreAdapter) Path() string {
	return s.path
}

// Load reads the ledger from disk. Returns an empty ledger if the file does not exist.
func (s *LedgerStoreAdapter) Load(_ context.Context) (*models.Ledger, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.NewLedger(), nil
		}
		return nil, fmt.Errorf("failed to read ledger file: %w", err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return models.NewLedger(), nil
	}

	ledger := models.NewLedger()
	if err := json.Unmarshal(data, ledger); err != nil {
		return nil, fmt.Errorf("failed to parse ledger file %s: %w", s.path, err)
	}
	return ledger, nil
}

// Append adds a record to the network's history and rewrites the file
func (s *LedgerStoreAdapter) Append(ctx context.Context, network string, record models.DeploymentRecord) error {
	ledger, err := s.Load(ctx)
	if err != nil {
		return err
	}

	if err := ledger.Append(network, record); err != nil {
		return err
	}

	return s.Save(ctx, ledger)
}

// Save writes the ledger with two-space indentation and a trailing newline
func (s *LedgerStoreAdapter) Save(_ context.Context, ledger *models.Ledger) error {
	data, err := Encode(ledger)
	if err != nil {
		return fmt.Errorf("failed to marshal ledger: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create ledger directory: %w", err)
	}

	// Write to temp file first
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write ledger file: %w", err)
	}

	// Atomic rename
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to replace ledger file: %w", err)
	}
	return nil
}

// Encode renders the ledger document exactly as it is stored
func Encode(ledger *models.Ledger) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(ledger); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Ensure LedgerStoreAdapter implements LedgerStore
var _ usecase.LedgerStore = (*LedgerStoreAdapter)(nil)
