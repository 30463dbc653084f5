package broadcast

import (
	"context"
	"encoding/json"
	"errors"
	"os"

	"github.com/trebuchet-org/wpokt-deploy/internal/domain"
	"github.com/trebuchet-org/wpokt-deploy/internal/usecase"
)

// Parser handles parsing of Foundry broadcast files
type Parser struct{}

// NewParser creates a new broadcast file parser
func NewParser() *Parser {
	return &Parser{}
}

// ReadBroadcast reads and validates a broadcast file
func (p *Parser) ReadBroadcast(_ context.Context, path string) (*domain.BroadcastFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, domain.MalformedArtifactErr{Path: path, Reason: "broadcast file not found"}
		}
		return nil, domain.MalformedArtifactErr{Path: path, Reason: "failed to read broadcast file", Err: err}
	}

	return p.ParseBroadcast(path, data)
}

// ParseBroadcast decodes broadcast file contents
func (p *Parser) ParseBroadcast(path string, data []byte) (*domain.BroadcastFile, error) {
	var broadcast domain.BroadcastFile
	if err := json.Unmarshal(data, &broadcast); err != nil {
		return nil, domain.MalformedArtifactErr{Path: path, Reason: "failed to parse broadcast file", Err: err}
	}

	if broadcast.Transactions == nil {
		return nil, domain.MalformedArtifactErr{Path: path, Reason: "missing transactions"}
	}
	if len(broadcast.Receipts) == 0 {
		return nil, domain.MalformedArtifactErr{Path: path, Reason: "missing receipts"}
	}

	return &broadcast, nil
}

var _ usecase.BroadcastReader = (*Parser)(nil)
