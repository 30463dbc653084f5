package usecase

import (
	"context"
	"fmt"

	"github.com/trebuchet-org/wpokt-deploy/internal/domain"
	"github.com/trebuchet-org/wpokt-deploy/internal/domain/models"
)

// ShowHistoryParams selects the ledger entries to show
type ShowHistoryParams struct {
	Network string // empty for all networks
}

// NetworkHistory is the ordered list of deployments on one network
type NetworkHistory struct {
	Network string
	Records []models.DeploymentRecord
}

// ShowHistoryResult contains the ledger entries
type ShowHistoryResult struct {
	LedgerPath string
	Networks   []NetworkHistory
}

// ShowHistory reads the deployment ledger
type ShowHistory struct {
	ledger LedgerStore
}

// NewShowHistory creates a new ShowHistory use case
func NewShowHistory(ledger LedgerStore) *ShowHistory {
	return &ShowHistory{ledger: ledger}
}

// Run executes the use case
func (uc *ShowHistory) Run(ctx context.Context, params ShowHistoryParams) (*ShowHistoryResult, error) {
	ledger, err := uc.ledger.Load(ctx)
	if err != nil {
		return nil, err
	}

	names := ledger.Networks()
	if params.Network != "" {
		if ledger.Len(params.Network) == 0 {
			return nil, fmt.Errorf("no deployments recorded for %s: %w", params.Network, domain.ErrNotFound)
		}
		names = []string{params.Network}
	}

	result := &ShowHistoryResult{LedgerPath: uc.ledger.Path()}
	for _, name := range names {
		records, err := ledger.Records(name)
		if err != nil {
			return nil, err
		}
		result.Networks = append(result.Networks, NetworkHistory{Network: name, Records: records})
	}

	return result, nil
}
