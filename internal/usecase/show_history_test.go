package usecase

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/wpokt-deploy/internal/domain"
	"github.com/trebuchet-org/wpokt-deploy/internal/domain/models"
)

// staticLedger serves a fixed ledger document
type staticLedger struct {
	fakeLedger
	doc string
}

func (s *staticLedger) Load(ctx context.Context) (*models.Ledger, error) {
	ledger := models.NewLedger()
	if err := json.Unmarshal([]byte(s.doc), ledger); err != nil {
		return nil, err
	}
	return ledger, nil
}

const historyDoc = `{
  "sepolia": [
    {"WrappedPocket": "0x1", "blockNumber": "10", "commitRef": "aaa"},
    {"WrappedPocket": "0x2", "blockNumber": "20", "commitRef": "bbb"}
  ],
  "anvil": [
    {"WrappedPocket": "0x3", "blockNumber": "1", "commitRef": "ccc"}
  ]
}`

func TestShowHistory_All(t *testing.T) {
	uc := NewShowHistory(&staticLedger{doc: historyDoc})

	result, err := uc.Run(context.Background(), ShowHistoryParams{})
	require.NoError(t, err)

	assert.Equal(t, "/project/addresses.json", result.LedgerPath)
	require.Len(t, result.Networks, 2)
	assert.Equal(t, "sepolia", result.Networks[0].Network)
	assert.Equal(t, "anvil", result.Networks[1].Network)

	records := result.Networks[0].Records
	require.Len(t, records, 2)
	assert.Equal(t, "10", records[0].BlockNumber)
	assert.Equal(t, "bbb", records[1].CommitRef)
}

func TestShowHistory_SingleNetwork(t *testing.T) {
	uc := NewShowHistory(&staticLedger{doc: historyDoc})

	result, err := uc.Run(context.Background(), ShowHistoryParams{Network: "anvil"})
	require.NoError(t, err)
	require.Len(t, result.Networks, 1)
	assert.Equal(t, "0x3", result.Networks[0].Records[0].Contracts["WrappedPocket"])

	_, err = uc.Run(context.Background(), ShowHistoryParams{Network: "mainnet"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
