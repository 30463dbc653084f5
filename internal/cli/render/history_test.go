package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/wpokt-deploy/internal/domain/models"
	"github.com/trebuchet-org/wpokt-deploy/internal/usecase"
	"gopkg.in/yaml.v3"
)

func historyResult() *usecase.ShowHistoryResult {
	record := models.DeploymentRecord{
		Contracts:    map[string]string{"WrappedPocket": "0x5FbDB2315678afecb367f032d93F642f64180aa3"},
		BlockNumber:  "2",
		TotalGasUsed: "21000 gas",
		GasPrice:     "1 gwei",
		TotalGasCost: "0.000021 ETH",
		Timestamp:    "Tue, 14 Nov 2023 22:13:20 GMT",
		CommitRef:    "a1b2c3d",
	}
	return &usecase.ShowHistoryResult{
		LedgerPath: "/project/addresses.json",
		Networks: []usecase.NetworkHistory{
			{Network: "sepolia", Records: []models.DeploymentRecord{record}},
			{Network: "anvil", Records: []models.DeploymentRecord{record}},
		},
	}
}

func TestHistoryRenderer_JSON(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, NewHistoryRenderer(&out).RenderHistory(historyResult(), FormatJSON))

	expected := `{
  "sepolia": [
    {
      "WrappedPocket": "0x5FbDB2315678afecb367f032d93F642f64180aa3",
      "blockNumber": "2",
      "totalGasUsed": "21000 gas",
      "gasPrice": "1 gwei",
      "totalGasCost": "0.000021 ETH",
      "timestamp": "Tue, 14 Nov 2023 22:13:20 GMT",
      "commitRef": "a1b2c3d"
    }
  ],
  "anvil": [
    {
      "WrappedPocket": "0x5FbDB2315678afecb367f032d93F642f64180aa3",
      "blockNumber": "2",
      "totalGasUsed": "21000 gas",
      "gasPrice": "1 gwei",
      "totalGasCost": "0.000021 ETH",
      "timestamp": "Tue, 14 Nov 2023 22:13:20 GMT",
      "commitRef": "a1b2c3d"
    }
  ]
}
`
	assert.Equal(t, expected, out.String())
}

func TestHistoryRenderer_YAML(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, NewHistoryRenderer(&out).RenderHistory(historyResult(), FormatYAML))

	var decoded map[string][]map[string]string
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &decoded))
	require.Len(t, decoded["anvil"], 1)
	assert.Equal(t, "0x5FbDB2315678afecb367f032d93F642f64180aa3", decoded["anvil"][0]["WrappedPocket"])
	assert.Equal(t, "2", decoded["anvil"][0]["blockNumber"])
	assert.Equal(t, "0.000021 ETH", decoded["sepolia"][0]["totalGasCost"])

	// Networks and keys keep ledger order
	text := out.String()
	assert.True(t, strings.HasPrefix(text, "sepolia:\n"))
	assert.Contains(t, text, "\nanvil:\n")
	assert.Less(t, strings.Index(text, "sepolia:"), strings.Index(text, "anvil:"))
	assert.Less(t, strings.Index(text, "WrappedPocket"), strings.Index(text, "blockNumber"))
	assert.Less(t, strings.Index(text, "timestamp"), strings.Index(text, "commitRef"))
}

func TestHistoryRenderer_Table(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, NewHistoryRenderer(&out).RenderHistory(historyResult(), FormatTable))

	assert.Contains(t, out.String(), "sepolia")
	assert.Contains(t, out.String(), "0x5FbDB2315678afecb367f032d93F642f64180aa3")
	assert.Contains(t, out.String(), "a1b2c3d")

	out.Reset()
	require.NoError(t, NewHistoryRenderer(&out).RenderHistory(&usecase.ShowHistoryResult{LedgerPath: "addresses.json"}, FormatTable))
	assert.Equal(t, "No deployments recorded in addresses.json\n", out.String())
}

func TestHistoryRenderer_UnknownFormat(t *testing.T) {
	var out bytes.Buffer
	err := NewHistoryRenderer(&out).RenderHistory(historyResult(), "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}
