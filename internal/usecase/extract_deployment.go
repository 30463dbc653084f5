package usecase

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/wpokt-deploy/internal/domain"
	"github.com/trebuchet-org/wpokt-deploy/internal/domain/models"
)

// TimestampLayout is the ledger timestamp format, always in UTC
const TimestampLayout = "Mon, 02 Jan 2006 15:04:05 GMT"

// ExtractedDeployment holds what a run put on chain
type ExtractedDeployment struct {
	Addresses map[string]string // contract name -> address
	Gas       *domain.GasSummary
}

// ExtractDeployment finds the address of every contract of the plan and the
// gas figures of the final receipt. For each contract the first creating
// transaction wins; duplicates later in the run are ignored.
func ExtractDeployment(artifact *domain.BroadcastFile, path string, plan domain.DeploymentPlan) (*ExtractedDeployment, error) {
	addresses := make(map[string]string, len(plan.Contracts))
	var missing []string

	for _, contract := range plan.Contracts {
		address, ok := artifact.FirstCreation(contract.Name)
		if !ok {
			missing = append(missing, contract.Name)
			continue
		}
		if !common.IsHexAddress(address) {
			return nil, domain.MalformedArtifactErr{
				Path:   path,
				Reason: "invalid address " + address + " for " + contract.Name,
			}
		}
		addresses[contract.Name] = address
	}

	if len(missing) > 0 {
		return nil, domain.MissingContractErr{Names: missing, Path: path}
	}

	receipt, ok := artifact.LastReceipt()
	if !ok {
		return nil, domain.MalformedArtifactErr{Path: path, Reason: "no receipts"}
	}

	gas, err := domain.NewGasSummary(receipt.BlockNumber, receipt.CumulativeGasUsed, receipt.EffectiveGasPrice)
	if err != nil {
		return nil, domain.MalformedArtifactErr{Path: path, Reason: "last receipt", Err: err}
	}

	return &ExtractedDeployment{
		Addresses: addresses,
		Gas:       gas,
	}, nil
}

// Record builds the ledger entry for this deployment
func (d *ExtractedDeployment) Record(at time.Time, commitRef string) models.DeploymentRecord {
	contracts := make(map[string]string, len(d.Addresses))
	for name, address := range d.Addresses {
		contracts[name] = address
	}

	return models.DeploymentRecord{
		Contracts:    contracts,
		BlockNumber:  d.Gas.BlockNumberString(),
		TotalGasUsed: d.Gas.GasUsedString(),
		GasPrice:     d.Gas.GasPriceString(),
		TotalGasCost: d.Gas.TotalCostString(),
		Timestamp:    at.UTC().Format(TimestampLayout),
		CommitRef:    commitRef,
	}
}
