package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/trebuchet-org/wpokt-deploy/internal/domain"
	"github.com/trebuchet-org/wpokt-deploy/internal/domain/config"
	"github.com/trebuchet-org/wpokt-deploy/internal/domain/models"
)

// DeployParams contains the parameters of a deployment run
type DeployParams struct {
	Network string
}

// VerifiedContract is a contract that passed explorer verification
type VerifiedContract struct {
	Name    string
	Address string
	URL     string
}

// DeployResult contains the outcome of a deployment run
type DeployResult struct {
	Network       *config.Network
	Deployer      string
	BroadcastPath string
	Deployment    *ExtractedDeployment
	Verified      []VerifiedContract
	SkippedVerify bool
	Record        models.DeploymentRecord
	LedgerPath    string
}

// DeployContracts runs a full deployment: forge script, artifact
// extraction, explorer verification and the ledger append. Every step
// blocks until done and the first failure ends the run.
type DeployContracts struct {
	cfg        *config.RuntimeConfig
	networks   NetworkRegistry
	deployer   ScriptDeployer
	broadcasts BroadcastReader
	verifier   ContractVerifier
	revisions  RevisionReader
	ledger     LedgerStore
	confirmer  Confirmer
	progress   ProgressSink
	plan       domain.DeploymentPlan
	log        *slog.Logger
	now        func() time.Time
}

// NewDeployContracts creates a new deploy use case
func NewDeployContracts(
	cfg *config.RuntimeConfig,
	networks NetworkRegistry,
	deployer ScriptDeployer,
	broadcasts BroadcastReader,
	verifier ContractVerifier,
	revisions RevisionReader,
	ledger LedgerStore,
	confirmer Confirmer,
	progress ProgressSink,
	plan domain.DeploymentPlan,
	log *slog.Logger,
) *DeployContracts {
	return &DeployContracts{
		cfg:        cfg,
		networks:   networks,
		deployer:   deployer,
		broadcasts: broadcasts,
		verifier:   verifier,
		revisions:  revisions,
		ledger:     ledger,
		confirmer:  confirmer,
		progress:   progress,
		plan:       plan,
		log:        log.With("component", "DeployContracts"),
		now:        time.Now,
	}
}

// Run executes the deployment
func (uc *DeployContracts) Run(ctx context.Context, params DeployParams) (*DeployResult, error) {
	// Pre-flight: secrets, then the network
	if err := uc.cfg.Secrets.Validate(); err != nil {
		return nil, err
	}

	network, err := uc.resolveNetwork(params.Network)
	if err != nil {
		return nil, err
	}

	result := &DeployResult{Network: network}
	if signer, err := network.SignerAddress(); err != nil {
		uc.log.Warn("could not derive deployer address", "network", network.Name, "error", err)
	} else {
		result.Deployer = signer.Hex()
	}

	if err := uc.confirm(ctx, network); err != nil {
		return nil, err
	}

	// Broadcast
	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:   StageDeploying,
		Message: fmt.Sprintf("Deploying to %s (%d)...", network.Name, network.ChainID),
	})
	if err := uc.deployer.Deploy(ctx, network); err != nil {
		return nil, err
	}
	uc.progress.Info(fmt.Sprintf("Deployed to %s (%d)", network.Name, network.ChainID))

	// Read back what was deployed
	result.BroadcastPath = uc.deployer.BroadcastPath(network.ChainID)
	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:   StageExtracting,
		Message: "Reading " + result.BroadcastPath,
	})
	artifact, err := uc.broadcasts.ReadBroadcast(ctx, result.BroadcastPath)
	if err != nil {
		return nil, err
	}
	deployment, err := ExtractDeployment(artifact, result.BroadcastPath, uc.plan)
	if err != nil {
		return nil, err
	}
	result.Deployment = deployment
	uc.log.Debug("extracted deployment", "addresses", deployment.Addresses, "block", deployment.Gas.BlockNumberString())

	// Verification never runs against the local chain
	if network.Local {
		result.SkippedVerify = true
	} else {
		verified, err := uc.verify(ctx, network, deployment)
		if err != nil {
			return nil, err
		}
		result.Verified = verified
	}

	// Persist
	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:   StageSaving,
		Message: "Saving contract data...",
	})
	commitRef, err := uc.revisions.ShortRevision(ctx)
	if err != nil {
		return nil, err
	}
	result.Record = deployment.Record(uc.now(), commitRef)

	if err := uc.ledger.Append(ctx, network.Name, result.Record); err != nil {
		return nil, fmt.Errorf("failed to save deployment data: %w", err)
	}
	result.LedgerPath = uc.ledger.Path()

	uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageCompleted})
	return result, nil
}

func (uc *DeployContracts) resolveNetwork(name string) (*config.Network, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domain.UnknownNetworkErr{Known: uc.networks.Names()}
	}
	return uc.networks.Resolve(name)
}

// confirm asks before broadcasting to a public network
func (uc *DeployContracts) confirm(ctx context.Context, network *config.Network) error {
	if network.Local || uc.cfg.Yes || uc.cfg.NonInteractive || uc.confirmer == nil {
		return nil
	}

	prompt := fmt.Sprintf("Broadcast %s to %s (chain %d)",
		strings.Join(uc.plan.Names(), ", "), network.Name, network.ChainID)
	ok, err := uc.confirmer.Confirm(ctx, prompt)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrDeploymentAborted, err)
	}
	if !ok {
		return domain.ErrDeploymentAborted
	}
	return nil
}

// verify submits every contract of the plan in order. The first failure
// stops the run.
func (uc *DeployContracts) verify(ctx context.Context, network *config.Network, deployment *ExtractedDeployment) ([]VerifiedContract, error) {
	total := len(uc.plan.Contracts)
	verified := make([]VerifiedContract, 0, total)

	for i, contract := range uc.plan.Contracts {
		address := deployment.Addresses[contract.Name]

		req := VerificationRequest{
			ChainID:         network.ChainID,
			CompilerVersion: uc.cfg.CompilerVersion,
			ContractName:    contract.Name,
			Address:         address,
		}
		if contract.ConstructorAddressOf != "" {
			arg, ok := deployment.Addresses[contract.ConstructorAddressOf]
			if !ok {
				return verified, domain.MissingContractErr{
					Names: []string{contract.ConstructorAddressOf},
					Path:  "deployment plan",
				}
			}
			req.ConstructorAddress = arg
		}

		uc.progress.OnProgress(ctx, ProgressEvent{
			Stage:   StageVerifying,
			Current: i + 1,
			Total:   total,
			Message: fmt.Sprintf("Verifying %s contract...", contract.Name),
			Spinner: true,
		})

		if err := uc.verifier.Verify(ctx, req); err != nil {
			uc.progress.Error(fmt.Sprintf("Verification of %s failed", contract.Name))
			return verified, domain.VerificationErr{Contract: contract.Name, Address: address, Err: err}
		}

		v := VerifiedContract{Name: contract.Name, Address: address}
		if network.ExplorerURL != "" {
			v.URL = fmt.Sprintf("%s/address/%s#code", network.ExplorerURL, address)
		}
		verified = append(verified, v)
		uc.progress.Info(fmt.Sprintf("Verified %s contract", contract.Name))
	}

	return verified, nil
}
