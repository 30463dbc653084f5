package usecase

import (
	"context"

	"github.com/trebuchet-org/wpokt-deploy/internal/domain"
	"github.com/trebuchet-org/wpokt-deploy/internal/domain/config"
	"github.com/trebuchet-org/wpokt-deploy/internal/domain/models"
)

// NetworkRegistry resolves network names to network profiles
type NetworkRegistry interface {
	Resolve(name string) (*config.Network, error)
	Names() []string
}

// ChainChecker queries the chain id served by an RPC endpoint
type ChainChecker interface {
	ChainID(ctx context.Context, rpcURL string) (uint64, error)
}

// ScriptDeployer runs the forge deploy script against a network
type ScriptDeployer interface {
	Deploy(ctx context.Context, network *config.Network) error
	BroadcastPath(chainID uint64) string
}

// BroadcastReader loads the transaction log written by forge
type BroadcastReader interface {
	ReadBroadcast(ctx context.Context, path string) (*domain.BroadcastFile, error)
}

// VerificationRequest describes one contract to verify on the block explorer
type VerificationRequest struct {
	ChainID         uint64
	CompilerVersion string
	ContractName    string
	Address         string
	// ConstructorAddress is the single address constructor argument, empty
	// when the constructor takes none.
	ConstructorAddress string
}

// ContractVerifier handles contract verification
type ContractVerifier interface {
	Verify(ctx context.Context, req VerificationRequest) error
}

// RevisionReader reads the current source revision
type RevisionReader interface {
	ShortRevision(ctx context.Context) (string, error)
}

// LedgerStore persists deployment records per network
type LedgerStore interface {
	Load(ctx context.Context) (*models.Ledger, error)
	Append(ctx context.Context, network string, record models.DeploymentRecord) error
	Path() string
}

// Confirmer asks the operator to confirm an irreversible action
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// Progress tracking interfaces

// ExecutionStage represents a stage of a deployment run
type ExecutionStage string

const (
	StageDeploying  ExecutionStage = "Deploying"
	StageExtracting ExecutionStage = "Extracting"
	StageVerifying  ExecutionStage = "Verifying"
	StageSaving     ExecutionStage = "Saving"
	StageCompleted  ExecutionStage = "Completed"
)

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage   ExecutionStage
	Current int
	Total   int
	Message string
	Spinner bool
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}
