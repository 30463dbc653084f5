package adapters

import (
	"github.com/google/wire"
	"github.com/trebuchet-org/wpokt-deploy/internal/adapters/blockchain"
	"github.com/trebuchet-org/wpokt-deploy/internal/adapters/forge"
	"github.com/trebuchet-org/wpokt-deploy/internal/adapters/forge/broadcast"
	"github.com/trebuchet-org/wpokt-deploy/internal/adapters/fs"
	"github.com/trebuchet-org/wpokt-deploy/internal/adapters/git"
	"github.com/trebuchet-org/wpokt-deploy/internal/adapters/interactive"
	"github.com/trebuchet-org/wpokt-deploy/internal/adapters/progress"
	"github.com/trebuchet-org/wpokt-deploy/internal/adapters/verification"
	internalconfig "github.com/trebuchet-org/wpokt-deploy/internal/config"
	"github.com/trebuchet-org/wpokt-deploy/internal/domain"
	"github.com/trebuchet-org/wpokt-deploy/internal/usecase"
)

// ProvideDeploymentPlan provides the contracts the deploy script creates
func ProvideDeploymentPlan() domain.DeploymentPlan {
	return domain.WrappedPocketPlan
}

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	fs.NewLedgerStoreAdapter,
	wire.Bind(new(usecase.LedgerStore), new(*fs.LedgerStoreAdapter)),
)

// ForgeSet provides forge-based implementations
var ForgeSet = wire.NewSet(
	forge.NewRunner,

	forge.NewForgeAdapter,
	wire.Bind(new(usecase.ScriptDeployer), new(*forge.ForgeAdapter)),

	broadcast.NewParser,
	wire.Bind(new(usecase.BroadcastReader), new(*broadcast.Parser)),

	verification.NewVerifier,
	wire.Bind(new(usecase.ContractVerifier), new(*verification.Verifier)),

	git.NewRevisionReader,
	wire.Bind(new(usecase.RevisionReader), new(*git.RevisionReader)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewConfirmAdapter,
	wire.Bind(new(usecase.Confirmer), new(*interactive.ConfirmAdapter)),

	progress.ProvideProgressSink,
)

// ConfigSet provides configuration-based implementations
var ConfigSet = wire.NewSet(
	internalconfig.ProvideNetworkRegistry,
	wire.Bind(new(usecase.NetworkRegistry), new(*internalconfig.NetworkRegistry)),
)

// BlockchainSet provides RPC-backed implementations
var BlockchainSet = wire.NewSet(
	blockchain.NewCheckerAdapter,
	wire.Bind(new(usecase.ChainChecker), new(*blockchain.CheckerAdapter)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	ProvideDeploymentPlan,

	FSSet,
	ForgeSet,
	InteractiveSet,
	ConfigSet,
	BlockchainSet,
)
