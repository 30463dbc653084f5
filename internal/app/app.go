package app

import (
	"github.com/trebuchet-org/wpokt-deploy/internal/domain/config"
	"github.com/trebuchet-org/wpokt-deploy/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig

	// Use cases
	DeployContracts *usecase.DeployContracts
	ListNetworks    *usecase.ListNetworks
	ShowHistory     *usecase.ShowHistory
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	deployContracts *usecase.DeployContracts,
	listNetworks *usecase.ListNetworks,
	showHistory *usecase.ShowHistory,
) (*App, error) {
	return &App{
		Config:          cfg,
		DeployContracts: deployContracts,
		ListNetworks:    listNetworks,
		ShowHistory:     showHistory,
	}, nil
}
