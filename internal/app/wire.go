//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/wpokt-deploy/internal/adapters"
	"github.com/trebuchet-org/wpokt-deploy/internal/config"
	"github.com/trebuchet-org/wpokt-deploy/internal/logging"
	"github.com/trebuchet-org/wpokt-deploy/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper) (*App, error) {
	wire.Build(
		// Configuration
		config.Provider,

		// Logging
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewDeployContracts,
		usecase.NewListNetworks,
		usecase.NewShowHistory,

		// App
		NewApp,
	)
	return nil, nil
}
