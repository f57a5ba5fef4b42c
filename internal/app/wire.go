//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/deploycfg/internal/adapters"
	"github.com/trebuchet-org/deploycfg/internal/config"
	"github.com/trebuchet-org/deploycfg/internal/logging"
	"github.com/trebuchet-org/deploycfg/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper, sink usecase.ProgressSink) (*App, error) {
	wire.Build(
		// Configuration
		config.Provider,
		config.ProvideBuildConfiguration,

		// Logging
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewShowConfig,
		usecase.NewListNetworks,
		usecase.NewCheckNetwork,

		// App
		NewApp,
	)
	return nil, nil
}
