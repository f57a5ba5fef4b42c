package app

import (
	"github.com/trebuchet-org/deploycfg/internal/domain/config"
	"github.com/trebuchet-org/deploycfg/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig
	Build  *config.BuildConfiguration

	// Shared dependencies
	Selector usecase.NetworkSelector

	// Use cases
	ShowConfig   *usecase.ShowConfig
	ListNetworks *usecase.ListNetworks
	CheckNetwork *usecase.CheckNetwork
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	build *config.BuildConfiguration,
	selector usecase.NetworkSelector,
	showConfig *usecase.ShowConfig,
	listNetworks *usecase.ListNetworks,
	checkNetwork *usecase.CheckNetwork,
) (*App, error) {
	return &App{
		Config:       cfg,
		Build:        build,
		Selector:     selector,
		ShowConfig:   showConfig,
		ListNetworks: listNetworks,
		CheckNetwork: checkNetwork,
	}, nil
}
