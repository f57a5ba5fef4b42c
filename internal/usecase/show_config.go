package usecase

import (
	"context"
	"log/slog"

	internalconfig "github.com/trebuchet-org/deploycfg/internal/config"
	"github.com/trebuchet-org/deploycfg/internal/domain/config"
)

// ShowConfigResult contains the result of showing configuration
type ShowConfigResult struct {
	Build            *config.BuildConfiguration
	ProjectRoot      string
	DefinitionSource string
	SecretsFiles     []string
	// EndpointVars maps a network to the variable backing its endpoint, when
	// the endpoint is a plain ${VAR} reference
	EndpointVars map[string]string
	// UnsetVariables lists referenced variables with no value (names only)
	UnsetVariables []string
}

// ShowConfig is a use case for showing the loaded build configuration
type ShowConfig struct {
	cfg *config.RuntimeConfig
	log *slog.Logger
}

// NewShowConfig creates a new ShowConfig use case
func NewShowConfig(cfg *config.RuntimeConfig, log *slog.Logger) *ShowConfig {
	return &ShowConfig{
		cfg: cfg,
		log: log,
	}
}

// Run executes the show config use case
func (uc *ShowConfig) Run(ctx context.Context) (*ShowConfigResult, error) {
	result := &ShowConfigResult{
		Build:            uc.cfg.Build,
		ProjectRoot:      uc.cfg.ProjectRoot,
		DefinitionSource: uc.cfg.DefinitionSource,
		SecretsFiles:     uc.cfg.SecretsFiles,
		EndpointVars:     make(map[string]string),
	}

	if def := uc.cfg.Definition; def != nil {
		for name, network := range def.Networks {
			if envVar, ok := internalconfig.DetectEnvVar(network.URL); ok {
				result.EndpointVars[name] = envVar
			}
		}
	}
	result.UnsetVariables = uc.cfg.UnsetVariables

	uc.log.Debug("showing configuration", "config", uc.cfg.Build, "source", uc.cfg.DefinitionSource)

	return result, nil
}
