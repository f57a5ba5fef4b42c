package config

import (
	"strings"

	"github.com/trebuchet-org/deploycfg/internal/domain/config"
)

// Load builds the BuildConfiguration from a definition and an environment.
//
// Loading never fails: an unset variable leaves an empty endpoint or drops the
// key, and the resulting profile only reports itself unusable when
// NetworkProfile.Usable is called at point of use. The compiler version is
// copied verbatim and never expanded. A nil definition means DefaultDefinition.
func Load(env Environment, def *config.Definition) *config.BuildConfiguration {
	if def == nil {
		def = DefaultDefinition()
	}
	if env == nil {
		env = MapEnv{}
	}

	profiles := make(map[string]config.NetworkProfile, len(def.Networks))
	for name, network := range def.Networks {
		keys := make([]config.Secret, 0, len(network.Accounts))
		for _, account := range network.Accounts {
			key := expand(account, env)
			if strings.TrimSpace(key) == "" {
				continue
			}
			keys = append(keys, config.NewSecret(key))
		}

		profiles[name] = config.NetworkProfile{
			Name:        name,
			ChainID:     network.ChainID,
			EndpointURL: expand(network.URL, env),
			SigningKeys: keys,
		}
	}

	return config.NewBuildConfiguration(def.Compiler.Version, profiles)
}
