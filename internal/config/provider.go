package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/deploycfg/internal/domain/config"
)

// EnvPrefix is the prefix of environment variables that drive runtime settings
const EnvPrefix = "DEPLOYCFG"

// flagKeys maps CLI flag names to viper keys
var flagKeys = map[string]string{
	"root":            "project_root",
	"network":         "network",
	"debug":           "debug",
	"json":            "json",
	"non-interactive": "non_interactive",
	"timeout":         "timeout",
	"log-level":       "log_level",
}

// Provider creates RuntimeConfig for Wire dependency injection.
// This is the only place the process environment is read; everything after
// it works on the captured Environment.
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		projectRoot = FindProjectRoot(cwd)
	}

	absRoot, err := filepath.Abs(projectRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project root: %w", err)
	}

	cfg := &config.RuntimeConfig{
		ProjectRoot:    absRoot,
		Network:        v.GetString("network"),
		LogLevel:       v.GetString("log_level"),
		Debug:          v.GetBool("debug"),
		NonInteractive: v.GetBool("non_interactive"),
		JSON:           v.GetBool("json"),
		Timeout:        v.GetDuration("timeout"),
	}

	env, files, err := LoadEnvironment(absRoot, ProcessEnv{})
	if err != nil {
		return nil, err
	}
	cfg.SecretsFiles = files

	def, source, err := LoadDefinition(absRoot)
	if err != nil {
		return nil, err
	}
	cfg.Definition = def
	cfg.DefinitionSource = source

	cfg.Build = Load(env, def)
	cfg.UnsetVariables = UnsetVariables(def, env)

	return cfg, nil
}

// ProvideBuildConfiguration extracts the loaded BuildConfiguration for Wire
func ProvideBuildConfiguration(cfg *config.RuntimeConfig) *config.BuildConfiguration {
	return cfg.Build
}

// FindProjectRoot walks up from start to the nearest directory holding
// deploycfg.toml. Without one, start itself is the project root.
func FindProjectRoot(start string) string {
	dir := start
	for {
		if _, err := os.Stat(filepath.Join(dir, DefinitionFile)); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return start
		}
		dir = parent
	}
}

// SetupViper creates and configures a viper instance
func SetupViper(projectRoot string, cmd *cobra.Command) *viper.Viper {
	v := viper.New()

	// Set up environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// Set defaults
	v.SetDefault("project_root", projectRoot)
	v.SetDefault("log_level", "info")
	v.SetDefault("timeout", "30s")
	v.SetDefault("debug", false)
	v.SetDefault("json", false)
	v.SetDefault("non_interactive", false)

	if cmd != nil {
		bindFlags(v, cmd)
	}

	return v
}

// bindFlags binds command flags that were explicitly set
func bindFlags(v *viper.Viper, cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		key, ok := flagKeys[f.Name]
		if ok && f.Changed {
			v.Set(key, f.Value.String())
		}
	})
}
