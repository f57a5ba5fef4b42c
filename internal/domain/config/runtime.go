package config

import (
	"time"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot string

	// Context settings
	Network string // default network for commands that need one, may be empty

	// Execution settings
	LogLevel       string
	Debug          bool
	NonInteractive bool
	JSON           bool // Output in JSON format
	Timeout        time.Duration

	// Config source tracking
	DefinitionSource string   // "deploycfg.toml" or "builtin"
	SecretsFiles     []string // secrets files that were found and loaded
	UnsetVariables   []string // variables the definition references but the environment leaves empty

	// Resolved configurations
	Definition *Definition
	Build      *BuildConfiguration
}
