package config

// Definition holds the static literals a BuildConfiguration is built from.
// URL and Accounts are templates that reference environment variables
// (${VAR} or $VAR); they are expanded by the loader.
type Definition struct {
	Compiler CompilerDefinition           `toml:"compiler"`
	Networks map[string]NetworkDefinition `toml:"networks"`
}

// CompilerDefinition selects the language compiler
type CompilerDefinition struct {
	Version string `toml:"version"`
}

// NetworkDefinition is the unexpanded form of a NetworkProfile
type NetworkDefinition struct {
	ChainID  uint64   `toml:"chain_id"`
	URL      string   `toml:"url"`
	Accounts []string `toml:"accounts"`
}
