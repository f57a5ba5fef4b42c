package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/samber/lo"
	"github.com/trebuchet-org/deploycfg/internal/domain/config"
)

const (
	// DefinitionFile is the optional project file overriding the built-in definition
	DefinitionFile = "deploycfg.toml"

	// DefaultCompilerVersion is the compiler version used unless deploycfg.toml sets one
	DefaultCompilerVersion = "0.8.1"

	// SourceBuiltin labels a definition that came from DefaultDefinition
	SourceBuiltin = "builtin"
)

// DefaultDefinition returns the built-in static literals
func DefaultDefinition() *config.Definition {
	return &config.Definition{
		Compiler: config.CompilerDefinition{Version: DefaultCompilerVersion},
		Networks: map[string]config.NetworkDefinition{
			"rinkeby": {
				ChainID:  4,
				URL:      "${QUICKNODE_API_KEY_URL}",
				Accounts: []string{"${RINKEBY_PRIVATE_KEY}"},
			},
		},
	}
}

// LoadDefinition reads deploycfg.toml from the project root, falling back to
// the built-in definition when the file does not exist.
// It returns the definition and a label for where it came from.
func LoadDefinition(projectRoot string) (*config.Definition, string, error) {
	path := filepath.Join(projectRoot, DefinitionFile)

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultDefinition(), SourceBuiltin, nil
		}
		return nil, "", fmt.Errorf("failed to stat %s: %w", DefinitionFile, err)
	}

	var def config.Definition
	if _, err := toml.DecodeFile(path, &def); err != nil {
		return nil, "", fmt.Errorf("failed to parse %s: %w", DefinitionFile, err)
	}

	if def.Compiler.Version == "" {
		def.Compiler.Version = DefaultCompilerVersion
	}
	if def.Networks == nil {
		def.Networks = make(map[string]config.NetworkDefinition)
	}

	// Networks that leave url or accounts out follow the variable naming convention
	for name, network := range def.Networks {
		if network.URL == "" {
			network.URL = "${" + GenerateEnvVarName(name) + "}"
		}
		if network.Accounts == nil {
			network.Accounts = []string{"${" + GenerateKeyVarName(name) + "}"}
		}
		def.Networks[name] = network
	}

	return &def, DefinitionFile, nil
}

// envVarPattern matches ${VAR_NAME} and $VAR_NAME references
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}|\$([A-Za-z_][A-Za-z0-9_]*)`)

// pureEnvVarPattern matches a value that is exactly one ${VAR_NAME} reference
var pureEnvVarPattern = regexp.MustCompile(`^\$\{([A-Za-z_][A-Za-z0-9_]*)\}$`)

// DetectEnvVar checks if a raw value is a simple ${VAR_NAME} reference.
// Returns the variable name and true if the value is a pure env var reference.
func DetectEnvVar(rawValue string) (string, bool) {
	matches := pureEnvVarPattern.FindStringSubmatch(rawValue)
	if len(matches) == 2 {
		return matches[1], true
	}
	return "", false
}

// ReferencedVariables returns the sorted, de-duplicated names of every
// environment variable the definition's templates refer to
func ReferencedVariables(def *config.Definition) []string {
	var names []string
	for _, network := range def.Networks {
		names = append(names, referencedIn(network.URL)...)
		for _, account := range network.Accounts {
			names = append(names, referencedIn(account)...)
		}
	}

	names = lo.Uniq(names)
	slices.Sort(names)
	return names
}

// UnsetVariables returns the referenced variables that env does not define or defines as empty
func UnsetVariables(def *config.Definition, env Environment) []string {
	return lo.Filter(ReferencedVariables(def), func(name string, _ int) bool {
		v, ok := env.Lookup(name)
		return !ok || strings.TrimSpace(v) == ""
	})
}

func referencedIn(template string) []string {
	var names []string
	for _, m := range envVarPattern.FindAllStringSubmatch(template, -1) {
		if m[1] != "" {
			names = append(names, m[1])
		} else if m[2] != "" {
			names = append(names, m[2])
		}
	}
	return names
}

// GenerateEnvVarName generates a conventional env var name for a network's RPC URL.
// Convention: uppercase, dashes/dots to underscores, append _RPC_URL.
// Examples: sepolia -> SEPOLIA_RPC_URL, celo-sepolia -> CELO_SEPOLIA_RPC_URL
func GenerateEnvVarName(networkName string) string {
	name := strings.ToUpper(networkName)
	name = strings.NewReplacer("-", "_", ".", "_").Replace(name)
	return name + "_RPC_URL"
}

// GenerateKeyVarName generates a conventional env var name for a network's signing key.
// Example: rinkeby -> RINKEBY_PRIVATE_KEY
func GenerateKeyVarName(networkName string) string {
	name := strings.ToUpper(networkName)
	name = strings.NewReplacer("-", "_", ".", "_").Replace(name)
	return name + "_PRIVATE_KEY"
}
