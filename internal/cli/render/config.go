package render

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/pelletier/go-toml/v2"
	"github.com/trebuchet-org/deploycfg/internal/domain/config"
	"github.com/trebuchet-org/deploycfg/internal/usecase"
	"gopkg.in/yaml.v3"
)

var (
	labelStyle   = color.New(color.FgWhite, color.Bold)
	networkStyle = color.New(color.FgCyan, color.Bold)
	varStyle     = color.New(color.Faint)
)

// ConfigRenderer renders the loaded build configuration
type ConfigRenderer struct {
	out    io.Writer
	format Format
}

// NewConfigRenderer creates a new config renderer
func NewConfigRenderer(out io.Writer, format Format) *ConfigRenderer {
	return &ConfigRenderer{
		out:    out,
		format: format,
	}
}

// configView is the structured shape of the build configuration. Signing
// keys stay Secrets so every encoder goes through Secret.MarshalText.
type configView struct {
	Compiler compilerView           `json:"compiler" yaml:"compiler" toml:"compiler"`
	Networks map[string]networkView `json:"networks" yaml:"networks" toml:"networks"`
}

type compilerView struct {
	Version string `json:"version" yaml:"version" toml:"version"`
}

type networkView struct {
	ChainID  uint64          `json:"chain_id,omitempty" yaml:"chain_id,omitempty" toml:"chain_id,omitempty"`
	URL      string          `json:"url" yaml:"url" toml:"url"`
	Accounts []config.Secret `json:"accounts" yaml:"accounts" toml:"accounts"`
}

func newConfigView(build *config.BuildConfiguration) configView {
	view := configView{
		Compiler: compilerView{Version: build.CompilerVersion()},
		Networks: make(map[string]networkView, build.Len()),
	}
	for name, profile := range build.Networks() {
		view.Networks[name] = networkView{
			ChainID:  profile.ChainID,
			URL:      config.MaskEndpoint(profile.EndpointURL),
			Accounts: profile.SigningKeys,
		}
	}
	return view
}

// Render writes the configuration in the renderer's format
func (r *ConfigRenderer) Render(result *usecase.ShowConfigResult) error {
	view := newConfigView(result.Build)

	switch r.format {
	case FormatJSON:
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		return enc.Encode(view)
	case FormatYAML:
		enc := yaml.NewEncoder(r.out)
		enc.SetIndent(2)
		if err := enc.Encode(view); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	case FormatTOML:
		return toml.NewEncoder(r.out).Encode(view)
	default:
		return r.renderText(result)
	}
}

func (r *ConfigRenderer) renderText(result *usecase.ShowConfigResult) error {
	build := result.Build

	fmt.Fprintln(r.out, "📋 Build configuration:")
	fmt.Fprintf(r.out, "%s %s\n", labelStyle.Sprint("Compiler:"), build.CompilerVersion())

	fmt.Fprintf(r.out, "\n📦 Definition: %s\n", result.DefinitionSource)

	if len(result.SecretsFiles) == 0 {
		fmt.Fprintln(r.out, "📁 Secrets files: (none)")
	} else {
		files := make([]string, len(result.SecretsFiles))
		for i, f := range result.SecretsFiles {
			files[i] = relativePath(f)
		}
		fmt.Fprintf(r.out, "📁 Secrets files: %s\n", strings.Join(files, ", "))
	}

	fmt.Fprintln(r.out)
	if build.Len() == 0 {
		fmt.Fprintln(r.out, "No networks configured")
	} else {
		fmt.Fprintln(r.out, "🌐 Networks:")
		for _, name := range build.NetworkNames() {
			profile, _ := build.Network(name)
			r.renderNetwork(profile, result.EndpointVars[name])
		}
	}

	if len(result.UnsetVariables) > 0 {
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, FormatWarning("Unset variables: "+strings.Join(result.UnsetVariables, ", ")))
	}

	return nil
}

func (r *ConfigRenderer) renderNetwork(profile config.NetworkProfile, endpointVar string) {
	fmt.Fprintf(r.out, "  %s\n", networkStyle.Sprint(profile.Name))
	fmt.Fprintf(r.out, "    Chain ID:     %s\n", formatChainID(profile.ChainID))

	endpoint := orDash(config.MaskEndpoint(profile.EndpointURL))
	if endpointVar != "" {
		endpoint += " " + varStyle.Sprintf("(from %s)", endpointVar)
	}
	fmt.Fprintf(r.out, "    Endpoint:     %s\n", endpoint)

	keys := fmt.Sprintf("%d", len(profile.SigningKeys))
	if len(profile.SigningKeys) > 0 {
		keys += " " + varStyle.Sprint(config.Redacted)
	}
	fmt.Fprintf(r.out, "    Signing keys: %s\n", keys)
}

// relativePath returns the path relative to the current directory
func relativePath(path string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return path
	}

	rel, err := filepath.Rel(cwd, path)
	if err != nil {
		return path
	}
	return rel
}

var _ Renderer[*usecase.ShowConfigResult] = (*ConfigRenderer)(nil)
