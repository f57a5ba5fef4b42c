package render

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/trebuchet-org/deploycfg/internal/domain/config"
	"github.com/trebuchet-org/deploycfg/internal/usecase"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CheckRenderer renders the outcome of checking a network
type CheckRenderer struct {
	out  io.Writer
	json bool
}

// NewCheckRenderer creates a new check renderer
func NewCheckRenderer(out io.Writer, jsonOutput bool) *CheckRenderer {
	return &CheckRenderer{
		out:  out,
		json: jsonOutput,
	}
}

// Render writes a successful check result
func (r *CheckRenderer) Render(result *usecase.CheckNetworkResult) error {
	if r.json {
		view := map[string]any{
			"network":       result.Network,
			"chainId":       result.ChainID,
			"endpoint":      config.MaskEndpoint(result.EndpointURL),
			"signingKeys":   result.SigningKeys,
			"defaultSigner": result.DefaultSigner.Hex(),
			"offline":       result.Offline,
		}
		if !result.Offline {
			view["remoteChainId"] = result.RemoteChainID
			view["latencyMs"] = result.Latency.Milliseconds()
		}
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		return enc.Encode(view)
	}

	title := cases.Title(language.English)

	fmt.Fprintf(r.out, "%s\n", networkStyle.Sprint(title.String(result.Network)))
	fmt.Fprintf(r.out, "  Chain ID:       %s\n", formatChainID(result.ChainID))
	fmt.Fprintf(r.out, "  Endpoint:       %s\n", config.MaskEndpoint(result.EndpointURL))
	fmt.Fprintf(r.out, "  Signing keys:   %d\n", result.SigningKeys)
	fmt.Fprintf(r.out, "  Default signer: %s\n", result.DefaultSigner.Hex())

	if result.Offline {
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, FormatWarning("Endpoint not contacted (offline)"))
		fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Network %s is configured", result.Network)))
		return nil
	}

	fmt.Fprintf(r.out, "  Remote chain:   %d (%s)\n", result.RemoteChainID, result.Latency.Round(time.Millisecond))
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Network %s is ready", result.Network)))
	return nil
}

var _ Renderer[*usecase.CheckNetworkResult] = (*CheckRenderer)(nil)
