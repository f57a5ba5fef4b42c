package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/trebuchet-org/deploycfg/internal/domain/config"
	"github.com/trebuchet-org/deploycfg/internal/usecase"
)

var (
	headerStyle  = color.New(color.Bold, color.FgHiWhite)
	usableStyle  = color.New(color.FgGreen)
	problemStyle = color.New(color.FgRed)
)

// NetworksRenderer renders network lists
type NetworksRenderer struct {
	out  io.Writer
	json bool
}

// NewNetworksRenderer creates a new networks renderer
func NewNetworksRenderer(out io.Writer, jsonOutput bool) *NetworksRenderer {
	return &NetworksRenderer{
		out:  out,
		json: jsonOutput,
	}
}

type networkStatusView struct {
	Name          string `json:"name"`
	ChainID       uint64 `json:"chainId,omitempty"`
	Endpoint      string `json:"endpoint,omitempty"`
	SigningKeys   int    `json:"signingKeys"`
	DefaultSigner string `json:"defaultSigner,omitempty"`
	Usable        bool   `json:"usable"`
	Error         string `json:"error,omitempty"`
}

// RenderNetworksList renders the list of configured networks
func (r *NetworksRenderer) RenderNetworksList(result *usecase.ListNetworksResult) error {
	if r.json {
		return r.renderJSON(result)
	}

	if len(result.Networks) == 0 {
		fmt.Fprintln(r.out, "No networks configured")
		return nil
	}

	fmt.Fprintln(r.out, "🌐 Available Networks:")
	fmt.Fprintln(r.out)

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Options.SeparateRows = false
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateHeader = false
	t.Style().Options.SeparateColumns = false
	t.Style().Box = table.BoxStyle{
		PaddingRight: "   ",
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})

	t.AppendHeader(table.Row{
		headerStyle.Sprint("NETWORK"),
		headerStyle.Sprint("CHAIN ID"),
		headerStyle.Sprint("ENDPOINT"),
		headerStyle.Sprint("KEYS"),
		headerStyle.Sprint("DEFAULT SIGNER"),
		headerStyle.Sprint("STATUS"),
	})

	for _, network := range result.Networks {
		t.AppendRow(table.Row{
			network.Name,
			formatChainID(network.ChainID),
			orDash(config.MaskEndpoint(network.EndpointURL)),
			network.SigningKeys,
			signerCell(network),
			statusCell(network),
		})
	}

	fmt.Fprintln(r.out, t.Render())
	return nil
}

func (r *NetworksRenderer) renderJSON(result *usecase.ListNetworksResult) error {
	views := make([]networkStatusView, 0, len(result.Networks))
	for _, network := range result.Networks {
		view := networkStatusView{
			Name:        network.Name,
			ChainID:     network.ChainID,
			Endpoint:    config.MaskEndpoint(network.EndpointURL),
			SigningKeys: network.SigningKeys,
			Usable:      network.UsableError == nil && network.SignerError == nil,
		}
		if network.DefaultSigner != nil {
			view.DefaultSigner = network.DefaultSigner.Hex()
		}
		if err := statusError(network); err != nil {
			view.Error = err.Error()
		}
		views = append(views, view)
	}

	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]any{
		"compiler": result.CompilerVersion,
		"networks": views,
	})
}

func signerCell(network usecase.NetworkStatus) string {
	if network.DefaultSigner == nil {
		return "-"
	}
	return network.DefaultSigner.Hex()
}

func statusCell(network usecase.NetworkStatus) string {
	if err := statusError(network); err != nil {
		return problemStyle.Sprintf("❌ %v", err)
	}
	return usableStyle.Sprint("✅ usable")
}

func statusError(network usecase.NetworkStatus) error {
	if network.UsableError != nil {
		return network.UsableError
	}
	if network.SignerError != nil {
		return fmt.Errorf("invalid signing key: %w", network.SignerError)
	}
	return nil
}
