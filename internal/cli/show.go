package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/deploycfg/internal/cli/render"
)

// NewShowCmd creates the show command
func NewShowCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the loaded build configuration",
		Long: `Show the build configuration as the toolchain would receive it.

Signing keys are never printed, and endpoint URLs are shown up to their
host since RPC providers embed API keys in the path.

Examples:
  deploycfg show
  deploycfg show --format yaml
  deploycfg show --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			f, err := render.ParseFormat(format)
			if err != nil {
				return err
			}
			if app.Config.JSON && !cmd.Flags().Changed("format") {
				f = render.FormatJSON
			}

			result, err := app.ShowConfig.Run(cmd.Context())
			if err != nil {
				return err
			}

			return render.NewConfigRenderer(cmd.OutOrStdout(), f).Render(result)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(render.FormatText), "Output format (text, json, yaml, toml)")

	return cmd
}
