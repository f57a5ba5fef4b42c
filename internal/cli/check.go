package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/deploycfg/internal/cli/render"
	"github.com/trebuchet-org/deploycfg/internal/usecase"
)

// ErrCheckFailed is returned after a failed check has been reported
var ErrCheckFailed = errors.New("network check failed")

// NewCheckCmd creates the check command
func NewCheckCmd() *cobra.Command {
	var offline bool

	cmd := &cobra.Command{
		Use:   "check [network]",
		Short: "Check that a network is ready to use",
		Long: `Check that a network has an endpoint and signing keys, that the default
key is valid, and that the endpoint serves the configured chain.

The network is taken from the argument, then --network, then an
interactive picker.

Examples:
  deploycfg check rinkeby
  deploycfg check --offline
  deploycfg -n rinkeby check --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			network := app.Config.Network
			if len(args) > 0 {
				network = args[0]
			}
			if network == "" {
				network, err = app.Selector.SelectNetwork(cmd.Context(), app.Build.NetworkNames(), "Select network to check")
				if err != nil {
					return fmt.Errorf("no network given: %w", err)
				}
			}

			result, err := app.CheckNetwork.Run(cmd.Context(), usecase.CheckNetworkParams{
				Network: network,
				Offline: offline,
			})
			if err != nil {
				if app.Config.JSON {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), render.FormatError(err))
				return ErrCheckFailed
			}

			return render.NewCheckRenderer(cmd.OutOrStdout(), app.Config.JSON).Render(result)
		},
	}

	cmd.Flags().BoolVar(&offline, "offline", false, "Skip contacting the endpoint")

	return cmd
}
