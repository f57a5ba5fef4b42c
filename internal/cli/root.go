package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/deploycfg/internal/adapters/progress"
	"github.com/trebuchet-org/deploycfg/internal/app"
	"github.com/trebuchet-org/deploycfg/internal/config"
	"github.com/trebuchet-org/deploycfg/internal/usecase"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "deploycfg",
		Short: "Build configuration loader for smart contract deployments",
		Long: `deploycfg loads the build configuration a contract toolchain runs with:
the compiler version and, per network, the RPC endpoint, chain ID and
signing keys.

Endpoints and keys come from the environment, optionally seeded from
.env.local and .env in the project root. Missing values never stop the
configuration from loading; they are reported when a network is used.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			v := config.SetupViper("", cmd)

			appInstance, err := app.InitApp(v, newProgressSink(cmd, v))
			if err != nil {
				return err
			}

			ctx := context.WithValue(cmd.Context(), appKey, appInstance)

			if appInstance.Config.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
				cmd.PostRun = func(cmd *cobra.Command, args []string) {
					cancel()
				}
			}

			cmd.SetContext(ctx)
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().String("root", "", "Project root (defaults to the nearest directory with deploycfg.toml)")
	rootCmd.PersistentFlags().StringP("network", "n", "", "Network to use (e.g., rinkeby)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Duration("timeout", 30*time.Second, "Timeout for network operations")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "main",
		Title: "Main Commands",
	})

	showCmd := NewShowCmd()
	showCmd.GroupID = "main"
	rootCmd.AddCommand(showCmd)

	networksCmd := NewNetworksCmd()
	networksCmd.GroupID = "main"
	rootCmd.AddCommand(networksCmd)

	checkCmd := NewCheckCmd()
	checkCmd.GroupID = "main"
	rootCmd.AddCommand(checkCmd)

	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// Execute runs the command tree and cancels the command context once it
// returns, including when a command fails
func Execute(ctx context.Context, rootCmd *cobra.Command) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	return rootCmd.ExecuteContext(ctx)
}

// newProgressSink picks a spinner for humans and a no-op for machines
func newProgressSink(cmd *cobra.Command, v *viper.Viper) usecase.ProgressSink {
	if v.GetBool("json") || v.GetBool("non_interactive") {
		return progress.NewNopSink()
	}
	return progress.NewSpinnerSink(cmd.ErrOrStderr())
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	a, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return a, nil
}
