package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/propdesk-org/propdesk-cli/internal/adapters/progress"
	"github.com/propdesk-org/propdesk-cli/internal/app"
	"github.com/propdesk-org/propdesk-cli/internal/config"
	"github.com/propdesk-org/propdesk-cli/internal/usecase"
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
		Use:   "propdesk",
		Short: "Proposal lifecycle engine for the investment dashboard",
		Long: `Propdesk tracks user-authored funding proposals through their review
lifecycle and resolves the visible proposal list from one of three data
sources: the live backing service, locally-authored submissions, or
synthetic demo scenarios.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			// Find project root
			projectRoot, err := config.FindProjectRoot()
			if err != nil {
				// init can run outside a project
				if cmd.Name() != "init" {
					return err
				}
				projectRoot = "."
			}

			// Set up viper
			v := config.SetupViper(projectRoot, cmd)

			// Bind global flags that have been set
			bindGlobalFlags(v, cmd)

			// A spinner covers the in-flight window of a remote fetch;
			// non-interactive runs get a silent sink.
			var sink usecase.ProgressSink
			if v.GetBool("non_interactive") || v.GetBool("json") {
				sink = progress.NewNopSink()
			} else {
				sink = progress.NewSpinnerSink()
			}

			// Initialize app with DI
			appInstance, err := app.InitApp(v, sink)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			// Store app in context
			ctx := context.WithValue(cmd.Context(), appKey, appInstance)

			// Add timeout if configured
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
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringP("mode", "m", "", "Data mode (production, development, demo)")
	rootCmd.PersistentFlags().String("scenario", "", "Demo scenario name (demo mode only)")

	// Add command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "dashboard",
		Title: "Dashboard Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "lifecycle",
		Title: "Lifecycle Commands",
	})

	listCmd := NewListCmd()
	listCmd.GroupID = "dashboard"
	rootCmd.AddCommand(listCmd)

	statsCmd := NewStatsCmd()
	statsCmd.GroupID = "dashboard"
	rootCmd.AddCommand(statsCmd)

	scenariosCmd := NewScenariosCmd()
	scenariosCmd.GroupID = "dashboard"
	rootCmd.AddCommand(scenariosCmd)

	createCmd := NewCreateCmd()
	createCmd.GroupID = "lifecycle"
	rootCmd.AddCommand(createCmd)

	draftCmd := NewDraftCmd()
	draftCmd.GroupID = "lifecycle"
	rootCmd.AddCommand(draftCmd)

	reviewCmd := NewReviewCmd()
	reviewCmd.GroupID = "lifecycle"
	rootCmd.AddCommand(reviewCmd)

	showCmd := NewShowCmd()
	showCmd.GroupID = "lifecycle"
	rootCmd.AddCommand(showCmd)

	rootCmd.AddCommand(NewInitCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// bindGlobalFlags binds command flags to viper
func bindGlobalFlags(v *viper.Viper, cmd *cobra.Command) {
	// Only bind flags that exist and have been changed
	if f := cmd.Flag("debug"); f != nil && f.Changed {
		v.Set("debug", f.Value.String())
	}
	if f := cmd.Flag("non-interactive"); f != nil && f.Changed {
		v.Set("non_interactive", f.Value.String())
	}
	if f := cmd.Flag("json"); f != nil && f.Changed {
		v.Set("json", f.Value.String())
	}
	if f := cmd.Flag("mode"); f != nil && f.Changed {
		v.Set("mode", f.Value.String())
	}
	if f := cmd.Flag("scenario"); f != nil && f.Changed {
		v.Set("scenario", f.Value.String())
	}
}

// getApp retrieves the app instance stashed by PersistentPreRunE
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
