package cli

import (
	"github.com/spf13/cobra"

	"github.com/propdesk-org/propdesk-cli/internal/cli/render"
)

// NewStatsCmd creates the stats command
func NewStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show aggregate statistics for the visible proposal set",
		Long: `Show counts by status, total funds raised, and average expected yield.

Statistics are recomputed from the active data source on every call;
nothing is cached.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.GetStats.Run(cmd.Context())
			if err != nil {
				return err
			}

			renderer := render.NewStatsRenderer(cmd.OutOrStdout(), app.Config.JSON)
			return renderer.RenderStats(result)
		},
	}
}
