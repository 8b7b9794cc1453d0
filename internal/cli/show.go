package cli

import (
	"github.com/spf13/cobra"

	"github.com/propdesk-org/propdesk-cli/internal/cli/render"
)

// NewShowCmd creates the show command
func NewShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a locally-stored submission or draft",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			s, err := app.GetSubmission.Run(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			renderer := render.NewSubmissionsRenderer(cmd.OutOrStdout(), app.Config.JSON)
			return renderer.RenderSubmission(s)
		},
	}
}
