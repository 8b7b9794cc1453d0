package cli

import (
	"github.com/spf13/cobra"

	"github.com/propdesk-org/propdesk-cli/internal/cli/render"
	"github.com/propdesk-org/propdesk-cli/internal/domain"
)

// NewCreateCmd creates the create command
func NewCreateCmd() *cobra.Command {
	var flags submissionFlags

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a proposal directly in submitted status",
		Long: `Create a proposal and submit it for review in one step, skipping the
draft stage. Asset name, description, and target amount are required.`,
		Example: `  propdesk create --name "Marina Tower" --description "Grade-A office" \
    --target "$25,000,000" --yield 9.2% --category "Real Estate"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			in, err := flags.input()
			if err != nil {
				return err
			}

			result, err := app.CreateSubmission.Run(cmd.Context(), in)
			if err != nil {
				if domain.IsValidation(err) {
					render.Fail(cmd.OutOrStdout(), err.Error())
					cmd.SilenceUsage = true
					cmd.SilenceErrors = true
				}
				return err
			}

			renderer := render.NewSubmissionsRenderer(cmd.OutOrStdout(), app.Config.JSON)
			return renderer.RenderCreated(result.Submission)
		},
	}

	flags.register(cmd)

	return cmd
}
