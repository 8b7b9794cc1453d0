package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/propdesk-org/propdesk-cli/internal/cli/render"
	"github.com/propdesk-org/propdesk-cli/internal/domain/models"
	"github.com/propdesk-org/propdesk-cli/internal/usecase"
)

// NewReviewCmd creates the review command
func NewReviewCmd() *cobra.Command {
	var (
		status   string
		comments string
	)

	cmd := &cobra.Command{
		Use:   "review <submission-id>",
		Short: "Apply a reviewer decision to a submission",
		Long: `Apply a reviewer decision. The transition is allowed from any current
status, including re-deciding an already approved or rejected record.`,
		Example: `  propdesk review proposal_1712000000_ab12cd34 --status approved

  propdesk review proposal_1712000000_ab12cd34 --status changes_requested \
    --comments "Funding deadline too aggressive"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			if !models.ReviewableStatus(status) {
				return fmt.Errorf("invalid status %q (valid: submitted, under_review, approved, rejected, changes_requested)", status)
			}

			result, err := app.UpdateStatus.Run(cmd.Context(), usecase.UpdateStatusParams{
				ID:       args[0],
				Status:   models.SubmissionStatus(status),
				Comments: comments,
			})
			if err != nil {
				return err
			}

			renderer := render.NewSubmissionsRenderer(cmd.OutOrStdout(), app.Config.JSON)
			return renderer.RenderReviewed(result.Submission)
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "New status (required)")
	cmd.Flags().StringVar(&comments, "comments", "", "Reviewer comments")
	_ = cmd.MarkFlagRequired("status")

	return cmd
}
