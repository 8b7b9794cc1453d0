package cli

import (
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/propdesk-org/propdesk-cli/internal/app"
	"github.com/propdesk-org/propdesk-cli/internal/cli/render"
	"github.com/propdesk-org/propdesk-cli/internal/domain"
	"github.com/propdesk-org/propdesk-cli/internal/usecase"
)

// NewDraftCmd creates the draft command group
func NewDraftCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "draft",
		Short: "Manage work-in-progress proposal drafts",
		Long: `Save, edit, delete, and submit proposal drafts.

Drafts carry no validation requirements until they are submitted, at
which point the draft identity is discarded and a new proposal identity
is minted.`,
	}

	cmd.AddCommand(newDraftSaveCmd())
	cmd.AddCommand(newDraftListCmd())
	cmd.AddCommand(newDraftUpdateCmd())
	cmd.AddCommand(newDraftDeleteCmd())
	cmd.AddCommand(newDraftSubmitCmd())

	return cmd
}

func newDraftSaveCmd() *cobra.Command {
	var flags submissionFlags

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Save a new draft",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			in, err := flags.input()
			if err != nil {
				return err
			}

			result, err := app.SaveDraft.Run(cmd.Context(), in)
			if err != nil {
				return err
			}

			renderer := render.NewSubmissionsRenderer(cmd.OutOrStdout(), app.Config.JSON)
			return renderer.RenderDraftSaved(result.Draft)
		},
	}

	flags.register(cmd)

	return cmd
}

func newDraftListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List drafts",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListSubmissions.Run(cmd.Context(), usecase.ListSubmissionsParams{
				DraftsOnly: true,
			})
			if err != nil {
				return err
			}

			renderer := render.NewSubmissionsRenderer(cmd.OutOrStdout(), app.Config.JSON)
			return renderer.RenderSubmissionList(result.Submissions)
		},
	}
}

func newDraftUpdateCmd() *cobra.Command {
	var flags submissionFlags

	cmd := &cobra.Command{
		Use:   "update <draft-id>",
		Short: "Edit a draft in place",
		Long: `Edit a draft. Only the flags you pass change; everything else keeps its
stored value. Editing a missing or already-submitted draft is a
tolerated no-op.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			patch, err := draftPatchFromFlags(cmd, &flags)
			if err != nil {
				return err
			}

			result, err := app.UpdateDraft.Run(cmd.Context(), args[0], patch)
			if err != nil {
				return err
			}

			renderer := render.NewSubmissionsRenderer(cmd.OutOrStdout(), app.Config.JSON)
			return renderer.RenderDraftUpdated(args[0], result.Applied)
		},
	}

	flags.register(cmd)

	return cmd
}

func newDraftDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <draft-id>",
		Aliases: []string{"rm"},
		Short:   "Delete a draft",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.DeleteDraft.Run(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			renderer := render.NewSubmissionsRenderer(cmd.OutOrStdout(), app.Config.JSON)
			return renderer.RenderDraftDeleted(args[0], result.Removed)
		},
	}
}

func newDraftSubmitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "submit [draft-id]",
		Short: "Submit a draft for review",
		Long: `Submit a draft for review. The draft identity is discarded and a new
proposal identity is minted; the draft and its submitted successor are
never both present.

Without a draft id, an interactive picker lists the available drafts.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			draftID := ""
			if len(args) > 0 {
				draftID = args[0]
			} else {
				draftID, err = pickDraft(cmd, app)
				if err != nil {
					return err
				}
			}

			result, err := app.SubmitDraft.Run(cmd.Context(), draftID)
			if err != nil {
				if domain.IsValidation(err) {
					render.Fail(cmd.OutOrStdout(), err.Error())
					cmd.SilenceUsage = true
					cmd.SilenceErrors = true
				}
				return err
			}

			renderer := render.NewSubmissionsRenderer(cmd.OutOrStdout(), app.Config.JSON)
			return renderer.RenderDraftSubmitted(result)
		},
	}
}

// pickDraft prompts for a draft when none was named on the command line.
func pickDraft(cmd *cobra.Command, a *app.App) (string, error) {
	if a.Config.NonInteractive {
		return "", fmt.Errorf("draft id required in non-interactive mode")
	}

	result, err := a.ListSubmissions.Run(cmd.Context(), usecase.ListSubmissionsParams{
		DraftsOnly: true,
	})
	if err != nil {
		return "", err
	}
	if len(result.Submissions) == 0 {
		return "", fmt.Errorf("no drafts to submit")
	}

	items := make([]string, len(result.Submissions))
	for i, d := range result.Submissions {
		name := d.AssetName
		if name == "" {
			name = "(unnamed)"
		}
		items[i] = fmt.Sprintf("%s (%s)", name, d.ID)
	}

	prompt := promptui.Select{
		Label: "Select draft to submit",
		Items: items,
	}
	idx, _, err := prompt.Run()
	if err != nil {
		return "", err
	}

	return result.Submissions[idx].ID, nil
}

// draftPatchFromFlags turns only the flags the user actually set into a
// patch, so unset flags leave stored values untouched.
func draftPatchFromFlags(cmd *cobra.Command, flags *submissionFlags) (usecase.DraftPatch, error) {
	var patch usecase.DraftPatch

	in, err := flags.input()
	if err != nil {
		return patch, err
	}

	if cmd.Flags().Changed("name") {
		patch.AssetName = &in.AssetName
	}
	if cmd.Flags().Changed("type") {
		patch.AssetType = &in.AssetType
	}
	if cmd.Flags().Changed("category") {
		patch.Category = &in.Category
	}
	if cmd.Flags().Changed("location") {
		patch.Location = &in.Location
	}
	if cmd.Flags().Changed("description") {
		patch.Description = &in.Description
	}
	if cmd.Flags().Changed("target") {
		patch.TargetAmount = &in.TargetAmount
	}
	if cmd.Flags().Changed("token-price") {
		patch.TokenPrice = &in.TokenPrice
	}
	if cmd.Flags().Changed("min-investment") {
		patch.MinimumInvestment = &in.MinimumInvestment
	}
	if cmd.Flags().Changed("yield") {
		patch.ExpectedYield = &in.ExpectedYield
	}
	if cmd.Flags().Changed("deadline") {
		patch.FundingDeadline = &in.FundingDeadline
	}
	if cmd.Flags().Changed("risk") {
		patch.RiskFactors = in.RiskFactors
	}
	if cmd.Flags().Changed("highlight") {
		patch.Highlights = in.Highlights
	}
	if cmd.Flags().Changed("use-of-funds") {
		patch.UseOfFunds = &in.UseOfFunds
	}

	return patch, nil
}
