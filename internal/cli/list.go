package cli

import (
	"github.com/spf13/cobra"

	"github.com/propdesk-org/propdesk-cli/internal/cli/render"
	"github.com/propdesk-org/propdesk-cli/internal/usecase"
)

// NewListCmd creates the list command
func NewListCmd() *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List proposals from the active data source",
		Long: `List the proposals visible to the dashboard.

The active data mode decides the source: production reads the live
backing service, development reads approved local submissions, and demo
reads synthetic scenario data.`,
		Example: `  # List proposals for the configured mode
  propdesk list

  # List demo proposals for a specific scenario
  propdesk list --mode demo --scenario sales-demo

  # Fuzzy-search by asset name
  propdesk list --search tower`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListProposals.Run(cmd.Context(), usecase.ListProposalsParams{
				Search: search,
			})
			if err != nil {
				return err
			}

			renderer := render.NewProposalsRenderer(cmd.OutOrStdout(), app.Config.JSON)
			return renderer.RenderProposalList(result)
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "Fuzzy-match proposals by asset name")

	return cmd
}
