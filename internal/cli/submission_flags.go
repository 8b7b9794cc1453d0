package cli

import (
	"fmt"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/propdesk-org/propdesk-cli/internal/domain/models"
	"github.com/propdesk-org/propdesk-cli/internal/usecase"
)

// submissionFlags holds the raw flag values of the user-authored
// proposal fields. Amounts and percentages accept display formatting
// ("$1,000,000", "8.5%").
type submissionFlags struct {
	assetName   string
	assetType   string
	category    string
	location    string
	description string

	targetAmount    string
	tokenPrice      string
	minInvestment   string
	expectedYield   string
	fundingDeadline string
	useOfFunds      string
	riskFactors     []string
	highlights      []string
	documents       []string
}

func (f *submissionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.assetName, "name", "", "Asset name")
	cmd.Flags().StringVar(&f.assetType, "type", "", "Asset type (e.g. Commercial Real Estate)")
	cmd.Flags().StringVar(&f.category, "category", "", "Asset category")
	cmd.Flags().StringVar(&f.location, "location", "", "Asset location")
	cmd.Flags().StringVar(&f.description, "description", "", "Free-text description")
	cmd.Flags().StringVar(&f.targetAmount, "target", "", "Target amount (e.g. $1,000,000)")
	cmd.Flags().StringVar(&f.tokenPrice, "token-price", "", "Token price")
	cmd.Flags().StringVar(&f.minInvestment, "min-investment", "", "Minimum investment")
	cmd.Flags().StringVar(&f.expectedYield, "yield", "", "Expected yield (e.g. 8.5%)")
	cmd.Flags().StringVar(&f.fundingDeadline, "deadline", "", "Funding deadline (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.useOfFunds, "use-of-funds", "", "Use-of-funds text")
	cmd.Flags().StringArrayVar(&f.riskFactors, "risk", nil, "Risk factor (repeatable)")
	cmd.Flags().StringArrayVar(&f.highlights, "highlight", nil, "Highlight (repeatable)")
	cmd.Flags().StringArrayVar(&f.documents, "document", nil, "Supporting document filename (repeatable)")
}

// input parses the raw flags into a submission input.
func (f *submissionFlags) input() (usecase.SubmissionInput, error) {
	in := usecase.SubmissionInput{
		AssetName:   f.assetName,
		AssetType:   f.assetType,
		Category:    f.category,
		Location:    f.location,
		Description: f.description,
		UseOfFunds:  f.useOfFunds,
		RiskFactors: f.riskFactors,
		Highlights:  f.highlights,
		Documents: lo.Map(f.documents, func(name string, _ int) models.Document {
			return models.Document{Name: name}
		}),
	}

	var err error
	if in.TargetAmount, err = models.ParseAmount(f.targetAmount); err != nil {
		return in, err
	}
	if in.TokenPrice, err = models.ParseAmount(f.tokenPrice); err != nil {
		return in, err
	}
	if in.MinimumInvestment, err = models.ParseAmount(f.minInvestment); err != nil {
		return in, err
	}
	if in.ExpectedYield, err = models.ParsePercent(f.expectedYield); err != nil {
		return in, err
	}
	if f.fundingDeadline != "" {
		deadline, err := time.Parse("2006-01-02", f.fundingDeadline)
		if err != nil {
			return in, fmt.Errorf("invalid deadline %q (expected YYYY-MM-DD)", f.fundingDeadline)
		}
		in.FundingDeadline = deadline
	}

	return in, nil
}
