package usecase

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/propdesk-org/propdesk-cli/internal/domain"
	"github.com/propdesk-org/propdesk-cli/internal/domain/models"
)

// SubmissionInput carries the user-authored fields of a proposal. The
// same input feeds direct submission, draft saves, and draft edits.
type SubmissionInput struct {
	AssetName   string `validate:"required" json:"assetName"`
	AssetType   string `json:"assetType"`
	Category    string `json:"category"`
	Location    string `json:"location"`
	Description string `validate:"required" json:"description"`

	TargetAmount      decimal.Decimal `json:"targetAmount"`
	TokenPrice        decimal.Decimal `json:"tokenPrice"`
	MinimumInvestment decimal.Decimal `json:"minimumInvestment"`
	ExpectedYield     decimal.Decimal `json:"expectedYield"`
	FundingDeadline   time.Time       `json:"fundingDeadline"`

	Documents   []models.Document `json:"documents,omitempty"`
	RiskFactors []string          `json:"riskFactors,omitempty"`
	Highlights  []string          `json:"highlights,omitempty"`
	UseOfFunds  string            `json:"useOfFunds,omitempty"`
}

// NewValidator builds the struct validator shared by the submission use
// cases.
func NewValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

// validateSubmissionInput checks the fields a proposal must carry
// before entering the review pipeline: asset name, description, and a
// non-zero target amount. All missing fields are reported together.
func validateSubmissionInput(v *validator.Validate, in SubmissionInput) error {
	var missing []string

	if err := v.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				switch fe.StructField() {
				case "AssetName":
					missing = append(missing, "assetName")
				case "Description":
					missing = append(missing, "description")
				default:
					missing = append(missing, fe.Field())
				}
			}
		} else {
			return err
		}
	}

	// The validator cannot see into decimal internals, so the amount
	// check stays explicit.
	if in.TargetAmount.IsZero() {
		missing = append(missing, "targetAmount")
	}

	if len(missing) > 0 {
		return &domain.ValidationError{Fields: missing}
	}
	return nil
}

// apply copies the input fields onto a submission record.
func (in SubmissionInput) apply(s *models.Submission) {
	s.AssetName = in.AssetName
	s.AssetType = in.AssetType
	s.Category = in.Category
	s.Location = in.Location
	s.Description = in.Description
	s.TargetAmount = in.TargetAmount
	s.TokenPrice = in.TokenPrice
	s.MinimumInvestment = in.MinimumInvestment
	s.ExpectedYield = in.ExpectedYield
	s.FundingDeadline = in.FundingDeadline
	s.Documents = in.Documents
	s.RiskFactors = in.RiskFactors
	s.Highlights = in.Highlights
	s.UseOfFunds = in.UseOfFunds
}

// inputFromSubmission rebuilds the editable input from a stored record,
// used when re-validating a draft at submit time.
func inputFromSubmission(s *models.Submission) SubmissionInput {
	return SubmissionInput{
		AssetName:         s.AssetName,
		AssetType:         s.AssetType,
		Category:          s.Category,
		Location:          s.Location,
		Description:       s.Description,
		TargetAmount:      s.TargetAmount,
		TokenPrice:        s.TokenPrice,
		MinimumInvestment: s.MinimumInvestment,
		ExpectedYield:     s.ExpectedYield,
		FundingDeadline:   s.FundingDeadline,
		Documents:         s.Documents,
		RiskFactors:       s.RiskFactors,
		Highlights:        s.Highlights,
		UseOfFunds:        s.UseOfFunds,
	}
}
