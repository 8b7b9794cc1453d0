package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/propdesk-org/propdesk-cli/internal/domain"
	"github.com/propdesk-org/propdesk-cli/internal/domain/models"
)

// DraftPatch contains the fields an edit may change. Nil pointers leave
// the stored value untouched.
type DraftPatch struct {
	AssetName         *string
	AssetType         *string
	Category          *string
	Location          *string
	Description       *string
	TargetAmount      *decimal.Decimal
	TokenPrice        *decimal.Decimal
	MinimumInvestment *decimal.Decimal
	ExpectedYield     *decimal.Decimal
	FundingDeadline   *time.Time
	RiskFactors       []string
	Highlights        []string
	UseOfFunds        *string
}

// UpdateDraftResult makes the no-op contract explicit: Applied is false
// when the target was missing or no longer a draft.
type UpdateDraftResult struct {
	Applied bool
	Draft   *models.Submission
}

// UpdateDraft edits a draft in place. Editing a record that has been
// deleted or already submitted is a tolerated no-op, not an error;
// concurrent UI flows race edits against deletes and submits.
type UpdateDraft struct {
	repo SubmissionRepository
	log  *slog.Logger
}

// NewUpdateDraft creates a new UpdateDraft use case
func NewUpdateDraft(repo SubmissionRepository, log *slog.Logger) *UpdateDraft {
	return &UpdateDraft{repo: repo, log: log}
}

// Run applies the patch and refreshes the draft's last-saved time.
func (uc *UpdateDraft) Run(ctx context.Context, draftID string, patch DraftPatch) (*UpdateDraftResult, error) {
	draft, err := uc.repo.Get(ctx, draftID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			uc.log.Debug("update skipped, draft absent", "id", draftID)
			return &UpdateDraftResult{Applied: false}, nil
		}
		return nil, err
	}
	if !draft.IsDraft() {
		uc.log.Debug("update skipped, record no longer a draft", "id", draftID, "status", draft.Status)
		return &UpdateDraftResult{Applied: false}, nil
	}

	patch.apply(draft)
	draft.SubmissionDate = time.Now().UTC()

	if err := uc.repo.Update(ctx, draft); err != nil {
		return nil, err
	}

	return &UpdateDraftResult{Applied: true, Draft: draft}, nil
}

func (p DraftPatch) apply(s *models.Submission) {
	if p.AssetName != nil {
		s.AssetName = *p.AssetName
	}
	if p.AssetType != nil {
		s.AssetType = *p.AssetType
	}
	if p.Category != nil {
		s.Category = *p.Category
	}
	if p.Location != nil {
		s.Location = *p.Location
	}
	if p.Description != nil {
		s.Description = *p.Description
	}
	if p.TargetAmount != nil {
		s.TargetAmount = *p.TargetAmount
	}
	if p.TokenPrice != nil {
		s.TokenPrice = *p.TokenPrice
	}
	if p.MinimumInvestment != nil {
		s.MinimumInvestment = *p.MinimumInvestment
	}
	if p.ExpectedYield != nil {
		s.ExpectedYield = *p.ExpectedYield
	}
	if p.FundingDeadline != nil {
		s.FundingDeadline = *p.FundingDeadline
	}
	if p.RiskFactors != nil {
		s.RiskFactors = p.RiskFactors
	}
	if p.Highlights != nil {
		s.Highlights = p.Highlights
	}
	if p.UseOfFunds != nil {
		s.UseOfFunds = *p.UseOfFunds
	}
}
