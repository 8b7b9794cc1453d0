package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/propdesk-org/propdesk-cli/internal/domain"
	"github.com/propdesk-org/propdesk-cli/internal/domain/models"
)

// SubmitDraftResult reports the identity rewrite that happens when a
// draft enters the review pipeline.
type SubmitDraftResult struct {
	DraftID    string
	Submission *models.Submission
}

// SubmitDraft promotes a draft into a real submission. The draft
// identity is discarded: a new proposal identity is minted and the
// draft is atomically replaced in the collection.
type SubmitDraft struct {
	repo     SubmissionRepository
	validate *validator.Validate
	log      *slog.Logger
}

// NewSubmitDraft creates a new SubmitDraft use case
func NewSubmitDraft(repo SubmissionRepository, validate *validator.Validate, log *slog.Logger) *SubmitDraft {
	return &SubmitDraft{repo: repo, validate: validate, log: log}
}

// Run looks up the draft, re-validates the required fields, and swaps
// in the submitted successor. The target must exist AND still be in
// draft status; anything else is a draft-not-found failure.
func (uc *SubmitDraft) Run(ctx context.Context, draftID string) (*SubmitDraftResult, error) {
	draft, err := uc.repo.Get(ctx, draftID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", draftID, domain.ErrDraftNotFound)
		}
		return nil, err
	}
	if !draft.IsDraft() {
		return nil, fmt.Errorf("%s: %w", draftID, domain.ErrDraftNotFound)
	}

	if err := validateSubmissionInput(uc.validate, inputFromSubmission(draft)); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	submitted := *draft
	submitted.ID = models.NewSubmissionID(models.KindProposal)
	submitted.Status = models.StatusSubmitted
	submitted.SubmissionDate = now
	submitted.EstimatedReviewDate = now.Add(ReviewSLA)
	submitted.ReviewDate = time.Time{}
	submitted.ReviewComments = ""

	if err := uc.repo.Replace(ctx, draftID, &submitted); err != nil {
		return nil, err
	}

	uc.log.Debug("submitted draft", "draft", draftID, "submission", submitted.ID)

	return &SubmitDraftResult{DraftID: draftID, Submission: &submitted}, nil
}
