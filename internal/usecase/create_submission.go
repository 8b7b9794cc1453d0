package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/propdesk-org/propdesk-cli/internal/domain/models"
)

// ReviewSLA is the fixed window the review team commits to for a fresh
// submission.
const ReviewSLA = 4 * 24 * time.Hour

// CreateSubmissionResult contains the newly created submission
type CreateSubmissionResult struct {
	Submission *models.Submission
}

// CreateSubmission creates a proposal directly in submitted status,
// skipping the draft stage.
type CreateSubmission struct {
	repo     SubmissionRepository
	validate *validator.Validate
	log      *slog.Logger
}

// NewCreateSubmission creates a new CreateSubmission use case
func NewCreateSubmission(repo SubmissionRepository, validate *validator.Validate, log *slog.Logger) *CreateSubmission {
	return &CreateSubmission{repo: repo, validate: validate, log: log}
}

// Run validates the input, mints a proposal identity, and inserts the
// new submission at the head of the collection. Validation failures
// come back as a *domain.ValidationError for inline rendering.
func (uc *CreateSubmission) Run(ctx context.Context, in SubmissionInput) (*CreateSubmissionResult, error) {
	if err := validateSubmissionInput(uc.validate, in); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	s := &models.Submission{
		ID:                  models.NewSubmissionID(models.KindProposal),
		Status:              models.StatusSubmitted,
		SubmissionDate:      now,
		EstimatedReviewDate: now.Add(ReviewSLA),
	}
	in.apply(s)
	models.Normalize(s)

	if err := uc.repo.Insert(ctx, s); err != nil {
		return nil, err
	}

	uc.log.Debug("created submission", "id", s.ID, "asset", s.AssetName)

	return &CreateSubmissionResult{Submission: s}, nil
}
