package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/propdesk-org/propdesk-cli/internal/domain"
	"github.com/propdesk-org/propdesk-cli/internal/domain/models"
)

// UpdateStatusParams carries a reviewer decision
type UpdateStatusParams struct {
	ID       string
	Status   models.SubmissionStatus
	Comments string
}

// UpdateStatusResult contains the updated record
type UpdateStatusResult struct {
	Submission *models.Submission
}

// UpdateSubmissionStatus applies a reviewer decision. The transition is
// allowed from any current status, including re-deciding an already
// terminal record: reviewers keep an admin override.
type UpdateSubmissionStatus struct {
	repo SubmissionRepository
	log  *slog.Logger
}

// NewUpdateSubmissionStatus creates a new UpdateSubmissionStatus use case
func NewUpdateSubmissionStatus(repo SubmissionRepository, log *slog.Logger) *UpdateSubmissionStatus {
	return &UpdateSubmissionStatus{repo: repo, log: log}
}

// Run sets the new status, stamps the review time, and stores any
// reviewer comments. draft is not a reviewer target: a submitted
// record keeps its proposal identity and never regresses to draft.
func (uc *UpdateSubmissionStatus) Run(ctx context.Context, params UpdateStatusParams) (*UpdateStatusResult, error) {
	if !models.ReviewableStatus(string(params.Status)) {
		return nil, fmt.Errorf("%q: %w", params.Status, domain.ErrInvalidStatus)
	}

	s, err := uc.repo.Get(ctx, params.ID)
	if err != nil {
		return nil, err
	}

	s.Status = params.Status
	s.ReviewDate = time.Now().UTC()
	if params.Comments != "" {
		s.ReviewComments = params.Comments
	}

	if err := uc.repo.Update(ctx, s); err != nil {
		return nil, err
	}

	uc.log.Debug("updated submission status", "id", s.ID, "status", s.Status)

	return &UpdateStatusResult{Submission: s}, nil
}
