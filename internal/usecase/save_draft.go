package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/propdesk-org/propdesk-cli/internal/domain/models"
)

// SaveDraftResult contains the newly saved draft
type SaveDraftResult struct {
	Draft *models.Submission
}

// SaveDraft stores a work-in-progress proposal. Drafts carry no
// validation requirements: any subset of fields may be saved.
type SaveDraft struct {
	repo SubmissionRepository
	log  *slog.Logger
}

// NewSaveDraft creates a new SaveDraft use case
func NewSaveDraft(repo SubmissionRepository, log *slog.Logger) *SaveDraft {
	return &SaveDraft{repo: repo, log: log}
}

// Run mints a draft identity and inserts the record at the head of the
// collection. SubmissionDate marks "last saved" for drafts.
func (uc *SaveDraft) Run(ctx context.Context, in SubmissionInput) (*SaveDraftResult, error) {
	s := &models.Submission{
		ID:             models.NewSubmissionID(models.KindDraft),
		Status:         models.StatusDraft,
		SubmissionDate: time.Now().UTC(),
	}
	in.apply(s)
	models.Normalize(s)

	if err := uc.repo.Insert(ctx, s); err != nil {
		return nil, err
	}

	uc.log.Debug("saved draft", "id", s.ID, "asset", s.AssetName)

	return &SaveDraftResult{Draft: s}, nil
}
