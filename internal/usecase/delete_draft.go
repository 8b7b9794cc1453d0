package usecase

import (
	"context"
	"log/slog"
)

// DeleteDraftResult makes the no-op contract explicit: Removed is false
// when no record carried the identity.
type DeleteDraftResult struct {
	Removed bool
}

// DeleteDraft removes a record unconditionally if present. Deleting an
// absent identity is a tolerated no-op.
type DeleteDraft struct {
	repo SubmissionRepository
	log  *slog.Logger
}

// NewDeleteDraft creates a new DeleteDraft use case
func NewDeleteDraft(repo SubmissionRepository, log *slog.Logger) *DeleteDraft {
	return &DeleteDraft{repo: repo, log: log}
}

// Run deletes the record and reports whether anything was removed.
func (uc *DeleteDraft) Run(ctx context.Context, draftID string) (*DeleteDraftResult, error) {
	removed, err := uc.repo.Delete(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if !removed {
		uc.log.Debug("delete skipped, record absent", "id", draftID)
	}
	return &DeleteDraftResult{Removed: removed}, nil
}
