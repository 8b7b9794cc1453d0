package usecase

import (
	"context"

	"github.com/propdesk-org/propdesk-cli/internal/domain"
	"github.com/propdesk-org/propdesk-cli/internal/domain/models"
)

// SubmissionRepository handles persistence of the lifecycle store
type SubmissionRepository interface {
	Get(ctx context.Context, id string) (*models.Submission, error)
	List(ctx context.Context, filter domain.SubmissionFilter) ([]*models.Submission, error)
	Count(ctx context.Context) int
	Insert(ctx context.Context, s *models.Submission) error
	Update(ctx context.Context, s *models.Submission) error
	Delete(ctx context.Context, id string) (bool, error)
	// Replace atomically swaps oldID for the new record so a draft and
	// its submitted successor are never both present.
	Replace(ctx context.Context, oldID string, s *models.Submission) error
}

// RemoteSource fetches live proposal listings from the backing service
type RemoteSource interface {
	FetchProposals(ctx context.Context) ([]*models.Proposal, error)
}

// ScenarioSource produces synthetic proposal sets for demo mode
type ScenarioSource interface {
	Generate(name string) ([]*models.Proposal, error)
	Scenarios() []string
}

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage   string
	Current int
	Total   int
	Message string
	Spinner bool
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}
