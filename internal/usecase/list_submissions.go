package usecase

import (
	"context"
	"sort"

	"github.com/propdesk-org/propdesk-cli/internal/domain"
	"github.com/propdesk-org/propdesk-cli/internal/domain/models"
)

// ListSubmissionsParams contains filter parameters for the lifecycle
// store query operations.
type ListSubmissionsParams struct {
	Status   models.SubmissionStatus
	Category string
	// DraftsOnly is shorthand for Status == draft
	DraftsOnly bool
}

// ListSubmissionsResult contains the matching records plus a per-status
// summary.
type ListSubmissionsResult struct {
	Submissions []*models.Submission
	ByStatus    map[models.SubmissionStatus]int
}

// ListSubmissions is the read path over the local lifecycle store.
type ListSubmissions struct {
	repo SubmissionRepository
}

// NewListSubmissions creates a new ListSubmissions use case
func NewListSubmissions(repo SubmissionRepository) *ListSubmissions {
	return &ListSubmissions{repo: repo}
}

// Run returns submissions matching the filter, newest-first by
// submission date. The store's insertion order is close but drifts
// after a draft submit: the successor keeps the draft's position while
// its submission date is fresh.
func (uc *ListSubmissions) Run(ctx context.Context, params ListSubmissionsParams) (*ListSubmissionsResult, error) {
	filter := domain.SubmissionFilter{
		Status:   params.Status,
		Category: params.Category,
	}
	if params.DraftsOnly {
		filter.Status = models.StatusDraft
	}

	subs, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	SortSubmissionsByDate(subs)

	byStatus := make(map[models.SubmissionStatus]int)
	for _, s := range subs {
		byStatus[s.Status]++
	}

	return &ListSubmissionsResult{Submissions: subs, ByStatus: byStatus}, nil
}

// GetSubmission retrieves one record by identity.
type GetSubmission struct {
	repo SubmissionRepository
}

// NewGetSubmission creates a new GetSubmission use case
func NewGetSubmission(repo SubmissionRepository) *GetSubmission {
	return &GetSubmission{repo: repo}
}

// Run returns the record or domain.ErrNotFound.
func (uc *GetSubmission) Run(ctx context.Context, id string) (*models.Submission, error) {
	return uc.repo.Get(ctx, id)
}

// SortSubmissionsByDate orders records newest-first by submission
// date. The sort is stable so records sharing a date keep the store's
// insertion order.
func SortSubmissionsByDate(subs []*models.Submission) {
	sort.SliceStable(subs, func(i, j int) bool {
		return subs[i].SubmissionDate.After(subs[j].SubmissionDate)
	})
}
