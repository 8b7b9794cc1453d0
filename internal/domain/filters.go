package domain

import (
	"github.com/propdesk-org/propdesk-cli/internal/domain/models"
)

// SubmissionFilter defines filtering options for the lifecycle store
type SubmissionFilter struct {
	Status   models.SubmissionStatus
	Category string
}

// Matches reports whether a submission passes the filter.
func (f SubmissionFilter) Matches(s *models.Submission) bool {
	if f.Status != "" && s.Status != f.Status {
		return false
	}
	if f.Category != "" && s.Category != f.Category {
		return false
	}
	return true
}
