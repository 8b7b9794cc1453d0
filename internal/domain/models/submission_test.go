package models_test

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/propdesk-org/propdesk-cli/internal/domain/models"
)

func TestNewSubmissionID(t *testing.T) {
	t.Run("draft identity format", func(t *testing.T) {
		id := models.NewSubmissionID(models.KindDraft)

		parts := strings.Split(id, "_")
		require.Len(t, parts, 3)
		assert.Equal(t, "draft", parts[0])

		millis, err := strconv.ParseInt(parts[1], 10, 64)
		require.NoError(t, err)
		assert.InDelta(t, time.Now().UnixMilli(), millis, 5000)

		assert.Len(t, parts[2], 8)
	})

	t.Run("proposal identity format", func(t *testing.T) {
		id := models.NewSubmissionID(models.KindProposal)
		assert.True(t, strings.HasPrefix(id, "proposal_"))
	})

	t.Run("identities are unique", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 100; i++ {
			id := models.NewSubmissionID(models.KindDraft)
			assert.False(t, seen[id], "duplicate identity %s", id)
			seen[id] = true
		}
	})
}

func TestSubmissionStatusHelpers(t *testing.T) {
	t.Run("IsDraft", func(t *testing.T) {
		s := &models.Submission{Status: models.StatusDraft}
		assert.True(t, s.IsDraft())

		s.Status = models.StatusSubmitted
		assert.False(t, s.IsDraft())
	})

	t.Run("IsTerminal", func(t *testing.T) {
		cases := map[models.SubmissionStatus]bool{
			models.StatusDraft:            false,
			models.StatusSubmitted:        false,
			models.StatusUnderReview:      false,
			models.StatusApproved:         true,
			models.StatusRejected:         true,
			models.StatusChangesRequested: false,
		}
		for status, want := range cases {
			s := &models.Submission{Status: status}
			assert.Equal(t, want, s.IsTerminal(), "status %s", status)
		}
	})
}

func TestValidStatus(t *testing.T) {
	for _, valid := range []string{
		"draft", "submitted", "under_review",
		"approved", "rejected", "changes_requested",
	} {
		assert.True(t, models.ValidStatus(valid), "%s should be valid", valid)
	}

	for _, invalid := range []string{"", "pending", "DRAFT", "approved "} {
		assert.False(t, models.ValidStatus(invalid), "%q should be invalid", invalid)
	}
}

func TestReviewableStatus(t *testing.T) {
	for _, reviewable := range []string{
		"submitted", "under_review", "approved", "rejected", "changes_requested",
	} {
		assert.True(t, models.ReviewableStatus(reviewable), "%s should be reviewable", reviewable)
	}

	// draft names a valid lifecycle state but is never assignable by a
	// reviewer.
	assert.False(t, models.ReviewableStatus("draft"))
	assert.False(t, models.ReviewableStatus("pending"))
	assert.False(t, models.ReviewableStatus(""))
}

func TestNormalize(t *testing.T) {
	t.Run("fills missing fields", func(t *testing.T) {
		s := models.Normalize(&models.Submission{})

		assert.Equal(t, models.StatusDraft, s.Status)
		assert.True(t, strings.HasPrefix(s.ID, "draft_"))
		assert.False(t, s.SubmissionDate.IsZero())
		assert.NotNil(t, s.Documents)
		assert.NotNil(t, s.RiskFactors)
		assert.NotNil(t, s.Highlights)
	})

	t.Run("nil input", func(t *testing.T) {
		s := models.Normalize(nil)
		require.NotNil(t, s)
		assert.Equal(t, models.StatusDraft, s.Status)
	})

	t.Run("id kind follows status", func(t *testing.T) {
		s := models.Normalize(&models.Submission{Status: models.StatusSubmitted})
		assert.True(t, strings.HasPrefix(s.ID, "proposal_"))
	})

	t.Run("strips review fields from drafts", func(t *testing.T) {
		s := models.Normalize(&models.Submission{
			Status:              models.StatusDraft,
			EstimatedReviewDate: time.Now(),
			ReviewDate:          time.Now(),
			ReviewComments:      "stale",
		})

		assert.True(t, s.EstimatedReviewDate.IsZero())
		assert.True(t, s.ReviewDate.IsZero())
		assert.Empty(t, s.ReviewComments)
	})

	t.Run("keeps review fields on submitted records", func(t *testing.T) {
		reviewed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		s := models.Normalize(&models.Submission{
			Status:         models.StatusApproved,
			ReviewDate:     reviewed,
			ReviewComments: "looks good",
		})

		assert.Equal(t, reviewed, s.ReviewDate)
		assert.Equal(t, "looks good", s.ReviewComments)
	})

	t.Run("idempotent", func(t *testing.T) {
		s := models.Normalize(&models.Submission{AssetName: "Tower"})
		id, date := s.ID, s.SubmissionDate

		again := models.Normalize(s)
		assert.Equal(t, id, again.ID)
		assert.Equal(t, date, again.SubmissionDate)
		assert.Equal(t, "Tower", again.AssetName)
	})
}
