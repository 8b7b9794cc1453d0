package render

import (
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/propdesk-org/propdesk-cli/internal/domain/models"
	"github.com/propdesk-org/propdesk-cli/internal/usecase"
)

// SubmissionsRenderer renders lifecycle-store records and operation
// outcomes
type SubmissionsRenderer struct {
	out  io.Writer
	json bool
}

// NewSubmissionsRenderer creates a new submissions renderer
func NewSubmissionsRenderer(out io.Writer, json bool) *SubmissionsRenderer {
	return &SubmissionsRenderer{out: out, json: json}
}

// RenderSubmissionList renders stored records, most-recent-first
func (r *SubmissionsRenderer) RenderSubmissionList(subs []*models.Submission) error {
	if r.json {
		return writeJSON(r.out, subs)
	}

	if len(subs) == 0 {
		fmt.Fprintln(r.out, "No records found")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Asset", "Status", "Target", "Last Saved / Submitted"})

	for _, s := range subs {
		t.AppendRow(table.Row{
			s.ID,
			s.AssetName,
			submissionStatusCell(s.Status),
			models.FormatAmount(s.TargetAmount),
			s.SubmissionDate.Format(time.RFC3339),
		})
	}

	t.Render()
	return nil
}

// RenderSubmission renders one record in detail
func (r *SubmissionsRenderer) RenderSubmission(s *models.Submission) error {
	if r.json {
		return writeJSON(r.out, s)
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.AppendRows([]table.Row{
		{"ID", s.ID},
		{"Status", submissionStatusCell(s.Status)},
		{"Asset", s.AssetName},
		{"Type", s.AssetType},
		{"Category", s.Category},
		{"Location", s.Location},
		{"Description", s.Description},
		{"Target", models.FormatAmount(s.TargetAmount)},
		{"Token price", models.FormatAmount(s.TokenPrice)},
		{"Min investment", models.FormatAmount(s.MinimumInvestment)},
		{"Expected yield", models.FormatPercent(s.ExpectedYield)},
		{"Submitted", s.SubmissionDate.Format(time.RFC3339)},
	})
	if !s.EstimatedReviewDate.IsZero() {
		t.AppendRow(table.Row{"Est. review", s.EstimatedReviewDate.Format(time.RFC3339)})
	}
	if !s.ReviewDate.IsZero() {
		t.AppendRow(table.Row{"Reviewed", s.ReviewDate.Format(time.RFC3339)})
	}
	if s.ReviewComments != "" {
		t.AppendRow(table.Row{"Comments", s.ReviewComments})
	}
	t.Render()

	return nil
}

// RenderCreated reports a direct submission
func (r *SubmissionsRenderer) RenderCreated(s *models.Submission) error {
	if r.json {
		return writeJSON(r.out, s)
	}

	successStyle.Fprintf(r.out, "✅ Submitted %s\n", s.AssetName)
	fmt.Fprintf(r.out, "ID: %s\n", s.ID)
	fmt.Fprintf(r.out, "Estimated review by %s\n", s.EstimatedReviewDate.Format("2006-01-02"))
	return nil
}

// RenderDraftSaved reports a saved draft
func (r *SubmissionsRenderer) RenderDraftSaved(s *models.Submission) error {
	if r.json {
		return writeJSON(r.out, s)
	}

	successStyle.Fprintln(r.out, "✅ Draft saved")
	fmt.Fprintf(r.out, "ID: %s\n", s.ID)
	return nil
}

// RenderDraftSubmitted reports the draft-to-submission identity rewrite
func (r *SubmissionsRenderer) RenderDraftSubmitted(result *usecase.SubmitDraftResult) error {
	if r.json {
		return writeJSON(r.out, map[string]any{
			"draftId":    result.DraftID,
			"proposalId": result.Submission.ID,
			"submission": result.Submission,
		})
	}

	successStyle.Fprintf(r.out, "✅ Submitted %s\n", result.Submission.AssetName)
	faintStyle.Fprintf(r.out, "%s → %s\n", result.DraftID, result.Submission.ID)
	fmt.Fprintf(r.out, "Estimated review by %s\n", result.Submission.EstimatedReviewDate.Format("2006-01-02"))
	return nil
}

// RenderDraftUpdated reports an edit, including the tolerated no-op
func (r *SubmissionsRenderer) RenderDraftUpdated(id string, applied bool) error {
	if r.json {
		return writeJSON(r.out, map[string]any{"draftId": id, "applied": applied})
	}

	if !applied {
		noticeStyle.Fprintf(r.out, "Nothing to update: %s is not a draft\n", id)
		return nil
	}
	successStyle.Fprintln(r.out, "✅ Draft updated")
	return nil
}

// RenderDraftDeleted reports a delete, including the tolerated no-op
func (r *SubmissionsRenderer) RenderDraftDeleted(id string, removed bool) error {
	if r.json {
		return writeJSON(r.out, map[string]any{"draftId": id, "removed": removed})
	}

	if !removed {
		noticeStyle.Fprintf(r.out, "Nothing to delete: %s not found\n", id)
		return nil
	}
	successStyle.Fprintln(r.out, "✅ Draft deleted")
	return nil
}

// RenderReviewed reports a reviewer decision
func (r *SubmissionsRenderer) RenderReviewed(s *models.Submission) error {
	if r.json {
		return writeJSON(r.out, s)
	}

	successStyle.Fprintf(r.out, "✅ %s is now %s\n", s.ID, s.Status)
	if s.ReviewComments != "" {
		fmt.Fprintf(r.out, "Comments: %s\n", s.ReviewComments)
	}
	return nil
}

func submissionStatusCell(status models.SubmissionStatus) string {
	switch status {
	case models.StatusApproved:
		return successStyle.Sprint(string(status))
	case models.StatusRejected:
		return failStyle.Sprint(string(status))
	case models.StatusDraft:
		return faintStyle.Sprint(string(status))
	default:
		return noticeStyle.Sprint(string(status))
	}
}
