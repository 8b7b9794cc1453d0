package submissions_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/propdesk-org/propdesk-cli/internal/adapters/repository/submissions"
	"github.com/propdesk-org/propdesk-cli/internal/domain"
	"github.com/propdesk-org/propdesk-cli/internal/domain/models"
	"github.com/propdesk-org/propdesk-cli/internal/usecase"
)

func newTestRepo(t *testing.T) (*submissions.FileRepository, string) {
	t.Helper()
	tmpDir := t.TempDir()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo, err := submissions.NewFileRepository(tmpDir, log)
	require.NoError(t, err)
	return repo, tmpDir
}

func testSubmission(id string, status models.SubmissionStatus) *models.Submission {
	return models.Normalize(&models.Submission{
		ID:             id,
		Status:         status,
		SubmissionDate: time.Now().UTC(),
		AssetName:      "Asset " + id,
		Category:       "Real Estate",
		Description:    "test record",
		TargetAmount:   decimal.NewFromInt(1_000_000),
	})
}

func TestFileRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("insert and retrieve", func(t *testing.T) {
		repo, _ := newTestRepo(t)

		s := testSubmission("proposal_1_aaaa0000", models.StatusSubmitted)
		require.NoError(t, repo.Insert(ctx, s))

		got, err := repo.Get(ctx, s.ID)
		require.NoError(t, err)
		assert.Equal(t, s.ID, got.ID)
		assert.Equal(t, s.AssetName, got.AssetName)
		assert.True(t, got.TargetAmount.Equal(s.TargetAmount))
	})

	t.Run("get returns a clone", func(t *testing.T) {
		repo, _ := newTestRepo(t)

		s := testSubmission("draft_1_bbbb0000", models.StatusDraft)
		require.NoError(t, repo.Insert(ctx, s))

		got, err := repo.Get(ctx, s.ID)
		require.NoError(t, err)
		got.AssetName = "mutated"

		again, err := repo.Get(ctx, s.ID)
		require.NoError(t, err)
		assert.Equal(t, s.AssetName, again.AssetName)
	})

	t.Run("get missing", func(t *testing.T) {
		repo, _ := newTestRepo(t)

		_, err := repo.Get(ctx, "proposal_0_missing0")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("duplicate insert", func(t *testing.T) {
		repo, _ := newTestRepo(t)

		s := testSubmission("draft_2_cccc0000", models.StatusDraft)
		require.NoError(t, repo.Insert(ctx, s))

		err := repo.Insert(ctx, s)
		assert.ErrorIs(t, err, domain.ErrAlreadyExists)
		assert.Equal(t, 1, repo.Count(ctx))
	})

	t.Run("list most recent first", func(t *testing.T) {
		repo, _ := newTestRepo(t)

		first := testSubmission("draft_1_order000", models.StatusDraft)
		second := testSubmission("draft_2_order000", models.StatusDraft)
		third := testSubmission("draft_3_order000", models.StatusDraft)
		require.NoError(t, repo.Insert(ctx, first))
		require.NoError(t, repo.Insert(ctx, second))
		require.NoError(t, repo.Insert(ctx, third))

		all, err := repo.List(ctx, domain.SubmissionFilter{})
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, third.ID, all[0].ID)
		assert.Equal(t, second.ID, all[1].ID)
		assert.Equal(t, first.ID, all[2].ID)
	})

	t.Run("list with status filter", func(t *testing.T) {
		repo, _ := newTestRepo(t)

		require.NoError(t, repo.Insert(ctx, testSubmission("draft_1_filt0000", models.StatusDraft)))
		require.NoError(t, repo.Insert(ctx, testSubmission("proposal_1_filt0000", models.StatusSubmitted)))
		require.NoError(t, repo.Insert(ctx, testSubmission("proposal_2_filt0000", models.StatusApproved)))

		drafts, err := repo.List(ctx, domain.SubmissionFilter{Status: models.StatusDraft})
		require.NoError(t, err)
		require.Len(t, drafts, 1)
		assert.Equal(t, "draft_1_filt0000", drafts[0].ID)
	})

	t.Run("update in place", func(t *testing.T) {
		repo, _ := newTestRepo(t)

		s := testSubmission("proposal_1_upd00000", models.StatusSubmitted)
		require.NoError(t, repo.Insert(ctx, s))

		s.Status = models.StatusApproved
		require.NoError(t, repo.Update(ctx, s))

		got, err := repo.Get(ctx, s.ID)
		require.NoError(t, err)
		assert.Equal(t, models.StatusApproved, got.Status)
	})

	t.Run("update missing", func(t *testing.T) {
		repo, _ := newTestRepo(t)

		err := repo.Update(ctx, testSubmission("proposal_0_ghost000", models.StatusSubmitted))
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("delete present and absent", func(t *testing.T) {
		repo, _ := newTestRepo(t)

		s := testSubmission("draft_1_del00000", models.StatusDraft)
		require.NoError(t, repo.Insert(ctx, s))

		removed, err := repo.Delete(ctx, s.ID)
		require.NoError(t, err)
		assert.True(t, removed)
		assert.Equal(t, 0, repo.Count(ctx))

		removed, err = repo.Delete(ctx, s.ID)
		require.NoError(t, err)
		assert.False(t, removed)
	})

	t.Run("replace swaps identity keeping position and size", func(t *testing.T) {
		repo, _ := newTestRepo(t)

		older := testSubmission("draft_1_repl0000", models.StatusDraft)
		draft := testSubmission("draft_2_repl0000", models.StatusDraft)
		newer := testSubmission("draft_3_repl0000", models.StatusDraft)
		require.NoError(t, repo.Insert(ctx, older))
		require.NoError(t, repo.Insert(ctx, draft))
		require.NoError(t, repo.Insert(ctx, newer))

		submitted := testSubmission("proposal_9_repl0000", models.StatusSubmitted)
		require.NoError(t, repo.Replace(ctx, draft.ID, submitted))

		assert.Equal(t, 3, repo.Count(ctx))

		_, err := repo.Get(ctx, draft.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound)

		all, err := repo.List(ctx, domain.SubmissionFilter{})
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, newer.ID, all[0].ID)
		assert.Equal(t, submitted.ID, all[1].ID)
		assert.Equal(t, older.ID, all[2].ID)
	})

	t.Run("replace missing target", func(t *testing.T) {
		repo, _ := newTestRepo(t)

		err := repo.Replace(ctx, "draft_0_ghost000", testSubmission("proposal_1_ghost000", models.StatusSubmitted))
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

// Draft save then submit, against the real store: the draft identity is
// discarded, the collection size is unchanged, and the submitted record
// survives a reopen.
func TestDraftSubmitEndToEnd(t *testing.T) {
	ctx := context.Background()
	tmpDir := t.TempDir()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	repo, err := submissions.NewFileRepository(tmpDir, log)
	require.NoError(t, err)

	save := usecase.NewSaveDraft(repo, log)
	submit := usecase.NewSubmitDraft(repo, usecase.NewValidator(), log)

	saved, err := save.Run(ctx, usecase.SubmissionInput{
		AssetName:    "Harbor Logistics Park",
		Description:  "Bulk distribution warehouses near the port",
		TargetAmount: decimal.NewFromInt(12_000_000),
	})
	require.NoError(t, err)
	require.Equal(t, 1, repo.Count(ctx))

	result, err := submit.Run(ctx, saved.Draft.ID)
	require.NoError(t, err)

	assert.Equal(t, 1, repo.Count(ctx))
	assert.NotEqual(t, saved.Draft.ID, result.Submission.ID)

	_, err = repo.Get(ctx, saved.Draft.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	reopened, err := submissions.NewFileRepository(tmpDir, log)
	require.NoError(t, err)
	got, err := reopened.Get(ctx, result.Submission.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusSubmitted, got.Status)
	assert.Equal(t, "Harbor Logistics Park", got.AssetName)
}

func TestFileRepositoryPersistence(t *testing.T) {
	ctx := context.Background()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("survives reopen", func(t *testing.T) {
		tmpDir := t.TempDir()

		repo, err := submissions.NewFileRepository(tmpDir, log)
		require.NoError(t, err)
		s := testSubmission("proposal_1_persist0", models.StatusSubmitted)
		require.NoError(t, repo.Insert(ctx, s))

		reopened, err := submissions.NewFileRepository(tmpDir, log)
		require.NoError(t, err)
		got, err := reopened.Get(ctx, s.ID)
		require.NoError(t, err)
		assert.Equal(t, s.AssetName, got.AssetName)
		assert.Equal(t, models.StatusSubmitted, got.Status)
	})

	t.Run("unparseable file resets to empty", func(t *testing.T) {
		tmpDir := t.TempDir()
		dataDir := filepath.Join(tmpDir, submissions.PropdeskDir)
		require.NoError(t, os.MkdirAll(dataDir, 0755))
		require.NoError(t, os.WriteFile(
			filepath.Join(dataDir, submissions.SubmissionsFile),
			[]byte("{not json"), 0644))

		repo, err := submissions.NewFileRepository(tmpDir, log)
		require.NoError(t, err)
		assert.Equal(t, 0, repo.Count(ctx))

		// The store is usable again after the reset.
		require.NoError(t, repo.Insert(ctx, testSubmission("draft_1_reset000", models.StatusDraft)))
		assert.Equal(t, 1, repo.Count(ctx))
	})

	t.Run("partially shaped records are repaired on load", func(t *testing.T) {
		tmpDir := t.TempDir()
		dataDir := filepath.Join(tmpDir, submissions.PropdeskDir)
		require.NoError(t, os.MkdirAll(dataDir, 0755))
		payload := `{"submissions": [{"assetName": "Bare Record"}]}`
		require.NoError(t, os.WriteFile(
			filepath.Join(dataDir, submissions.SubmissionsFile), []byte(payload), 0644))

		repo, err := submissions.NewFileRepository(tmpDir, log)
		require.NoError(t, err)

		all, err := repo.List(ctx, domain.SubmissionFilter{})
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, models.StatusDraft, all[0].Status)
		assert.NotEmpty(t, all[0].ID)
		assert.Equal(t, "Bare Record", all[0].AssetName)
	})
}
