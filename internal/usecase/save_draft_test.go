package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/propdesk-org/propdesk-cli/internal/domain/models"
	"github.com/propdesk-org/propdesk-cli/internal/usecase"
)

func TestSaveDraft(t *testing.T) {
	ctx := context.Background()

	t.Run("saves a complete draft", func(t *testing.T) {
		repo := new(MockSubmissionRepository)
		repo.On("Insert", ctx, mock.AnythingOfType("*models.Submission")).Return(nil)

		uc := usecase.NewSaveDraft(repo, discardLogger())
		result, err := uc.Run(ctx, validInput())

		require.NoError(t, err)
		d := result.Draft
		assert.True(t, strings.HasPrefix(d.ID, "draft_"))
		assert.Equal(t, models.StatusDraft, d.Status)
		assert.False(t, d.SubmissionDate.IsZero())
		assert.True(t, d.EstimatedReviewDate.IsZero())

		repo.AssertExpectations(t)
	})

	t.Run("accepts an empty draft", func(t *testing.T) {
		// Drafts carry no validation requirements; any subset of fields
		// may be saved.
		repo := new(MockSubmissionRepository)
		repo.On("Insert", ctx, mock.AnythingOfType("*models.Submission")).Return(nil)

		uc := usecase.NewSaveDraft(repo, discardLogger())
		result, err := uc.Run(ctx, usecase.SubmissionInput{})

		require.NoError(t, err)
		assert.Equal(t, models.StatusDraft, result.Draft.Status)
		assert.Empty(t, result.Draft.AssetName)

		repo.AssertExpectations(t)
	})

	t.Run("partial draft keeps provided fields", func(t *testing.T) {
		repo := new(MockSubmissionRepository)
		repo.On("Insert", ctx, mock.AnythingOfType("*models.Submission")).Return(nil)

		uc := usecase.NewSaveDraft(repo, discardLogger())
		result, err := uc.Run(ctx, usecase.SubmissionInput{AssetName: "Half-finished Idea"})

		require.NoError(t, err)
		assert.Equal(t, "Half-finished Idea", result.Draft.AssetName)
	})
}
