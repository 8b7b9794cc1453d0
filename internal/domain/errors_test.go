package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/propdesk-org/propdesk-cli/internal/domain"
)

func TestValidationError(t *testing.T) {
	t.Run("message lists fields sorted", func(t *testing.T) {
		err := &domain.ValidationError{Fields: []string{"targetAmount", "assetName", "description"}}
		assert.Equal(t, "missing required fields: assetName, description, targetAmount", err.Error())
	})

	t.Run("IsValidation unwraps", func(t *testing.T) {
		err := fmt.Errorf("create failed: %w", &domain.ValidationError{Fields: []string{"assetName"}})
		assert.True(t, domain.IsValidation(err))
		assert.False(t, domain.IsValidation(errors.New("other")))
		assert.False(t, domain.IsValidation(nil))
	})
}
