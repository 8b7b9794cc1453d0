package cli

import (
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/propdesk-org/propdesk-cli/internal/usecase"
)

func newFlagsCmd() (*cobra.Command, *submissionFlags) {
	var flags submissionFlags
	cmd := &cobra.Command{Use: "test", RunE: func(cmd *cobra.Command, args []string) error { return nil }}
	flags.register(cmd)
	return cmd, &flags
}

func TestSubmissionFlagsInput(t *testing.T) {
	t.Run("parses display-formatted values", func(t *testing.T) {
		cmd, flags := newFlagsCmd()
		require.NoError(t, cmd.ParseFlags([]string{
			"--name", "Marina Bay Commercial Tower",
			"--description", "Grade-A office tower",
			"--target", "$25,000,000",
			"--token-price", "$100",
			"--yield", "9.2%",
			"--deadline", "2026-12-31",
			"--risk", "vacancy risk",
			"--risk", "rate risk",
			"--document", "prospectus.pdf",
		}))

		in, err := flags.input()
		require.NoError(t, err)

		assert.Equal(t, "Marina Bay Commercial Tower", in.AssetName)
		assert.Equal(t, "25000000", in.TargetAmount.String())
		assert.Equal(t, "100", in.TokenPrice.String())
		assert.Equal(t, "9.2", in.ExpectedYield.String())
		assert.Equal(t, time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC), in.FundingDeadline)
		assert.Equal(t, []string{"vacancy risk", "rate risk"}, in.RiskFactors)
		require.Len(t, in.Documents, 1)
		assert.Equal(t, "prospectus.pdf", in.Documents[0].Name)
	})

	t.Run("rejects malformed deadline", func(t *testing.T) {
		cmd, flags := newFlagsCmd()
		require.NoError(t, cmd.ParseFlags([]string{"--deadline", "31/12/2026"}))

		_, err := flags.input()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid deadline")
	})

	t.Run("rejects malformed amount", func(t *testing.T) {
		cmd, flags := newFlagsCmd()
		require.NoError(t, cmd.ParseFlags([]string{"--target", "lots"}))

		_, err := flags.input()
		assert.Error(t, err)
	})
}

func TestDraftPatchFromFlags(t *testing.T) {
	t.Run("only changed flags appear in the patch", func(t *testing.T) {
		cmd, flags := newFlagsCmd()
		require.NoError(t, cmd.ParseFlags([]string{
			"--name", "Renamed Asset",
			"--target", "$2,000,000",
		}))

		patch, err := draftPatchFromFlags(cmd, flags)
		require.NoError(t, err)

		require.NotNil(t, patch.AssetName)
		assert.Equal(t, "Renamed Asset", *patch.AssetName)
		require.NotNil(t, patch.TargetAmount)
		assert.Equal(t, "2000000", patch.TargetAmount.String())

		assert.Nil(t, patch.Description)
		assert.Nil(t, patch.TokenPrice)
		assert.Nil(t, patch.RiskFactors)
	})

	t.Run("explicit empty value clears the field", func(t *testing.T) {
		cmd, flags := newFlagsCmd()
		require.NoError(t, cmd.ParseFlags([]string{"--description", ""}))

		patch, err := draftPatchFromFlags(cmd, flags)
		require.NoError(t, err)

		require.NotNil(t, patch.Description)
		assert.Empty(t, *patch.Description)
	})

	t.Run("no flags yields an empty patch", func(t *testing.T) {
		cmd, flags := newFlagsCmd()
		require.NoError(t, cmd.ParseFlags(nil))

		patch, err := draftPatchFromFlags(cmd, flags)
		require.NoError(t, err)
		assert.Equal(t, usecase.DraftPatch{}, patch)
	})
}
