//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"

	"github.com/propdesk-org/propdesk-cli/internal/adapters"
	"github.com/propdesk-org/propdesk-cli/internal/config"
	"github.com/propdesk-org/propdesk-cli/internal/logging"
	"github.com/propdesk-org/propdesk-cli/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper, sink usecase.ProgressSink) (*App, error) {
	wire.Build(
		// Runtime configuration
		config.Provider,

		// Logging
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewValidator,
		usecase.NewCreateSubmission,
		usecase.NewSaveDraft,
		usecase.NewSubmitDraft,
		usecase.NewUpdateDraft,
		usecase.NewDeleteDraft,
		usecase.NewUpdateSubmissionStatus,
		usecase.NewListSubmissions,
		usecase.NewGetSubmission,
		usecase.NewListProposals,
		usecase.NewGetStats,

		// App
		NewApp,
	)
	return nil, nil
}
