package app

import (
	"log/slog"

	"github.com/propdesk-org/propdesk-cli/internal/domain/config"
	"github.com/propdesk-org/propdesk-cli/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig
	Logger *slog.Logger

	// Lifecycle store operations
	CreateSubmission *usecase.CreateSubmission
	SaveDraft        *usecase.SaveDraft
	SubmitDraft      *usecase.SubmitDraft
	UpdateDraft      *usecase.UpdateDraft
	DeleteDraft      *usecase.DeleteDraft
	UpdateStatus     *usecase.UpdateSubmissionStatus
	ListSubmissions  *usecase.ListSubmissions
	GetSubmission    *usecase.GetSubmission

	// Mode-resolved read path
	ListProposals *usecase.ListProposals
	GetStats      *usecase.GetStats

	// Adapters (needed for scenario discovery in the CLI)
	Scenarios usecase.ScenarioSource
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	logger *slog.Logger,
	createSubmission *usecase.CreateSubmission,
	saveDraft *usecase.SaveDraft,
	submitDraft *usecase.SubmitDraft,
	updateDraft *usecase.UpdateDraft,
	deleteDraft *usecase.DeleteDraft,
	updateStatus *usecase.UpdateSubmissionStatus,
	listSubmissions *usecase.ListSubmissions,
	getSubmission *usecase.GetSubmission,
	listProposals *usecase.ListProposals,
	getStats *usecase.GetStats,
	scenarios usecase.ScenarioSource,
) (*App, error) {
	return &App{
		Config:           cfg,
		Logger:           logger,
		CreateSubmission: createSubmission,
		SaveDraft:        saveDraft,
		SubmitDraft:      submitDraft,
		UpdateDraft:      updateDraft,
		DeleteDraft:      deleteDraft,
		UpdateStatus:     updateStatus,
		ListSubmissions:  listSubmissions,
		GetSubmission:    getSubmission,
		ListProposals:    listProposals,
		GetStats:         getStats,
		Scenarios:        scenarios,
	}, nil
}
