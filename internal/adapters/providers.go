package adapters

import (
	"log/slog"

	"github.com/google/wire"

	"github.com/propdesk-org/propdesk-cli/internal/adapters/remote"
	"github.com/propdesk-org/propdesk-cli/internal/adapters/repository/submissions"
	"github.com/propdesk-org/propdesk-cli/internal/adapters/scenario"
	"github.com/propdesk-org/propdesk-cli/internal/domain/config"
	"github.com/propdesk-org/propdesk-cli/internal/usecase"
)

// ProvideSubmissionRepository provides the file-backed lifecycle store
func ProvideSubmissionRepository(cfg *config.RuntimeConfig, log *slog.Logger) (*submissions.FileRepository, error) {
	return submissions.NewFileRepository(cfg.ProjectRoot, log)
}

// RepositorySet provides the persistence implementations
var RepositorySet = wire.NewSet(
	ProvideSubmissionRepository,
	wire.Bind(new(usecase.SubmissionRepository), new(*submissions.FileRepository)),
)

// ScenarioSet provides the synthetic data source
var ScenarioSet = wire.NewSet(
	scenario.NewGenerator,
	wire.Bind(new(usecase.ScenarioSource), new(*scenario.Generator)),
)

// RemoteSet provides the live backing-service source
var RemoteSet = wire.NewSet(
	remote.NewClient,
	wire.Bind(new(usecase.RemoteSource), new(*remote.Client)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	RepositorySet,
	ScenarioSet,
	RemoteSet,
)
