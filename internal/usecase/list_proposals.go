package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"

	"github.com/propdesk-org/propdesk-cli/internal/domain"
	"github.com/propdesk-org/propdesk-cli/internal/domain/config"
	"github.com/propdesk-org/propdesk-cli/internal/domain/models"
)

// ListProposalsParams contains parameters for resolving the visible
// proposal list.
type ListProposalsParams struct {
	// Search fuzzy-matches against asset names when non-empty.
	Search string
}

// ListProposalsResult contains the resolved proposal set and the source
// that produced it.
type ListProposalsResult struct {
	Mode      config.DataMode
	Scenario  string // demo mode only
	Proposals []*models.Proposal
}

// ListProposals is the single read path all display logic depends on.
// The configured data mode decides which of the three sources backs
// the visible proposal list; every source resolves to the same shape.
type ListProposals struct {
	config    *config.RuntimeConfig
	repo      SubmissionRepository
	scenarios ScenarioSource
	remote    RemoteSource
	sink      ProgressSink
	log       *slog.Logger
}

// NewListProposals creates a new ListProposals use case
func NewListProposals(
	cfg *config.RuntimeConfig,
	repo SubmissionRepository,
	scenarios ScenarioSource,
	remote RemoteSource,
	sink ProgressSink,
	log *slog.Logger,
) *ListProposals {
	return &ListProposals{
		config:    cfg,
		repo:      repo,
		scenarios: scenarios,
		remote:    remote,
		sink:      sink,
		log:       log,
	}
}

// Run resolves the proposal list for the configured mode.
func (uc *ListProposals) Run(ctx context.Context, params ListProposalsParams) (*ListProposalsResult, error) {
	result := &ListProposalsResult{Mode: uc.config.Mode}

	switch uc.config.Mode {
	case config.ModeProduction:
		result.Proposals = uc.fetchLive(ctx)

	case config.ModeDevelopment:
		subs, err := uc.repo.List(ctx, domain.SubmissionFilter{Status: models.StatusApproved})
		if err != nil {
			return nil, err
		}
		result.Proposals = lo.Map(subs, func(s *models.Submission, _ int) *models.Proposal {
			return models.FromSubmission(s)
		})

	case config.ModeDemo:
		result.Scenario = uc.config.ScenarioOrDefault()
		proposals, err := uc.scenarios.Generate(result.Scenario)
		if err != nil {
			return nil, err
		}
		result.Proposals = proposals

	default:
		return nil, fmt.Errorf("%q: %w", uc.config.Mode, domain.ErrInvalidMode)
	}

	if result.Proposals == nil {
		result.Proposals = []*models.Proposal{}
	}

	if params.Search != "" {
		result.Proposals = fuzzyFilter(result.Proposals, params.Search)
	}

	return result, nil
}

// fetchLive queries the remote backing service. Failures are swallowed
// here: the dashboard shows an empty list plus a logged diagnostic, and
// no retry is attempted.
func (uc *ListProposals) fetchLive(ctx context.Context) []*models.Proposal {
	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "loading",
		Message: "Fetching live proposals",
		Spinner: true,
	})

	proposals, err := uc.remote.FetchProposals(ctx)

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "complete",
		Message: "Live proposals loaded",
	})

	if err != nil {
		uc.log.Warn("remote proposal fetch failed, showing empty list", "error", err)
		return []*models.Proposal{}
	}
	return proposals
}

// fuzzyFilter keeps proposals whose asset name fuzzy-matches the query,
// in match-quality order.
func fuzzyFilter(proposals []*models.Proposal, query string) []*models.Proposal {
	names := lo.Map(proposals, func(p *models.Proposal, _ int) string {
		return p.AssetName
	})

	matches := fuzzy.Find(query, names)
	filtered := make([]*models.Proposal, 0, len(matches))
	for _, m := range matches {
		filtered = append(filtered, proposals[m.Index])
	}
	return filtered
}
