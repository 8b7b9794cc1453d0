package usecase

import (
	"context"

	"github.com/propdesk-org/propdesk-cli/internal/domain/config"
	"github.com/propdesk-org/propdesk-cli/internal/domain/models"
)

// GetStatsResult contains aggregates over the currently visible
// proposal set.
type GetStatsResult struct {
	Mode  config.DataMode
	Stats models.DerivedStats
}

// GetStats is mode-agnostic: it resolves the proposal list for the
// current mode and derives aggregates from whatever came back. Nothing
// is cached; every read recomputes.
type GetStats struct {
	list *ListProposals
}

// NewGetStats creates a new GetStats use case
func NewGetStats(list *ListProposals) *GetStats {
	return &GetStats{list: list}
}

// Run computes fresh aggregates. An empty proposal set yields all-zero
// stats.
func (uc *GetStats) Run(ctx context.Context) (*GetStatsResult, error) {
	proposals, err := uc.list.Run(ctx, ListProposalsParams{})
	if err != nil {
		return nil, err
	}

	return &GetStatsResult{
		Mode:  proposals.Mode,
		Stats: models.ComputeStats(proposals.Proposals),
	}, nil
}
