package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/propdesk-org/propdesk-cli/internal/domain/config"
	"github.com/propdesk-org/propdesk-cli/internal/domain/models"
)

const proposalsPath = "/api/v1/proposals"

// ErrNotConfigured is returned when production mode is selected but no
// remote URL has been configured.
var ErrNotConfigured = errors.New("remote url not configured")

// Client fetches live proposal listings from the backing service. It
// makes no retry attempts; failures are surfaced to the caller, which
// treats them as an empty result.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a remote client from runtime configuration.
func NewClient(cfg *config.RuntimeConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: cfg.RemoteURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// FetchProposals retrieves the current proposal list. An empty array is
// a valid response when no remote data exists yet.
func (c *Client) FetchProposals(ctx context.Context) ([]*models.Proposal, error) {
	if c.baseURL == "" {
		return nil, ErrNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+proposalsPath, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build proposals request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch proposals: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("proposals fetch returned status %d", resp.StatusCode)
	}

	var proposals []*models.Proposal
	if err := json.NewDecoder(resp.Body).Decode(&proposals); err != nil {
		return nil, fmt.Errorf("failed to decode proposals response: %w", err)
	}

	if proposals == nil {
		proposals = []*models.Proposal{}
	}
	return proposals, nil
}
