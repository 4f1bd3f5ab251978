package adapters

import (
	"context"
	"fmt"
	"net/url"

	"shoedash-gateway/internal/core/backend"
	"shoedash-gateway/internal/features/stats/domain"
)

// BackendStatsAdapter implements the StatsProvider interface against the
// commerce backend's REST API through the authenticated pipeline.
type BackendStatsAdapter struct {
	client *backend.Client
}

// NewBackendStatsAdapter creates a new BackendStatsAdapter.
func NewBackendStatsAdapter(client *backend.Client) *BackendStatsAdapter {
	return &BackendStatsAdapter{client: client}
}

// Revenue fetches the revenue aggregate for a date range.
func (a *BackendStatsAdapter) Revenue(ctx context.Context, from, to string) (*domain.RevenueStats, error) {
	query := url.Values{}
	query.Set("from", from)
	query.Set("to", to)

	var stats domain.RevenueStats
	if err := a.client.GetJSON(ctx, "/stats/revenue?"+query.Encode(), &stats); err != nil {
		return nil, fmt.Errorf("failed to get revenue stats: %w", err)
	}
	return &stats, nil
}
