package ports

import (
	"context"

	"shoedash-gateway/internal/features/stats/domain"
)

// StatsProvider fetches revenue aggregates from the backend through the
// authenticated pipeline.
type StatsProvider interface {
	Revenue(ctx context.Context, from, to string) (*domain.RevenueStats, error)
}
