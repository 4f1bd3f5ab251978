package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"shoedash-gateway/internal/core/cache"
	"shoedash-gateway/internal/core/logger"
	"shoedash-gateway/internal/features/stats/domain"
	"shoedash-gateway/internal/features/stats/ports"

	"go.uber.org/zap"
)

// StatsService serves revenue aggregates, caching backend responses in Redis
// as JSON under a range-derived key. A cache failure degrades to a direct
// backend call, never to an error.
type StatsService struct {
	provider ports.StatsProvider
	cache    cache.Cache
	ttl      time.Duration
	// now is swappable for tests.
	now func() time.Time
}

// NewStatsService creates a new StatsService with the given cache TTL.
func NewStatsService(provider ports.StatsProvider, c cache.Cache, ttl time.Duration) *StatsService {
	return &StatsService{
		provider: provider,
		cache:    c,
		ttl:      ttl,
		now:      time.Now,
	}
}

func cacheKey(from, to string) string {
	return fmt.Sprintf("stats:revenue:%s:%s", from, to)
}

// Revenue returns the revenue aggregate for a date range, cached.
func (s *StatsService) Revenue(ctx context.Context, from, to string) (*domain.RevenueStats, error) {
	key := cacheKey(from, to)

	if data, err := s.cache.Get(ctx, key); err == nil {
		var stats domain.RevenueStats
		if jsonErr := json.Unmarshal(data, &stats); jsonErr == nil {
			return &stats, nil
		}
		// Corrupt entry, fall through to the backend and overwrite it.
		logger.Named("stats").Warn("Discarding corrupt stats cache entry", zap.String("key", key))
	} else if !cache.IsNotFound(err) {
		logger.Named("stats").Warn("Stats cache read failed", zap.Error(err))
	}

	stats, err := s.provider.Revenue(ctx, from, to)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(stats); err == nil {
		if err := s.cache.Set(ctx, key, data, s.ttl); err != nil {
			logger.Named("stats").Warn("Stats cache write failed", zap.Error(err))
		}
	}
	return stats, nil
}

// WarmCurrentMonth pre-fetches the current-month snapshot so the dashboard
// landing page hits a warm cache. Runs on a cron schedule.
func (s *StatsService) WarmCurrentMonth(ctx context.Context) error {
	now := s.now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	stats, err := s.provider.Revenue(ctx, from.Format("2006-01-02"), now.Format("2006-01-02"))
	if err != nil {
		return fmt.Errorf("failed to warm current-month stats: %w", err)
	}

	data, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to encode stats: %w", err)
	}
	key := cacheKey(from.Format("2006-01-02"), now.Format("2006-01-02"))
	if err := s.cache.Set(ctx, key, data, s.ttl); err != nil {
		return fmt.Errorf("failed to cache stats: %w", err)
	}

	logger.Named("stats").Info("Warmed current-month revenue snapshot",
		zap.String("from", from.Format("2006-01-02")),
		zap.Float64("total", stats.TotalRevenue),
	)
	return nil
}
