package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/khaleelibraheem/abujabureaudechange-backend/internal/core/domain"
	"github.com/khaleelibraheem/abujabureaudechange-backend/internal/core/ports/providers"
)

// RateCacheService fronts the upstream rate provider with a TTL cache keyed
// by base currency. Snapshots are immutable and replaced wholesale; a failed
// refresh never evicts the previous snapshot.
type RateCacheService struct {
	provider providers.RateProvider
	ttl      time.Duration
	logger   *slog.Logger

	mu        sync.RWMutex
	snapshots map[string]*domain.RateSnapshot

	// One in-flight upstream fetch per base currency; concurrent callers for
	// the same base share its result.
	flight singleflight.Group
}

// NewRateCacheService creates a new RateCacheService.
func NewRateCacheService(provider providers.RateProvider, ttl time.Duration, logger *slog.Logger) *RateCacheService {
	if logger == nil {
		logger = slog.Default()
	}
	return &RateCacheService{
		provider:  provider,
		ttl:       ttl,
		logger:    logger,
		snapshots: make(map[string]*domain.RateSnapshot),
	}
}

// GetLatestRates returns the snapshot for baseCurrency, refreshing from
// upstream when the cached one has expired. When the refresh fails and a
// stale snapshot exists, the stale snapshot is served instead of the error.
func (s *RateCacheService) GetLatestRates(ctx context.Context, baseCurrency string) (*domain.RateSnapshot, error) {
	code, err := normalizeCurrencyCode(baseCurrency)
	if err != nil {
		return nil, err
	}

	cached := s.cachedSnapshot(code)
	if cached != nil && time.Since(cached.FetchedAt) < s.ttl {
		return cached, nil
	}

	v, err, shared := s.flight.Do(code, func() (interface{}, error) {
		// Re-check: a caller that held the flight may have refreshed the
		// cache while this one waited for its turn.
		if cur := s.cachedSnapshot(code); cur != nil && time.Since(cur.FetchedAt) < s.ttl {
			return cur, nil
		}

		fresh, err := s.provider.FetchLatest(ctx, code)
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		s.snapshots[code] = fresh
		s.mu.Unlock()
		return fresh, nil
	})
	if err != nil {
		if cached != nil {
			s.logger.Warn("Upstream refresh failed, serving stale snapshot",
				slog.String("base", code),
				slog.Time("fetched_at", cached.FetchedAt),
				slog.String("error", err.Error()),
			)
			return cached, nil
		}
		return nil, err
	}

	snapshot := v.(*domain.RateSnapshot)
	if shared {
		s.logger.Debug("Rate refresh shared with concurrent caller", slog.String("base", code))
	}
	return snapshot, nil
}

func (s *RateCacheService) cachedSnapshot(code string) *domain.RateSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshots[code]
}
