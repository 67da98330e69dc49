package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/khaleelibraheem/abujabureaudechange-backend/internal/apperrors"
	"github.com/khaleelibraheem/abujabureaudechange-backend/internal/core/domain"
	"github.com/khaleelibraheem/abujabureaudechange-backend/internal/core/ports/providers"
)

// HistoryService assembles N-day rate series for a currency pair, one
// upstream request per calendar day under a bounded concurrency limit.
type HistoryService struct {
	provider    providers.RateProvider
	maxDays     int
	concurrency int
	logger      *slog.Logger
}

// NewHistoryService creates a new HistoryService.
func NewHistoryService(provider providers.RateProvider, maxDays, concurrency int, logger *slog.Logger) *HistoryService {
	if logger == nil {
		logger = slog.Default()
	}
	return &HistoryService{
		provider:    provider,
		maxDays:     maxDays,
		concurrency: concurrency,
		logger:      logger,
	}
}

// GetHistoricalSeries fetches the inclusive range [today-days, today] and
// returns the points ascending by date. Days whose fetch failed, or whose
// response lacked the target currency, are omitted; when that happens the
// series is returned together with an *apperrors.PartialHistoryError listing
// the gaps. Only when every day failed does the call return
// ErrUpstreamUnavailable.
func (s *HistoryService) GetHistoricalSeries(ctx context.Context, baseCurrency, targetCurrency string, days int) (*domain.HistoricalSeries, error) {
	base, err := normalizeCurrencyCode(baseCurrency)
	if err != nil {
		return nil, err
	}
	target, err := normalizeCurrencyCode(targetCurrency)
	if err != nil {
		return nil, err
	}
	if days < 1 || days > s.maxDays {
		return nil, fmt.Errorf("%w: days must be between 1 and %d", apperrors.ErrValidation, s.maxDays)
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	start := today.AddDate(0, 0, -days)
	total := days + 1

	// Each goroutine owns one index, so the final assembly is ordered by
	// date regardless of completion order.
	results := make([]*domain.HistoricalPoint, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i := 0; i < total; i++ {
		date := start.AddDate(0, 0, i)
		g.Go(func() error {
			snapshot, err := s.provider.FetchHistorical(gctx, base, date)
			if err != nil {
				s.logger.Warn("Historical fetch failed, omitting day",
					slog.String("base", base),
					slog.Time("date", date),
					slog.String("error", err.Error()),
				)
				return nil
			}
			rate, ok := snapshot.Rate(target)
			if !ok {
				s.logger.Warn("Historical snapshot lacks target currency, omitting day",
					slog.String("base", base),
					slog.String("target", target),
					slog.Time("date", date),
				)
				return nil
			}
			results[i] = &domain.HistoricalPoint{Date: date, Rate: rate}
			return nil
		})
	}
	// Workers report failures by leaving their slot empty, never by error.
	_ = g.Wait()

	series := &domain.HistoricalSeries{
		BaseCurrency:   base,
		TargetCurrency: target,
		Points:         make([]domain.HistoricalPoint, 0, total),
	}
	var failedDates []time.Time
	for i, point := range results {
		if point == nil {
			failedDates = append(failedDates, start.AddDate(0, 0, i))
			continue
		}
		series.Points = append(series.Points, *point)
	}

	if len(series.Points) == 0 {
		return nil, fmt.Errorf("%w: no historical data for %s/%s", apperrors.ErrUpstreamUnavailable, base, target)
	}
	if len(failedDates) > 0 {
		return series, &apperrors.PartialHistoryError{FailedDates: failedDates}
	}
	return series, nil
}
