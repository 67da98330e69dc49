package providers

import (
	"context"
	"time"

	"github.com/khaleelibraheem/abujabureaudechange-backend/internal/core/domain"
)

// RateProvider is the outbound port to the upstream FX rate provider. The
// core does not control the provider's wire format beyond the rate table and
// update timestamp the adapter extracts; any fetch or parse failure surfaces
// as apperrors.ErrUpstreamUnavailable.
type RateProvider interface {
	// FetchLatest retrieves the current rate table for the given base currency.
	FetchLatest(ctx context.Context, baseCurrency string) (*domain.RateSnapshot, error)

	// FetchHistorical retrieves the rate table for the given base currency on
	// a specific calendar day.
	FetchHistorical(ctx context.Context, baseCurrency string, date time.Time) (*domain.RateSnapshot, error)

	// Name identifies the provider for logging.
	Name() string
}
