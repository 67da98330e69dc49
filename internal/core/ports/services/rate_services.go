package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/khaleelibraheem/abujabureaudechange-backend/internal/core/domain"
)

// RateReaderSvc defines read operations for latest exchange rates.
type RateReaderSvc interface {
	// GetLatestRates returns the current snapshot for the base currency,
	// fetching from upstream only when the cached snapshot has expired.
	GetLatestRates(ctx context.Context, baseCurrency string) (*domain.RateSnapshot, error)
}

// RateSvcFacade combines all latest-rate service interfaces.
type RateSvcFacade interface {
	RateReaderSvc
}

// HistoryReaderSvc defines read operations for historical rate series.
type HistoryReaderSvc interface {
	// GetHistoricalSeries assembles an N-day series for a currency pair,
	// ordered ascending by date. When some days failed upstream the series is
	// returned together with an *apperrors.PartialHistoryError naming them.
	GetHistoricalSeries(ctx context.Context, baseCurrency, targetCurrency string, days int) (*domain.HistoricalSeries, error)
}

// HistorySvcFacade combines all historical-rate service interfaces.
type HistorySvcFacade interface {
	HistoryReaderSvc
}

// ConversionSvc is the pure conversion engine: no I/O, no state.
type ConversionSvc interface {
	// Convert multiplies amount by the snapshot's rate for targetCurrency.
	// The snapshot's base must equal sourceCurrency.
	Convert(amount decimal.Decimal, sourceCurrency, targetCurrency string, snapshot *domain.RateSnapshot) (decimal.Decimal, error)
}

// ConversionSvcFacade combines all conversion service interfaces.
type ConversionSvcFacade interface {
	ConversionSvc
}
