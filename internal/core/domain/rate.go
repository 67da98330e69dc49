package domain

import "time"

// RateSnapshot holds the latest conversion rates for one base currency as
// returned by the upstream provider. A snapshot is immutable once created;
// the rate cache replaces it wholesale on refresh and never mutates it in
// place.
type RateSnapshot struct {
	BaseCurrency string             `json:"baseCurrency"` // e.g. "USD"
	Rates        map[string]float64 `json:"rates"`        // target code -> rate; normally includes BaseCurrency -> 1.0
	FetchedAt    time.Time          `json:"fetchedAt"`    // when this snapshot was obtained from upstream
}

// Rate returns the conversion rate for the target currency, if present.
func (s *RateSnapshot) Rate(target string) (float64, bool) {
	rate, ok := s.Rates[target]
	return rate, ok
}

// HistoricalPoint is one day of a currency pair's rate history.
type HistoricalPoint struct {
	Date time.Time `json:"date"` // calendar day, UTC midnight
	Rate float64   `json:"rate"`
}

// HistoricalSeries is an assembled N-day rate history for a currency pair,
// ordered ascending by date with no duplicate dates. Days whose upstream
// fetch failed are omitted from Points.
type HistoricalSeries struct {
	BaseCurrency   string            `json:"baseCurrency"`
	TargetCurrency string            `json:"targetCurrency"`
	Points         []HistoricalPoint `json:"points"`
}
