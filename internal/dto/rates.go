package dto

import (
	"time"

	"github.com/khaleelibraheem/abujabureaudechange-backend/internal/core/domain"
)

// RatesResponse defines the API response for the latest-rates endpoint.
type RatesResponse struct {
	BaseCurrency string             `json:"baseCurrency"`
	Rates        map[string]float64 `json:"rates"`
	FetchedAt    time.Time          `json:"fetchedAt"`
}

// ToRatesResponse converts a domain.RateSnapshot to a RatesResponse DTO.
func ToRatesResponse(snapshot *domain.RateSnapshot) RatesResponse {
	return RatesResponse{
		BaseCurrency: snapshot.BaseCurrency,
		Rates:        snapshot.Rates,
		FetchedAt:    snapshot.FetchedAt,
	}
}

// HistoricalPointResponse is one day of a currency pair's history.
type HistoricalPointResponse struct {
	Date string  `json:"date"` // YYYY-MM-DD
	Rate float64 `json:"rate"`
}

// HistoryResponse defines the API response for the historical-series
// endpoint. SkippedDays counts the days omitted because their upstream fetch
// failed; SkippedDates lists them.
type HistoryResponse struct {
	BaseCurrency   string                    `json:"baseCurrency"`
	TargetCurrency string                    `json:"targetCurrency"`
	Points         []HistoricalPointResponse `json:"points"`
	SkippedDays    int                       `json:"skippedDays"`
	SkippedDates   []string                  `json:"skippedDates,omitempty"`
}

// ToHistoryResponse converts a domain.HistoricalSeries plus the failed dates
// into a HistoryResponse DTO.
func ToHistoryResponse(series *domain.HistoricalSeries, failedDates []time.Time) HistoryResponse {
	points := make([]HistoricalPointResponse, len(series.Points))
	for i, point := range series.Points {
		points[i] = HistoricalPointResponse{
			Date: point.Date.Format("2006-01-02"),
			Rate: point.Rate,
		}
	}
	skipped := make([]string, len(failedDates))
	for i, date := range failedDates {
		skipped[i] = date.Format("2006-01-02")
	}
	return HistoryResponse{
		BaseCurrency:   series.BaseCurrency,
		TargetCurrency: series.TargetCurrency,
		Points:         points,
		SkippedDays:    len(skipped),
		SkippedDates:   skipped,
	}
}
