package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/khaleelibraheem/abujabureaudechange-backend/internal/core/domain"
)

func TestRateSnapshot_Rate(t *testing.T) {
	snapshot := domain.RateSnapshot{
		BaseCurrency: "USD",
		Rates:        map[string]float64{"USD": 1.0, "EUR": 0.92},
	}

	rate, ok := snapshot.Rate("EUR")
	assert.True(t, ok)
	assert.Equal(t, 0.92, rate)

	_, ok = snapshot.Rate("XXX")
	assert.False(t, ok)
}

func TestRateSnapshot_RateOnEmptyTable(t *testing.T) {
	snapshot := domain.RateSnapshot{BaseCurrency: "USD"}
	_, ok := snapshot.Rate("USD")
	assert.False(t, ok)
}
