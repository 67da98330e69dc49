package services

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/khaleelibraheem/abujabureaudechange-backend/internal/apperrors"
	"github.com/khaleelibraheem/abujabureaudechange-backend/internal/core/domain"
)

// ConversionService is the pure conversion engine. It performs no I/O and
// holds no state: callers hand it the snapshot to convert against.
type ConversionService struct{}

// NewConversionService creates a new ConversionService.
func NewConversionService() *ConversionService {
	return &ConversionService{}
}

// Convert multiplies amount by the snapshot's rate for targetCurrency. The
// snapshot's base currency must equal sourceCurrency; the engine does not
// derive cross rates. The result keeps full precision; rounding to the
// currency's minor unit happens only at presentation time.
func (s *ConversionService) Convert(amount decimal.Decimal, sourceCurrency, targetCurrency string, snapshot *domain.RateSnapshot) (decimal.Decimal, error) {
	source, err := normalizeCurrencyCode(sourceCurrency)
	if err != nil {
		return decimal.Zero, err
	}
	target, err := normalizeCurrencyCode(targetCurrency)
	if err != nil {
		return decimal.Zero, err
	}
	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: amount must not be negative", apperrors.ErrInvalidAmount)
	}
	if snapshot == nil || snapshot.BaseCurrency != source {
		got := "<nil>"
		if snapshot != nil {
			got = snapshot.BaseCurrency
		}
		return decimal.Zero, fmt.Errorf("%w: snapshot base is %s, source is %s", apperrors.ErrRateMismatch, got, source)
	}

	rate, ok := snapshot.Rate(target)
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s has no rate for %s", apperrors.ErrRateNotFound, source, target)
	}

	return amount.Mul(decimal.NewFromFloat(rate)), nil
}
