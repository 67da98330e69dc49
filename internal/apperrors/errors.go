package apperrors

import (
	"errors"
	"fmt"
	"time"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInvalidCurrency indicates a missing or malformed currency code.
var ErrInvalidCurrency = errors.New("invalid currency code")

// ErrInvalidAmount indicates a non-positive or non-finite amount.
var ErrInvalidAmount = errors.New("invalid amount")

// ErrInsufficientFunds indicates a debit larger than the available balance.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrRateNotFound indicates the target currency is absent from a rate table.
var ErrRateNotFound = errors.New("rate not found")

// ErrRateMismatch indicates a rate snapshot whose base currency does not match
// the requested source currency.
var ErrRateMismatch = errors.New("rate snapshot base mismatch")

// ErrUpstreamUnavailable indicates the upstream rate provider could not be
// reached, timed out, or returned an unusable response.
var ErrUpstreamUnavailable = errors.New("upstream rate provider unavailable")

// PartialHistoryError reports a historical series that was assembled with one
// or more days missing because their upstream fetches failed. The series
// returned alongside this error is still valid and ordered; FailedDates lists
// the gaps.
type PartialHistoryError struct {
	FailedDates []time.Time
}

func (e *PartialHistoryError) Error() string {
	return fmt.Sprintf("historical series incomplete: %d day(s) failed", len(e.FailedDates))
}
