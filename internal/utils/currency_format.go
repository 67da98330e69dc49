package utils

import (
	"github.com/shopspring/decimal"
)

// minorUnitPrecision is the conventional minor-unit precision for every
// currency in scope. Amounts keep full precision internally and are rounded
// only here, at presentation time.
const minorUnitPrecision = 2

// FormatAmount formats an amount with the conventional two decimal places.
// Example: 12.3456 returns "12.35".
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(minorUnitPrecision)
}

// FormatWithPrecision formats an amount with the given precision.
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.Round(int32(precision)).String()
}
