package services

import (
	"fmt"
	"strings"

	"github.com/khaleelibraheem/abujabureaudechange-backend/internal/apperrors"
)

// normalizeCurrencyCode upper-cases and validates a currency code. Codes are
// the ISO-4217 three letter form the upstream provider uses.
func normalizeCurrencyCode(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != 3 {
		return "", fmt.Errorf("%w: %q", apperrors.ErrInvalidCurrency, code)
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return "", fmt.Errorf("%w: %q", apperrors.ErrInvalidCurrency, code)
		}
	}
	return code, nil
}
