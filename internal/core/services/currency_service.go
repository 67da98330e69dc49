package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/khaleelibraheem/abujabureaudechange-backend/internal/apperrors"
	"github.com/khaleelibraheem/abujabureaudechange-backend/internal/core/domain"
)

// CurrencyService serves the static registry of currencies the exchange
// supports. The dashboard uses it for pickers; the core uses it only for
// display metadata, never to gate conversions. The upstream rate table is
// the authority on what can be converted.
type CurrencyService struct {
	byCode map[string]domain.Currency
}

// supportedCurrencies is the set the surrounding application offers.
var supportedCurrencies = []domain.Currency{
	{CurrencyCode: "USD", Symbol: "$", Name: "US Dollar"},
	{CurrencyCode: "EUR", Symbol: "€", Name: "Euro"},
	{CurrencyCode: "GBP", Symbol: "£", Name: "British Pound"},
	{CurrencyCode: "NGN", Symbol: "₦", Name: "Nigerian Naira"},
	{CurrencyCode: "INR", Symbol: "₹", Name: "Indian Rupee"},
	{CurrencyCode: "JPY", Symbol: "¥", Name: "Japanese Yen"},
	{CurrencyCode: "CAD", Symbol: "CA$", Name: "Canadian Dollar"},
	{CurrencyCode: "AUD", Symbol: "A$", Name: "Australian Dollar"},
	{CurrencyCode: "CNY", Symbol: "CN¥", Name: "Chinese Yuan"},
	{CurrencyCode: "ZAR", Symbol: "R", Name: "South African Rand"},
}

// NewCurrencyService creates a CurrencyService seeded with the supported set.
func NewCurrencyService() *CurrencyService {
	byCode := make(map[string]domain.Currency, len(supportedCurrencies))
	for _, currency := range supportedCurrencies {
		byCode[currency.CurrencyCode] = currency
	}
	return &CurrencyService{byCode: byCode}
}

// GetCurrencyByCode retrieves a specific currency by its code.
func (s *CurrencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	code, err := normalizeCurrencyCode(currencyCode)
	if err != nil {
		return nil, err
	}
	currency, ok := s.byCode[code]
	if !ok {
		return nil, fmt.Errorf("%w: currency %s", apperrors.ErrNotFound, code)
	}
	return &currency, nil
}

// ListCurrencies retrieves all available currencies, ordered by code.
func (s *CurrencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies := make([]domain.Currency, 0, len(s.byCode))
	for _, currency := range s.byCode {
		currencies = append(currencies, currency)
	}
	sort.Slice(currencies, func(i, j int) bool {
		return currencies[i].CurrencyCode < currencies[j].CurrencyCode
	})
	return currencies, nil
}
