package dto

import (
	"github.com/shopspring/decimal"
)

// ConvertRequest defines the payload for the convert endpoint. Amounts
// arrive as plain floats from the UI; precision handling happens inside the
// core.
type ConvertRequest struct {
	Amount float64 `json:"amount" binding:"gte=0"`
	From   string  `json:"from" binding:"required,len=3,uppercase"`
	To     string  `json:"to" binding:"required,len=3,uppercase"`
}

// ConvertResponse defines the result of a conversion. ConvertedAmount keeps
// full precision; Formatted is rounded to the conventional two decimal
// places for display.
type ConvertResponse struct {
	From            string          `json:"from"`
	To              string          `json:"to"`
	Amount          float64         `json:"amount"`
	Rate            float64         `json:"rate"`
	ConvertedAmount decimal.Decimal `json:"convertedAmount"`
	Formatted       string          `json:"formatted"`
}
