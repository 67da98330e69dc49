package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/khaleelibraheem/abujabureaudechange-backend/internal/core/domain"
)

// LedgerMutationRequest defines the payload shared by the fund and withdraw
// endpoints.
type LedgerMutationRequest struct {
	Amount   float64 `json:"amount" binding:"required,gt=0"`
	Currency string  `json:"currency" binding:"required,len=3,uppercase"`
}

// TransactionResponse defines the API representation of one ledger
// transaction.
type TransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	Kind          string          `json:"kind"`
	Amount        decimal.Decimal `json:"amount"`
	CurrencyCode  string          `json:"currencyCode"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ToTransactionResponse converts a domain.Transaction to a
// TransactionResponse DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		Kind:          string(txn.Kind),
		Amount:        txn.Amount,
		CurrencyCode:  txn.CurrencyCode,
		Status:        string(txn.Status),
		CreatedAt:     txn.CreatedAt,
	}
}

// ToListTransactionResponse converts a slice of domain.Transaction to
// TransactionResponse DTOs.
func ToListTransactionResponse(transactions []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(transactions))
	for i := range transactions {
		responses[i] = ToTransactionResponse(&transactions[i])
	}
	return responses
}

// BalancesResponse defines the per-currency balances view.
type BalancesResponse struct {
	Balances map[string]decimal.Decimal `json:"balances"`
}
