package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/khaleelibraheem/abujabureaudechange-backend/internal/core/domain"
)

// LedgerReaderSvc defines read operations over ledger state.
type LedgerReaderSvc interface {
	// Balances returns a copy of every per-currency balance.
	Balances(ctx context.Context) (map[string]decimal.Decimal, error)

	// ListTransactions returns up to limit transactions, newest first.
	// limit <= 0 returns the full log.
	ListTransactions(ctx context.Context, limit int) ([]domain.Transaction, error)
}

// LedgerWriterSvc defines the balance-mutating ledger operations.
type LedgerWriterSvc interface {
	// Credit increases the balance for currency and records a transaction.
	Credit(ctx context.Context, currencyCode string, amount decimal.Decimal) (*domain.Transaction, error)

	// Debit decreases the balance for currency and records a transaction.
	// It fails with apperrors.ErrInsufficientFunds when amount exceeds the
	// balance, leaving state untouched.
	Debit(ctx context.Context, currencyCode string, amount decimal.Decimal) (*domain.Transaction, error)
}

// LedgerSvcFacade combines all ledger-related service interfaces.
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
}
