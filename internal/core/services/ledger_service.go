package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/khaleelibraheem/abujabureaudechange-backend/internal/apperrors"
	"github.com/khaleelibraheem/abujabureaudechange-backend/internal/core/domain"
	portsrepo "github.com/khaleelibraheem/abujabureaudechange-backend/internal/core/ports/repositories"
)

// LedgerService owns the per-currency balances and the append-only
// transaction log. One ledger-wide mutex guards both: a balance mutation and
// its log append are a single critical section, so no caller can observe one
// without the other. Debit's check-then-subtract runs entirely under the
// lock.
type LedgerService struct {
	mu       sync.Mutex
	balances map[string]decimal.Decimal
	log      []domain.Transaction

	archive portsrepo.TransactionArchiver // optional
	logger  *slog.Logger
}

// LedgerOption is a functional option for configuring the ledger service
type LedgerOption func(*LedgerService)

// WithTransactionArchiver adds the optional transaction archive dependency
func WithTransactionArchiver(archive portsrepo.TransactionArchiver) LedgerOption {
	return func(s *LedgerService) {
		s.archive = archive
	}
}

// WithLedgerLogger overrides the default logger
func WithLedgerLogger(logger *slog.Logger) LedgerOption {
	return func(s *LedgerService) {
		s.logger = logger
	}
}

// NewLedgerService creates a ledger seeded with the given opening balances.
func NewLedgerService(openingBalances map[string]decimal.Decimal, options ...LedgerOption) *LedgerService {
	svc := &LedgerService{
		balances: make(map[string]decimal.Decimal, len(openingBalances)),
		logger:   slog.Default(),
	}
	for code, amount := range openingBalances {
		svc.balances[code] = amount
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Credit increases the balance for currencyCode and records a CREDIT
// transaction. A currency not yet known to the ledger is created by its
// first credit.
func (s *LedgerService) Credit(ctx context.Context, currencyCode string, amount decimal.Decimal) (*domain.Transaction, error) {
	code, err := normalizeCurrencyCode(currencyCode)
	if err != nil {
		return nil, err
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: credit amount must be positive", apperrors.ErrInvalidAmount)
	}

	s.mu.Lock()
	s.balances[code] = s.balances[code].Add(amount)
	txn := s.appendLocked(domain.Credit, code, amount)
	s.mu.Unlock()

	s.logger.Info("Ledger credit applied",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("currency", code),
		slog.String("amount", amount.String()),
	)
	s.archiveAsync(txn)
	return &txn, nil
}

// Debit decreases the balance for currencyCode and records a DEBIT
// transaction. The balance never goes negative: a debit exceeding the
// balance fails with ErrInsufficientFunds and records nothing.
func (s *LedgerService) Debit(ctx context.Context, currencyCode string, amount decimal.Decimal) (*domain.Transaction, error) {
	code, err := normalizeCurrencyCode(currencyCode)
	if err != nil {
		return nil, err
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: debit amount must be positive", apperrors.ErrInvalidAmount)
	}

	s.mu.Lock()
	balance := s.balances[code]
	if amount.GreaterThan(balance) {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: balance for %s is %s, requested %s",
			apperrors.ErrInsufficientFunds, code, balance.String(), amount.String())
	}
	s.balances[code] = balance.Sub(amount)
	txn := s.appendLocked(domain.Debit, code, amount)
	s.mu.Unlock()

	s.logger.Info("Ledger debit applied",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("currency", code),
		slog.String("amount", amount.String()),
	)
	s.archiveAsync(txn)
	return &txn, nil
}

// Balances returns a copy of every per-currency balance.
func (s *LedgerService) Balances(ctx context.Context) (map[string]decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	balances := make(map[string]decimal.Decimal, len(s.balances))
	for code, amount := range s.balances {
		balances[code] = amount
	}
	return balances, nil
}

// ListTransactions returns up to limit transactions, newest first. limit <= 0
// returns the full log.
func (s *LedgerService) ListTransactions(ctx context.Context, limit int) ([]domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.log)
	if limit <= 0 || limit > n {
		limit = n
	}
	transactions := make([]domain.Transaction, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		transactions = append(transactions, s.log[i])
	}
	return transactions, nil
}

// appendLocked records a transaction; callers must hold s.mu.
func (s *LedgerService) appendLocked(kind domain.TransactionKind, code string, amount decimal.Decimal) domain.Transaction {
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Kind:          kind,
		Amount:        amount,
		CurrencyCode:  code,
		Status:        domain.StatusCompleted,
		CreatedAt:     time.Now(),
	}
	s.log = append(s.log, txn)
	return txn
}

// archiveAsync hands the transaction to the optional archive without holding
// up the caller. The in-memory ledger is authoritative; an archive failure is
// logged and otherwise ignored.
func (s *LedgerService) archiveAsync(txn domain.Transaction) {
	if s.archive == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.archive.ArchiveTransaction(ctx, txn); err != nil {
			s.logger.Warn("Failed to archive transaction",
				slog.String("transaction_id", txn.TransactionID),
				slog.String("error", err.Error()),
			)
		}
	}()
}
