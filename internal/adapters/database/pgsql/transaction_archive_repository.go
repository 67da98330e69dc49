package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khaleelibraheem/abujabureaudechange-backend/internal/core/domain"
	portsrepo "github.com/khaleelibraheem/abujabureaudechange-backend/internal/core/ports/repositories"
)

// PgxTransactionArchive implements the ports.TransactionArchiver interface
// using pgxpool. The archive mirrors the in-memory transaction log for
// after-the-fact inspection; it is never read back to rebuild balances.
type PgxTransactionArchive struct {
	pool *pgxpool.Pool
}

// NewPgxTransactionArchive creates a new PgxTransactionArchive.
func NewPgxTransactionArchive(pool *pgxpool.Pool) *PgxTransactionArchive {
	return &PgxTransactionArchive{pool: pool}
}

// ArchiveTransaction persists one completed ledger transaction.
func (r *PgxTransactionArchive) ArchiveTransaction(ctx context.Context, txn domain.Transaction) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO ledger_transactions (
			transaction_id, kind, amount, currency_code, status, created_at
		) VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (transaction_id) DO NOTHING`,
		txn.TransactionID, string(txn.Kind), txn.Amount, txn.CurrencyCode, string(txn.Status), txn.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to archive transaction %s: %w", txn.TransactionID, err)
	}
	return nil
}

// Ensure PgxTransactionArchive implements the port.
var _ portsrepo.TransactionArchiver = (*PgxTransactionArchive)(nil)
