package repositories

import (
	"context"

	"github.com/khaleelibraheem/abujabureaudechange-backend/internal/core/domain"
)

// TransactionArchiver defines write operations for the optional transaction
// archive. The archive is observational: the in-memory ledger remains the
// source of truth and an archive failure must never fail the ledger call.
type TransactionArchiver interface {
	// ArchiveTransaction persists a completed ledger transaction.
	ArchiveTransaction(ctx context.Context, txn domain.Transaction) error
}
