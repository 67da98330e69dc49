package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind indicates whether a transaction credited or debited a balance.
type TransactionKind string

const (
	Credit TransactionKind = "CREDIT"
	Debit  TransactionKind = "DEBIT"
)

// TransactionStatus is the lifecycle state of a ledger transaction. Ledger
// writes are synchronous, so every recorded transaction is COMPLETED; the
// status field exists so the surrounding application can render it alongside
// externally sourced entries.
type TransactionStatus string

const (
	StatusCompleted TransactionStatus = "COMPLETED"
)

// Transaction is one append-only entry in the ledger's log. It is created
// atomically with the balance mutation it records and never edited afterwards.
type Transaction struct {
	TransactionID string            `json:"transactionID"` // UUID
	Kind          TransactionKind   `json:"kind"`
	Amount        decimal.Decimal   `json:"amount"` // always positive
	CurrencyCode  string            `json:"currencyCode"`
	Status        TransactionStatus `json:"status"`
	CreatedAt     time.Time         `json:"createdAt"`
}
