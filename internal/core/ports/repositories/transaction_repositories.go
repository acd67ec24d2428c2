package repositories

import (
	"context"
	"time"

	"github.com/citruspartners/citrus_ledger_app/internal/core/domain"
)

// TransactionFilter narrows a ledger listing. Nil fields match everything.
type TransactionFilter struct {
	Category  *domain.TransactionCategory
	PartnerID *string
	From      *time.Time
	To        *time.Time
}

// TransactionReader defines read operations for the ledger.
type TransactionReader interface {
	// FindTransactionByID retrieves a single transaction by its identifier.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves transactions matching the filter, newest first.
	ListTransactions(ctx context.Context, filter TransactionFilter) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for the ledger. The ledger is
// append-only: there is deliberately no update or delete.
type TransactionWriter interface {
	// SaveTransaction inserts a new ledger row.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error
}

// TransactionRepositoryFacade combines all ledger repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
