package services

import (
	"context"

	"github.com/citruspartners/citrus_ledger_app/internal/core/domain"
	portsrepo "github.com/citruspartners/citrus_ledger_app/internal/core/ports/repositories"
	"github.com/citruspartners/citrus_ledger_app/internal/dto"
)

// TransactionSvcFacade exposes ledger operations to handlers. The ledger is
// append-only: creation and reads only.
type TransactionSvcFacade interface {
	// CreateTransaction validates and appends a ledger transaction owned by
	// the authenticated partner.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, partnerID string) (*domain.Transaction, error)

	// GetTransactionByID retrieves a single transaction.
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves transactions matching the filter, newest first.
	ListTransactions(ctx context.Context, filter portsrepo.TransactionFilter) ([]domain.Transaction, error)
}
