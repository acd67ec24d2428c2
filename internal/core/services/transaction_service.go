package services

import (
	"context"
	"fmt"
	"time"

	"github.com/citruspartners/citrus_ledger_app/internal/apperrors"
	"github.com/citruspartners/citrus_ledger_app/internal/core/domain"
	portsrepo "github.com/citruspartners/citrus_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/citruspartners/citrus_ledger_app/internal/core/ports/services"
	"github.com/citruspartners/citrus_ledger_app/internal/dto"
	"github.com/google/uuid"
)

// transactionService implements the append-only ledger operations.
type transactionService struct {
	txnRepo portsrepo.TransactionRepositoryFacade
}

// NewTransactionService creates a new ledger service.
func NewTransactionService(txnRepo portsrepo.TransactionRepositoryFacade) portssvc.TransactionSvcFacade {
	return &transactionService{txnRepo: txnRepo}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, partnerID string) (*domain.Transaction, error) {
	category := domain.TransactionCategory(req.Category)
	if !category.IsValid() {
		return nil, fmt.Errorf("unknown category %q: %w", req.Category, apperrors.ErrValidation)
	}
	if req.Amount <= 0 {
		return nil, fmt.Errorf("amount must be positive: %w", apperrors.ErrValidation)
	}
	if req.Description == "" {
		return nil, fmt.Errorf("description must not be empty: %w", apperrors.ErrValidation)
	}

	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		PartnerID:     partnerID,
		Amount:        req.Amount,
		Category:      category,
		Description:   req.Description,
		ReceiptURL:    req.ReceiptURL,
		AuditFields: domain.AuditFields{
			CreatedAt: time.Now(),
			CreatedBy: partnerID,
		},
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}
	return &txn, nil
}

func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction %s: %w", transactionID, err)
	}
	return txn, nil
}

func (s *transactionService) ListTransactions(ctx context.Context, filter portsrepo.TransactionFilter) ([]domain.Transaction, error) {
	if filter.Category != nil && !filter.Category.IsValid() {
		return nil, fmt.Errorf("unknown category %q: %w", *filter.Category, apperrors.ErrValidation)
	}
	txns, err := s.txnRepo.ListTransactions(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txns, nil
}
