package dto

import (
	"time"

	"github.com/citruspartners/citrus_ledger_app/internal/core/domain"
)

// CreateTransactionRequest defines the payload for recording a ledger
// transaction. Amounts are integers in the smallest currency unit.
type CreateTransactionRequest struct {
	Amount      int64   `json:"amount" binding:"required,gt=0"`
	Category    string  `json:"category" binding:"required,oneof=marketing packaging fruit_stock logistics food_misc capital_injection"`
	Description string  `json:"description" binding:"required"`
	ReceiptURL  *string `json:"receiptURL"`
}

// ListTransactionsParams defines query parameters for filtering the ledger.
type ListTransactionsParams struct {
	Category  string `form:"category"`
	PartnerID string `form:"partnerID"`
	From      string `form:"from"` // YYYY-MM-DD
	To        string `form:"to"`   // YYYY-MM-DD
}

// TransactionResponse defines the data returned for a ledger transaction.
type TransactionResponse struct {
	TransactionID string    `json:"transactionID"`
	PartnerID     string    `json:"partnerID"`
	Amount        int64     `json:"amount"`
	Category      string    `json:"category"`
	Description   string    `json:"description"`
	ReceiptURL    *string   `json:"receiptURL,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ListTransactionsResponse wraps the filtered ledger listing.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		PartnerID:     txn.PartnerID,
		Amount:        txn.Amount,
		Category:      string(txn.Category),
		Description:   txn.Description,
		ReceiptURL:    txn.ReceiptURL,
		CreatedAt:     txn.CreatedAt,
	}
}

// ToListTransactionsResponse converts a slice of domain transactions.
func ToListTransactionsResponse(txns []domain.Transaction) ListTransactionsResponse {
	responses := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		responses[i] = ToTransactionResponse(&txn)
	}
	return ListTransactionsResponse{Transactions: responses}
}
