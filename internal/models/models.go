// Package models holds the database row representations of the domain
// entities. Repositories scan into these and convert to domain types via
// internal/utils/mapping.
package models

import "time"

// AuditFields holds standard audit columns shared by all tables.
type AuditFields struct {
	CreatedAt time.Time
	CreatedBy string
}

// Transaction mirrors a row of the append-only transactions table.
type Transaction struct {
	TransactionID string
	PartnerID     string
	Amount        int64
	Category      string
	Description   string
	ReceiptURL    *string
	AuditFields
}

// Order mirrors a row of the orders table.
type Order struct {
	OrderID        string
	CustomerName   string
	ProductVariant string
	Quantity       int64
	SellPrice      int64
	Status         string
	AuditFields
}

// OrderStatusHistory mirrors a row of the order_status_history table.
type OrderStatusHistory struct {
	HistoryID string
	OrderID   string
	OldStatus string
	NewStatus string
	ChangedBy string
	ChangedAt time.Time
}

// Partner mirrors a row of the partners table.
type Partner struct {
	PartnerID    string
	Name         string
	Email        string
	PasswordHash string
	AuditFields
}

// JournalEntry mirrors a row of the journal_entries table.
type JournalEntry struct {
	EntryID   string
	PartnerID string
	Content   *string
	ImageURLs []string
	AuditFields
}
