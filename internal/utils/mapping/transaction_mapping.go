package mapping

import (
	"github.com/citruspartners/citrus_ledger_app/internal/core/domain"
	"github.com/citruspartners/citrus_ledger_app/internal/models"
)

// ToModelTransaction converts a domain.Transaction to its database row form.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID: d.TransactionID,
		PartnerID:     d.PartnerID,
		Amount:        d.Amount,
		Category:      string(d.Category),
		Description:   d.Description,
		ReceiptURL:    d.ReceiptURL,
		AuditFields:   toModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a database row to a domain.Transaction.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		PartnerID:     m.PartnerID,
		Amount:        m.Amount,
		Category:      domain.TransactionCategory(m.Category),
		Description:   m.Description,
		ReceiptURL:    m.ReceiptURL,
		AuditFields:   toDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTransactionSlice converts a slice of rows.
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
