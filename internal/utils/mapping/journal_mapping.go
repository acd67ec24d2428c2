package mapping

import (
	"github.com/citruspartners/citrus_ledger_app/internal/core/domain"
	"github.com/citruspartners/citrus_ledger_app/internal/models"
)

// ToModelJournalEntry converts a domain.JournalEntry to its database row form.
// Empty content is stored as NULL.
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	var content *string
	if d.Content != "" {
		content = &d.Content
	}
	return models.JournalEntry{
		EntryID:     d.EntryID,
		PartnerID:   d.PartnerID,
		Content:     content,
		ImageURLs:   d.ImageURLs,
		AuditFields: toModelAuditFields(d.AuditFields),
	}
}

// ToDomainJournalEntry converts a database row to a domain.JournalEntry.
func ToDomainJournalEntry(m models.JournalEntry) domain.JournalEntry {
	var content string
	if m.Content != nil {
		content = *m.Content
	}
	return domain.JournalEntry{
		EntryID:     m.EntryID,
		PartnerID:   m.PartnerID,
		Content:     content,
		ImageURLs:   m.ImageURLs,
		AuditFields: toDomainAuditFields(m.AuditFields),
	}
}

// ToDomainJournalEntrySlice converts a slice of rows.
func ToDomainJournalEntrySlice(ms []models.JournalEntry) []domain.JournalEntry {
	ds := make([]domain.JournalEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainJournalEntry(m)
	}
	return ds
}
