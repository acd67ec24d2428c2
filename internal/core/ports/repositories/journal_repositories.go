package repositories

import (
	"context"

	"github.com/citruspartners/citrus_ledger_app/internal/core/domain"
)

// JournalReader defines read operations for the operations journal.
type JournalReader interface {
	// ListJournalEntries retrieves all journal entries, newest first.
	ListJournalEntries(ctx context.Context) ([]domain.JournalEntry, error)
}

// JournalWriter defines write operations for the operations journal.
type JournalWriter interface {
	// SaveJournalEntry inserts a new journal entry.
	SaveJournalEntry(ctx context.Context, entry domain.JournalEntry) error
}

// JournalRepositoryFacade combines all journal repository interfaces.
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}
