package services

import (
	"context"

	"github.com/citruspartners/citrus_ledger_app/internal/core/domain"
	"github.com/citruspartners/citrus_ledger_app/internal/dto"
)

// JournalSvcFacade exposes operations journal operations to handlers.
type JournalSvcFacade interface {
	// CreateEntry validates and records a journal entry for the authenticated
	// partner. Entries with neither content nor images are rejected with
	// apperrors.ErrValidation.
	CreateEntry(ctx context.Context, req dto.CreateJournalEntryRequest, partnerID string) (*domain.JournalEntry, error)

	// ListEntries retrieves all journal entries, newest first.
	ListEntries(ctx context.Context) ([]domain.JournalEntry, error)
}
