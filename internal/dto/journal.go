package dto

import (
	"time"

	"github.com/citruspartners/citrus_ledger_app/internal/core/domain"
)

// CreateJournalEntryRequest defines the payload for a new operations journal
// entry. At least one of content or imageURLs must be present; the service
// enforces the invariant since gin binding cannot express either-or.
type CreateJournalEntryRequest struct {
	Content   string   `json:"content"`
	ImageURLs []string `json:"imageURLs"`
}

// JournalEntryResponse defines the data returned for a journal entry.
type JournalEntryResponse struct {
	EntryID   string    `json:"entryID"`
	PartnerID string    `json:"partnerID"`
	Content   string    `json:"content,omitempty"`
	ImageURLs []string  `json:"imageURLs,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ListJournalEntriesResponse wraps the journal listing.
type ListJournalEntriesResponse struct {
	Entries []JournalEntryResponse `json:"entries"`
}

// ToJournalEntryResponse converts a domain.JournalEntry to its response DTO.
func ToJournalEntryResponse(e *domain.JournalEntry) JournalEntryResponse {
	return JournalEntryResponse{
		EntryID:   e.EntryID,
		PartnerID: e.PartnerID,
		Content:   e.Content,
		ImageURLs: e.ImageURLs,
		CreatedAt: e.CreatedAt,
	}
}

// ToListJournalEntriesResponse converts a slice of domain entries.
func ToListJournalEntriesResponse(entries []domain.JournalEntry) ListJournalEntriesResponse {
	responses := make([]JournalEntryResponse, len(entries))
	for i, e := range entries {
		responses[i] = ToJournalEntryResponse(&e)
	}
	return ListJournalEntriesResponse{Entries: responses}
}
