package domain

// JournalEntry is a free-text operations note, optionally with attached image
// references. At least one of Content or ImageURLs must be non-empty.
type JournalEntry struct {
	EntryID   string   `json:"entryID"` // Primary Key (UUID)
	PartnerID string   `json:"partnerID"`
	Content   string   `json:"content,omitempty"`
	ImageURLs []string `json:"imageURLs,omitempty"` // Ordered references into object storage
	AuditFields
}

// HasContent reports whether the entry satisfies the content-or-images
// invariant.
func (e JournalEntry) HasContent() bool {
	return e.Content != "" || len(e.ImageURLs) > 0
}
