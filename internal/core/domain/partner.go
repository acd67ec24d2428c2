package domain

// Partner is one of the members of the export partnership. Contribution and
// expense totals are never stored on the partner row; they are recomputed from
// the transaction set on every read (see PartnerLedgerEntry).
type Partner struct {
	PartnerID    string `json:"partnerID"` // Primary Key (UUID)
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	AuditFields
}
