package repositories

import (
	"context"

	"github.com/citruspartners/citrus_ledger_app/internal/core/domain"
)

// PartnerReader defines read operations for partners.
type PartnerReader interface {
	// FindPartnerByID retrieves a partner by identifier.
	FindPartnerByID(ctx context.Context, partnerID string) (*domain.Partner, error)

	// FindPartnerByEmail retrieves a partner by email, for login.
	FindPartnerByEmail(ctx context.Context, email string) (*domain.Partner, error)

	// ListPartners retrieves all partners.
	ListPartners(ctx context.Context) ([]domain.Partner, error)
}

// PartnerWriter defines write operations for partners.
type PartnerWriter interface {
	// SavePartner inserts a new partner row.
	SavePartner(ctx context.Context, partner domain.Partner) error
}

// PartnerRepositoryFacade combines all partner repository interfaces.
type PartnerRepositoryFacade interface {
	PartnerReader
	PartnerWriter
}
