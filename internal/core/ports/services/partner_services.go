package services

import (
	"context"

	"github.com/citruspartners/citrus_ledger_app/internal/core/domain"
)

// PartnerSvcFacade exposes partner operations to handlers.
type PartnerSvcFacade interface {
	// GetPartnerByID retrieves a partner.
	GetPartnerByID(ctx context.Context, partnerID string) (*domain.Partner, error)

	// ListPartners retrieves all partners.
	ListPartners(ctx context.Context) ([]domain.Partner, error)

	// Authenticate verifies the email/password pair and returns the partner.
	// Returns apperrors.ErrUnauthorized on any credential mismatch.
	Authenticate(ctx context.Context, email, password string) (*domain.Partner, error)
}
