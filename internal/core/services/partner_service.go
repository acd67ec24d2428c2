package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/citruspartners/citrus_ledger_app/internal/apperrors"
	"github.com/citruspartners/citrus_ledger_app/internal/core/domain"
	portsrepo "github.com/citruspartners/citrus_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/citruspartners/citrus_ledger_app/internal/core/ports/services"
	"github.com/citruspartners/citrus_ledger_app/internal/utils"
)

// partnerService implements partner lookups and credential checks.
type partnerService struct {
	partnerRepo portsrepo.PartnerRepositoryFacade
}

// NewPartnerService creates a new partner service.
func NewPartnerService(partnerRepo portsrepo.PartnerRepositoryFacade) portssvc.PartnerSvcFacade {
	return &partnerService{partnerRepo: partnerRepo}
}

var _ portssvc.PartnerSvcFacade = (*partnerService)(nil)

func (s *partnerService) GetPartnerByID(ctx context.Context, partnerID string) (*domain.Partner, error) {
	partner, err := s.partnerRepo.FindPartnerByID(ctx, partnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get partner %s: %w", partnerID, err)
	}
	return partner, nil
}

func (s *partnerService) ListPartners(ctx context.Context) ([]domain.Partner, error) {
	partners, err := s.partnerRepo.ListPartners(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list partners: %w", err)
	}
	return partners, nil
}

// Authenticate never reveals whether the email or the password was wrong.
func (s *partnerService) Authenticate(ctx context.Context, email, password string) (*domain.Partner, error) {
	partner, err := s.partnerRepo.FindPartnerByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to look up partner by email: %w", err)
	}

	if !utils.CheckPasswordHash(password, partner.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}
	return partner, nil
}
