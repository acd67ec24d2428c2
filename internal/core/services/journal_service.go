package services

import (
	"context"
	"fmt"
	"time"

	"github.com/citruspartners/citrus_ledger_app/internal/apperrors"
	"github.com/citruspartners/citrus_ledger_app/internal/core/domain"
	portsrepo "github.com/citruspartners/citrus_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/citruspartners/citrus_ledger_app/internal/core/ports/services"
	"github.com/citruspartners/citrus_ledger_app/internal/dto"
	"github.com/google/uuid"
)

// journalService implements the free-text operations journal.
type journalService struct {
	journalRepo portsrepo.JournalRepositoryFacade
}

// NewJournalService creates a new journal service.
func NewJournalService(journalRepo portsrepo.JournalRepositoryFacade) portssvc.JournalSvcFacade {
	return &journalService{journalRepo: journalRepo}
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

func (s *journalService) CreateEntry(ctx context.Context, req dto.CreateJournalEntryRequest, partnerID string) (*domain.JournalEntry, error) {
	entry := domain.JournalEntry{
		EntryID:   uuid.NewString(),
		PartnerID: partnerID,
		Content:   req.Content,
		ImageURLs: req.ImageURLs,
		AuditFields: domain.AuditFields{
			CreatedAt: time.Now(),
			CreatedBy: partnerID,
		},
	}

	if !entry.HasContent() {
		return nil, fmt.Errorf("journal entry needs content or at least one image: %w", apperrors.ErrValidation)
	}

	if err := s.journalRepo.SaveJournalEntry(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to save journal entry: %w", err)
	}
	return &entry, nil
}

func (s *journalService) ListEntries(ctx context.Context) ([]domain.JournalEntry, error) {
	entries, err := s.journalRepo.ListJournalEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}
	return entries, nil
}
