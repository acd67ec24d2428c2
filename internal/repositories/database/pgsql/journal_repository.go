package pgsql

import (
	"context"
	"fmt"

	"github.com/citruspartners/citrus_ledger_app/internal/core/domain"
	portsrepo "github.com/citruspartners/citrus_ledger_app/internal/core/ports/repositories"
	"github.com/citruspartners/citrus_ledger_app/internal/models"
	"github.com/citruspartners/citrus_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxJournalRepository persists operations journal entries. Image references
// are stored as a text[] column, order preserved.
type PgxJournalRepository struct {
	BaseRepository
}

func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepositoryFacade {
	return &PgxJournalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

func (r *PgxJournalRepository) SaveJournalEntry(ctx context.Context, entry domain.JournalEntry) error {
	modelEntry := mapping.ToModelJournalEntry(entry)
	query := `
        INSERT INTO journal_entries (entry_id, partner_id, content, image_urls, created_at, created_by)
        VALUES ($1, $2, $3, $4, $5, $6);
    `
	_, err := r.Pool.Exec(ctx, query,
		modelEntry.EntryID,
		modelEntry.PartnerID,
		modelEntry.Content,
		modelEntry.ImageURLs,
		modelEntry.CreatedAt,
		modelEntry.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert journal entry: %w", err)
	}
	return nil
}

func (r *PgxJournalRepository) ListJournalEntries(ctx context.Context) ([]domain.JournalEntry, error) {
	query := `
        SELECT entry_id, partner_id, content, image_urls, created_at, created_by
        FROM journal_entries
        ORDER BY created_at DESC;
    `
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal entries: %w", err)
	}
	defer rows.Close()

	modelEntries := []models.JournalEntry{}
	for rows.Next() {
		var m models.JournalEntry
		err := rows.Scan(
			&m.EntryID,
			&m.PartnerID,
			&m.Content,
			&m.ImageURLs,
			&m.CreatedAt,
			&m.CreatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan journal entry row: %w", err)
		}
		modelEntries = append(modelEntries, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating journal entry rows: %w", rows.Err())
	}

	return mapping.ToDomainJournalEntrySlice(modelEntries), nil
}
