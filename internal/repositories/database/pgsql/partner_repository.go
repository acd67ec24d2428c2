package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/citruspartners/citrus_ledger_app/internal/apperrors"
	"github.com/citruspartners/citrus_ledger_app/internal/core/domain"
	portsrepo "github.com/citruspartners/citrus_ledger_app/internal/core/ports/repositories"
	"github.com/citruspartners/citrus_ledger_app/internal/models"
	"github.com/citruspartners/citrus_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxPartnerRepository persists partners.
type PgxPartnerRepository struct {
	BaseRepository
}

func newPgxPartnerRepository(pool *pgxpool.Pool) portsrepo.PartnerRepositoryFacade {
	return &PgxPartnerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PartnerRepositoryFacade = (*PgxPartnerRepository)(nil)

const partnerColumns = "partner_id, name, email, password_hash, created_at, created_by"

func (r *PgxPartnerRepository) SavePartner(ctx context.Context, partner domain.Partner) error {
	query := `
        INSERT INTO partners (partner_id, name, email, password_hash, created_at, created_by)
        VALUES ($1, $2, $3, $4, $5, $6);
    `
	_, err := r.Pool.Exec(ctx, query,
		partner.PartnerID,
		partner.Name,
		partner.Email,
		partner.PasswordHash,
		partner.CreatedAt,
		partner.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert partner: %w", err)
	}
	return nil
}

func (r *PgxPartnerRepository) FindPartnerByID(ctx context.Context, partnerID string) (*domain.Partner, error) {
	query := "SELECT " + partnerColumns + " FROM partners WHERE partner_id = $1;"
	return r.scanPartner(r.Pool.QueryRow(ctx, query, partnerID))
}

func (r *PgxPartnerRepository) FindPartnerByEmail(ctx context.Context, email string) (*domain.Partner, error) {
	query := "SELECT " + partnerColumns + " FROM partners WHERE email = $1;"
	return r.scanPartner(r.Pool.QueryRow(ctx, query, email))
}

func (r *PgxPartnerRepository) scanPartner(row pgx.Row) (*domain.Partner, error) {
	var m models.Partner
	err := row.Scan(
		&m.PartnerID,
		&m.Name,
		&m.Email,
		&m.PasswordHash,
		&m.CreatedAt,
		&m.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan partner row: %w", err)
	}
	domainPartner := mapping.ToDomainPartner(m)
	return &domainPartner, nil
}

func (r *PgxPartnerRepository) ListPartners(ctx context.Context) ([]domain.Partner, error) {
	query := "SELECT " + partnerColumns + " FROM partners ORDER BY name ASC;"

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query partners: %w", err)
	}
	defer rows.Close()

	modelPartners := []models.Partner{}
	for rows.Next() {
		var m models.Partner
		err := rows.Scan(
			&m.PartnerID,
			&m.Name,
			&m.Email,
			&m.PasswordHash,
			&m.CreatedAt,
			&m.CreatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan partner row: %w", err)
		}
		modelPartners = append(modelPartners, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating partner rows: %w", rows.Err())
	}

	return mapping.ToDomainPartnerSlice(modelPartners), nil
}
