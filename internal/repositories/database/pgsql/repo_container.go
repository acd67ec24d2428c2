package pgsql

import (
	portsrepo "github.com/citruspartners/citrus_ledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires all pgx-backed repositories.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TransactionRepo: newPgxTransactionRepository(dbPool),
		OrderRepo:       newPgxOrderRepository(dbPool),
		PartnerRepo:     newPgxPartnerRepository(dbPool),
		JournalRepo:     newPgxJournalRepository(dbPool),
	}
}
