package services

import (
	"context"

	"github.com/citruspartners/citrus_ledger_app/internal/core/domain"
)

// ReportingSvcFacade exposes the derived financial views. Both operations
// read full entity sets as a best-effort snapshot and return an error rather
// than partial numbers when any read fails.
type ReportingSvcFacade interface {
	// GetDashboardStats computes the aggregate dashboard snapshot and the
	// per-partner payout summary.
	GetDashboardStats(ctx context.Context) (*domain.DashboardReport, error)

	// GetPartnerLedger computes per-partner contribution and expense totals
	// plus each partner's share of the pool.
	GetPartnerLedger(ctx context.Context) ([]domain.PartnerLedgerEntry, error)
}
