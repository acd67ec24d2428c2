package services

import (
	"context"
	"fmt"

	"github.com/citruspartners/citrus_ledger_app/internal/core/domain"
	portsrepo "github.com/citruspartners/citrus_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/citruspartners/citrus_ledger_app/internal/core/ports/services"
	"github.com/citruspartners/citrus_ledger_app/internal/utils/finance"
)

// reportingService derives the dashboard and partner ledger views from the
// full transaction, order, and partner sets. The reads are taken close
// together but not inside one snapshot transaction; the result is best-effort
// reporting, and any failed read aborts the whole computation so callers never
// see partially-filled numbers.
type reportingService struct {
	txnRepo     portsrepo.TransactionReader
	orderRepo   portsrepo.OrderReader
	partnerRepo portsrepo.PartnerReader
}

// NewReportingService creates a new reporting service.
func NewReportingService(
	txnRepo portsrepo.TransactionReader,
	orderRepo portsrepo.OrderReader,
	partnerRepo portsrepo.PartnerReader,
) portssvc.ReportingSvcFacade {
	return &reportingService{
		txnRepo:     txnRepo,
		orderRepo:   orderRepo,
		partnerRepo: partnerRepo,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func (s *reportingService) GetDashboardStats(ctx context.Context) (*domain.DashboardReport, error) {
	orders, err := s.orderRepo.ListOrders(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to read orders for dashboard: %w", err)
	}
	transactions, err := s.txnRepo.ListTransactions(ctx, portsrepo.TransactionFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to read transactions for dashboard: %w", err)
	}
	partners, err := s.partnerRepo.ListPartners(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read partners for dashboard: %w", err)
	}

	// Revenue and fixed costs accrue only from delivered orders.
	var totalRevenue, totalFixedCosts int64
	var deliveredCount, returnedCount int
	for _, o := range orders {
		switch o.Status {
		case domain.OrderDelivered:
			deliveredCount++
			totalRevenue += o.SellPrice * o.Quantity
			totalFixedCosts += o.ProductVariant.UnitFixedCost() * o.Quantity
		case domain.OrderReturned:
			returnedCount++
		}
	}

	// Every transaction counts as capital contributed by its partner;
	// expenses paid out of pocket are contributions too. Only non-capital
	// categories count as expenses.
	contributions := make(map[string]int64)
	var totalExpenses, totalCapital int64
	for _, t := range transactions {
		contributions[t.PartnerID] += t.Amount
		totalCapital += t.Amount
		if t.Category.IsExpense() {
			totalExpenses += t.Amount
		}
	}

	profit := finance.Profit(totalRevenue, totalFixedCosts, totalExpenses)

	partnerCount := len(partners)
	payouts := make([]domain.PartnerPayout, len(partners))
	for i, p := range partners {
		contribution := contributions[p.PartnerID]
		payouts[i] = domain.PartnerPayout{
			PartnerID:    p.PartnerID,
			PartnerName:  p.Name,
			Contribution: contribution,
			ProfitShare:  finance.ProfitShare(profit, partnerCount),
			TotalPayout:  finance.PartnerPayout(contribution, profit, partnerCount),
		}
	}

	return &domain.DashboardReport{
		Stats: domain.DashboardStats{
			TotalRevenue:    totalRevenue,
			TotalExpenses:   totalExpenses,
			TotalFixedCosts: totalFixedCosts,
			Profit:          profit,
			ROI:             finance.ROI(profit, totalCapital),
			ReturnRate:      finance.ReturnRate(returnedCount, len(orders)),
			TotalOrders:     len(orders),
			DeliveredOrders: deliveredCount,
			ReturnedOrders:  returnedCount,
		},
		Payouts: payouts,
	}, nil
}

func (s *reportingService) GetPartnerLedger(ctx context.Context) ([]domain.PartnerLedgerEntry, error) {
	partners, err := s.partnerRepo.ListPartners(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read partners for ledger: %w", err)
	}
	transactions, err := s.txnRepo.ListTransactions(ctx, portsrepo.TransactionFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to read transactions for ledger: %w", err)
	}

	contributions := make(map[string]int64)
	expenses := make(map[string]int64)
	var totalPool int64
	for _, t := range transactions {
		contributions[t.PartnerID] += t.Amount
		totalPool += t.Amount
		if t.Category.IsExpense() {
			expenses[t.PartnerID] += t.Amount
		}
	}

	entries := make([]domain.PartnerLedgerEntry, len(partners))
	for i, p := range partners {
		contribution := contributions[p.PartnerID]
		entries[i] = domain.PartnerLedgerEntry{
			Partner:                p,
			TotalContribution:      contribution,
			TotalExpenses:          expenses[p.PartnerID],
			ContributionPercentage: finance.ContributionPercentage(contribution, totalPool),
		}
	}
	return entries, nil
}
