package dto

import (
	"github.com/citruspartners/citrus_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DashboardStatsResponse mirrors the aggregate dashboard snapshot.
type DashboardStatsResponse struct {
	TotalRevenue    int64           `json:"totalRevenue"`
	TotalExpenses   int64           `json:"totalExpenses"`
	TotalFixedCosts int64           `json:"totalFixedCosts"`
	Profit          int64           `json:"profit"`
	ROI             decimal.Decimal `json:"roi"`
	ReturnRate      decimal.Decimal `json:"returnRate"`
	TotalOrders     int             `json:"totalOrders"`
	DeliveredOrders int             `json:"deliveredOrders"`
	ReturnedOrders  int             `json:"returnedOrders"`
}

// PartnerPayoutResponse mirrors one partner's payout line.
type PartnerPayoutResponse struct {
	PartnerID    string          `json:"partnerID"`
	PartnerName  string          `json:"partnerName"`
	Contribution int64           `json:"contribution"`
	ProfitShare  decimal.Decimal `json:"profitShare"`
	TotalPayout  decimal.Decimal `json:"totalPayout"`
}

// DashboardReportResponse is the full dashboard payload.
type DashboardReportResponse struct {
	Stats          DashboardStatsResponse  `json:"stats"`
	PartnerPayouts []PartnerPayoutResponse `json:"partnerPayouts"`
}

// ToDashboardReportResponse converts the domain report to its DTO.
func ToDashboardReportResponse(report *domain.DashboardReport) DashboardReportResponse {
	payouts := make([]PartnerPayoutResponse, len(report.Payouts))
	for i, p := range report.Payouts {
		payouts[i] = PartnerPayoutResponse{
			PartnerID:    p.PartnerID,
			PartnerName:  p.PartnerName,
			Contribution: p.Contribution,
			ProfitShare:  p.ProfitShare,
			TotalPayout:  p.TotalPayout,
		}
	}
	return DashboardReportResponse{
		Stats: DashboardStatsResponse{
			TotalRevenue:    report.Stats.TotalRevenue,
			TotalExpenses:   report.Stats.TotalExpenses,
			TotalFixedCosts: report.Stats.TotalFixedCosts,
			Profit:          report.Stats.Profit,
			ROI:             report.Stats.ROI,
			ReturnRate:      report.Stats.ReturnRate,
			TotalOrders:     report.Stats.TotalOrders,
			DeliveredOrders: report.Stats.DeliveredOrders,
			ReturnedOrders:  report.Stats.ReturnedOrders,
		},
		PartnerPayouts: payouts,
	}
}
