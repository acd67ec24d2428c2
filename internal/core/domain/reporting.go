package domain

import "github.com/shopspring/decimal"

// DashboardStats is the aggregate snapshot computed from the full order and
// transaction sets. Amount fields are exact integers in the smallest currency
// unit; ratio fields are decimals.
type DashboardStats struct {
	TotalRevenue    int64           `json:"totalRevenue"`
	TotalExpenses   int64           `json:"totalExpenses"`
	TotalFixedCosts int64           `json:"totalFixedCosts"`
	Profit          int64           `json:"profit"`
	ROI             decimal.Decimal `json:"roi"`        // Percent
	ReturnRate      decimal.Decimal `json:"returnRate"` // Percent
	TotalOrders     int             `json:"totalOrders"`
	DeliveredOrders int             `json:"deliveredOrders"`
	ReturnedOrders  int             `json:"returnedOrders"`
}

// PartnerPayout is the amount owed to a partner: their capital back plus an
// equal share of profit.
type PartnerPayout struct {
	PartnerID    string          `json:"partnerID"`
	PartnerName  string          `json:"partnerName"`
	Contribution int64           `json:"contribution"`
	ProfitShare  decimal.Decimal `json:"profitShare"`
	TotalPayout  decimal.Decimal `json:"totalPayout"`
}

// DashboardReport bundles the aggregate stats with per-partner payouts.
type DashboardReport struct {
	Stats   DashboardStats  `json:"stats"`
	Payouts []PartnerPayout `json:"partnerPayouts"`
}

// PartnerLedgerEntry is a partner with their derived ledger totals. The
// derived fields are recomputed from the transaction set on every read and
// never persisted.
type PartnerLedgerEntry struct {
	Partner
	TotalContribution      int64           `json:"totalContribution"`
	TotalExpenses          int64           `json:"totalExpenses"`
	ContributionPercentage decimal.Decimal `json:"contributionPercentage"`
}
