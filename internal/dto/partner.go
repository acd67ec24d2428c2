package dto

import (
	"github.com/citruspartners/citrus_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PartnerResponse defines the data returned for a partner.
type PartnerResponse struct {
	PartnerID string `json:"partnerID"`
	Name      string `json:"name"`
	Email     string `json:"email"`
}

// ListPartnersResponse wraps the partner listing.
type ListPartnersResponse struct {
	Partners []PartnerResponse `json:"partners"`
}

// PartnerLedgerResponse is a partner together with their derived ledger
// totals, recomputed from the transaction set on every request.
type PartnerLedgerResponse struct {
	PartnerResponse
	TotalContribution      int64           `json:"totalContribution"`
	TotalExpenses          int64           `json:"totalExpenses"`
	ContributionPercentage decimal.Decimal `json:"contributionPercentage"`
}

// PartnerLedgerListResponse wraps the partner ledger view.
type PartnerLedgerListResponse struct {
	Partners []PartnerLedgerResponse `json:"partners"`
}

// ToPartnerResponse converts a domain.Partner to its response DTO.
func ToPartnerResponse(p *domain.Partner) PartnerResponse {
	return PartnerResponse{
		PartnerID: p.PartnerID,
		Name:      p.Name,
		Email:     p.Email,
	}
}

// ToListPartnersResponse converts a slice of domain partners.
func ToListPartnersResponse(partners []domain.Partner) ListPartnersResponse {
	responses := make([]PartnerResponse, len(partners))
	for i, p := range partners {
		responses[i] = ToPartnerResponse(&p)
	}
	return ListPartnersResponse{Partners: responses}
}

// ToPartnerLedgerListResponse converts the derived ledger entries.
func ToPartnerLedgerListResponse(entries []domain.PartnerLedgerEntry) PartnerLedgerListResponse {
	responses := make([]PartnerLedgerResponse, len(entries))
	for i, e := range entries {
		responses[i] = PartnerLedgerResponse{
			PartnerResponse:        ToPartnerResponse(&e.Partner),
			TotalContribution:      e.TotalContribution,
			TotalExpenses:          e.TotalExpenses,
			ContributionPercentage: e.ContributionPercentage,
		}
	}
	return PartnerLedgerListResponse{Partners: responses}
}
