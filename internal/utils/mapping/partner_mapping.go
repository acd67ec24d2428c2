package mapping

import (
	"github.com/citruspartners/citrus_ledger_app/internal/core/domain"
	"github.com/citruspartners/citrus_ledger_app/internal/models"
)

// ToDomainPartner converts a database row to a domain.Partner.
func ToDomainPartner(m models.Partner) domain.Partner {
	return domain.Partner{
		PartnerID:    m.PartnerID,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		AuditFields:  toDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPartnerSlice converts a slice of rows.
func ToDomainPartnerSlice(ms []models.Partner) []domain.Partner {
	ds := make([]domain.Partner, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPartner(m)
	}
	return ds
}
