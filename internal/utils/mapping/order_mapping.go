package mapping

import (
	"github.com/citruspartners/citrus_ledger_app/internal/core/domain"
	"github.com/citruspartners/citrus_ledger_app/internal/models"
)

// ToModelOrder converts a domain.Order to its database row form.
func ToModelOrder(d domain.Order) models.Order {
	return models.Order{
		OrderID:        d.OrderID,
		CustomerName:   d.CustomerName,
		ProductVariant: string(d.ProductVariant),
		Quantity:       d.Quantity,
		SellPrice:      d.SellPrice,
		Status:         string(d.Status),
		AuditFields:    toModelAuditFields(d.AuditFields),
	}
}

// ToDomainOrder converts a database row to a domain.Order.
func ToDomainOrder(m models.Order) domain.Order {
	return domain.Order{
		OrderID:        m.OrderID,
		CustomerName:   m.CustomerName,
		ProductVariant: domain.ProductVariant(m.ProductVariant),
		Quantity:       m.Quantity,
		SellPrice:      m.SellPrice,
		Status:         domain.OrderStatus(m.Status),
		AuditFields:    toDomainAuditFields(m.AuditFields),
	}
}

// ToDomainOrderSlice converts a slice of rows.
func ToDomainOrderSlice(ms []models.Order) []domain.Order {
	ds := make([]domain.Order, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainOrder(m)
	}
	return ds
}

// ToDomainOrderHistory converts a history row to its domain form.
func ToDomainOrderHistory(m models.OrderStatusHistory) domain.OrderStatusHistory {
	return domain.OrderStatusHistory{
		HistoryID: m.HistoryID,
		OrderID:   m.OrderID,
		OldStatus: domain.OrderStatus(m.OldStatus),
		NewStatus: domain.OrderStatus(m.NewStatus),
		ChangedBy: m.ChangedBy,
		ChangedAt: m.ChangedAt,
	}
}

// ToDomainOrderHistorySlice converts a slice of history rows.
func ToDomainOrderHistorySlice(ms []models.OrderStatusHistory) []domain.OrderStatusHistory {
	ds := make([]domain.OrderStatusHistory, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainOrderHistory(m)
	}
	return ds
}
