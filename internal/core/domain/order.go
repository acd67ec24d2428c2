package domain

import "time"

// ProductVariant identifies a sellable box size. Each variant carries a fixed
// per-unit production cost used for margin and profit calculations.
type ProductVariant string

const (
	Variant10Kg ProductVariant = "10kg"
	Variant5Kg  ProductVariant = "5kg"
)

// unitFixedCosts maps each variant to its per-unit production cost in the
// smallest currency unit. Extending the product range means adding a row here;
// calculation logic never hard-codes these values.
var unitFixedCosts = map[ProductVariant]int64{
	Variant10Kg: 1720,
	Variant5Kg:  860,
}

// IsValid reports whether the variant is part of the closed enumeration.
func (v ProductVariant) IsValid() bool {
	_, ok := unitFixedCosts[v]
	return ok
}

// UnitFixedCost returns the per-unit production cost for the variant.
// Unknown variants must be rejected by validation before reaching here;
// they return 0.
func (v ProductVariant) UnitFixedCost() int64 {
	return unitFixedCosts[v]
}

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
	OrderReturned  OrderStatus = "returned"
)

// OrderStatuses lists all valid statuses.
var OrderStatuses = []OrderStatus{OrderPending, OrderShipped, OrderDelivered, OrderReturned}

// IsValid reports whether the status is part of the closed enumeration.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderPending, OrderShipped, OrderDelivered, OrderReturned:
		return true
	}
	return false
}

// allowedTransitions is the order lifecycle graph. No transition skips a
// state, none go backward, and self-transitions are invalid. Delivered and
// returned are terminal.
var allowedTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:   {OrderShipped},
	OrderShipped:   {OrderDelivered, OrderReturned},
	OrderDelivered: {},
	OrderReturned:  {},
}

// CanTransition reports whether an order in status from may move to status to.
func CanTransition(from, to OrderStatus) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Order represents a customer sale. Quantity and price are immutable after
// creation; only status changes, along the transition graph.
type Order struct {
	OrderID        string         `json:"orderID"` // Primary Key (UUID)
	CustomerName   string         `json:"customerName"`
	ProductVariant ProductVariant `json:"productVariant"`
	Quantity       int64          `json:"quantity"`  // Positive
	SellPrice      int64          `json:"sellPrice"` // Per unit, non-negative, smallest currency unit
	Status         OrderStatus    `json:"status"`
	AuditFields
}

// OrderStatusHistory is the append-only audit trail of accepted status
// transitions, one record per transition.
type OrderStatusHistory struct {
	HistoryID string      `json:"historyID"` // Primary Key (UUID)
	OrderID   string      `json:"orderID"`
	OldStatus OrderStatus `json:"oldStatus"`
	NewStatus OrderStatus `json:"newStatus"`
	ChangedBy string      `json:"changedBy"` // PartnerID of the actor
	ChangedAt time.Time   `json:"changedAt"`
}
