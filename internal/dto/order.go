package dto

import (
	"time"

	"github.com/citruspartners/citrus_ledger_app/internal/core/domain"
	"github.com/citruspartners/citrus_ledger_app/internal/utils/finance"
)

// CreateOrderRequest defines the payload for recording a new order. Status is
// never accepted from the caller; orders always start pending.
type CreateOrderRequest struct {
	CustomerName   string `json:"customerName" binding:"required"`
	ProductVariant string `json:"productVariant" binding:"required,oneof=10kg 5kg"`
	Quantity       int64  `json:"quantity" binding:"required,gt=0"`
	// Pointer so a zero sell price (giveaway boxes) passes required.
	SellPrice *int64 `json:"sellPrice" binding:"required,gte=0"`
}

// UpdateOrderStatusRequest defines the payload for an order status transition.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending shipped delivered returned"`
}

// ListOrdersParams defines query parameters for listing orders.
type ListOrdersParams struct {
	Status string `form:"status"`
}

// OrderResponse defines the data returned for an order. NetMargin is derived
// for display and never stored.
type OrderResponse struct {
	OrderID        string    `json:"orderID"`
	CustomerName   string    `json:"customerName"`
	ProductVariant string    `json:"productVariant"`
	Quantity       int64     `json:"quantity"`
	SellPrice      int64     `json:"sellPrice"`
	Status         string    `json:"status"`
	NetMargin      int64     `json:"netMargin"`
	CreatedBy      string    `json:"createdBy"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ListOrdersResponse wraps the order listing.
type ListOrdersResponse struct {
	Orders []OrderResponse `json:"orders"`
}

// OrderHistoryResponse defines one audit record of the order status trail.
type OrderHistoryResponse struct {
	HistoryID string    `json:"historyID"`
	OrderID   string    `json:"orderID"`
	OldStatus string    `json:"oldStatus"`
	NewStatus string    `json:"newStatus"`
	ChangedBy string    `json:"changedBy"`
	ChangedAt time.Time `json:"changedAt"`
}

// ListOrderHistoryResponse wraps the audit trail listing.
type ListOrderHistoryResponse struct {
	History []OrderHistoryResponse `json:"history"`
}

// ToOrderResponse converts a domain.Order to its response DTO.
func ToOrderResponse(o *domain.Order) OrderResponse {
	return OrderResponse{
		OrderID:        o.OrderID,
		CustomerName:   o.CustomerName,
		ProductVariant: string(o.ProductVariant),
		Quantity:       o.Quantity,
		SellPrice:      o.SellPrice,
		Status:         string(o.Status),
		NetMargin:      finance.NetMargin(o.ProductVariant, o.SellPrice, o.Quantity),
		CreatedBy:      o.CreatedBy,
		CreatedAt:      o.CreatedAt,
	}
}

// ToListOrdersResponse converts a slice of domain orders.
func ToListOrdersResponse(orders []domain.Order) ListOrdersResponse {
	responses := make([]OrderResponse, len(orders))
	for i, o := range orders {
		responses[i] = ToOrderResponse(&o)
	}
	return ListOrdersResponse{Orders: responses}
}

// ToOrderHistoryResponse converts a domain audit record.
func ToOrderHistoryResponse(h *domain.OrderStatusHistory) OrderHistoryResponse {
	return OrderHistoryResponse{
		HistoryID: h.HistoryID,
		OrderID:   h.OrderID,
		OldStatus: string(h.OldStatus),
		NewStatus: string(h.NewStatus),
		ChangedBy: h.ChangedBy,
		ChangedAt: h.ChangedAt,
	}
}

// ToListOrderHistoryResponse converts a slice of audit records.
func ToListOrderHistoryResponse(hs []domain.OrderStatusHistory) ListOrderHistoryResponse {
	responses := make([]OrderHistoryResponse, len(hs))
	for i, h := range hs {
		responses[i] = ToOrderHistoryResponse(&h)
	}
	return ListOrderHistoryResponse{History: responses}
}
