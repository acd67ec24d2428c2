package services

import (
	"context"

	"github.com/citruspartners/citrus_ledger_app/internal/core/domain"
	"github.com/citruspartners/citrus_ledger_app/internal/dto"
)

// OrderSvcFacade exposes order lifecycle operations to handlers.
type OrderSvcFacade interface {
	// CreateOrder validates and records a new order in status pending.
	CreateOrder(ctx context.Context, req dto.CreateOrderRequest, creatorID string) (*domain.Order, error)

	// GetOrderByID retrieves a single order.
	GetOrderByID(ctx context.Context, orderID string) (*domain.Order, error)

	// ListOrders retrieves orders, optionally filtered by status.
	ListOrders(ctx context.Context, status *domain.OrderStatus) ([]domain.Order, error)

	// UpdateOrderStatus applies a status transition for the order. The check
	// runs against the current persisted status, never a caller-supplied
	// belief. Returns apperrors.ErrInvalidTransition when the requested status
	// is not reachable, apperrors.ErrConflict when a concurrent transition won
	// the race.
	UpdateOrderStatus(ctx context.Context, orderID string, requested domain.OrderStatus, actorID string) (*domain.Order, error)

	// ListOrderHistory retrieves the audit trail for one order.
	ListOrderHistory(ctx context.Context, orderID string) ([]domain.OrderStatusHistory, error)
}
