package repositories

import (
	"context"

	"github.com/citruspartners/citrus_ledger_app/internal/core/domain"
)

// OrderReader defines read operations for orders and their audit trail.
type OrderReader interface {
	// FindOrderByID retrieves a single order by its identifier.
	FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error)

	// ListOrders retrieves orders, newest first, optionally filtered by status.
	ListOrders(ctx context.Context, status *domain.OrderStatus) ([]domain.Order, error)

	// ListOrderHistory retrieves the audit trail for one order, oldest first.
	ListOrderHistory(ctx context.Context, orderID string) ([]domain.OrderStatusHistory, error)
}

// OrderWriter defines write operations for orders.
type OrderWriter interface {
	// SaveOrder inserts a new order row.
	SaveOrder(ctx context.Context, order domain.Order) error

	// ApplyStatusTransition sets the order's status to history.NewStatus,
	// conditioned on the current persisted status still being
	// history.OldStatus, and appends the audit record. Both writes happen in a
	// single database transaction. Returns apperrors.ErrConflict when the
	// conditional update matches no row because a concurrent transition moved
	// the order first.
	ApplyStatusTransition(ctx context.Context, history domain.OrderStatusHistory) error
}

// OrderRepositoryFacade combines all order repository interfaces.
type OrderRepositoryFacade interface {
	OrderReader
	OrderWriter
}
