package services

import (
	"context"
	"fmt"
	"time"

	"github.com/citruspartners/citrus_ledger_app/internal/apperrors"
	"github.com/citruspartners/citrus_ledger_app/internal/core/domain"
	portsrepo "github.com/citruspartners/citrus_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/citruspartners/citrus_ledger_app/internal/core/ports/services"
	"github.com/citruspartners/citrus_ledger_app/internal/dto"
	"github.com/google/uuid"
)

// orderService implements order creation and the lifecycle state machine.
type orderService struct {
	orderRepo portsrepo.OrderRepositoryFacade
}

// NewOrderService creates a new order service.
func NewOrderService(orderRepo portsrepo.OrderRepositoryFacade) portssvc.OrderSvcFacade {
	return &orderService{orderRepo: orderRepo}
}

var _ portssvc.OrderSvcFacade = (*orderService)(nil)

func (s *orderService) CreateOrder(ctx context.Context, req dto.CreateOrderRequest, creatorID string) (*domain.Order, error) {
	variant := domain.ProductVariant(req.ProductVariant)
	if !variant.IsValid() {
		return nil, fmt.Errorf("unknown product variant %q: %w", req.ProductVariant, apperrors.ErrValidation)
	}
	if req.Quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive: %w", apperrors.ErrValidation)
	}
	if req.SellPrice == nil || *req.SellPrice < 0 {
		return nil, fmt.Errorf("sell price must be non-negative: %w", apperrors.ErrValidation)
	}
	if req.CustomerName == "" {
		return nil, fmt.Errorf("customer name must not be empty: %w", apperrors.ErrValidation)
	}

	order := domain.Order{
		OrderID:        uuid.NewString(),
		CustomerName:   req.CustomerName,
		ProductVariant: variant,
		Quantity:       req.Quantity,
		SellPrice:      *req.SellPrice,
		Status:         domain.OrderPending,
		AuditFields: domain.AuditFields{
			CreatedAt: time.Now(),
			CreatedBy: creatorID,
		},
	}

	if err := s.orderRepo.SaveOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to save order: %w", err)
	}
	return &order, nil
}

func (s *orderService) GetOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order %s: %w", orderID, err)
	}
	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context, status *domain.OrderStatus) ([]domain.Order, error) {
	if status != nil && !status.IsValid() {
		return nil, fmt.Errorf("unknown order status %q: %w", *status, apperrors.ErrValidation)
	}
	orders, err := s.orderRepo.ListOrders(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// UpdateOrderStatus validates the requested transition against the order's
// current persisted status and applies it together with its audit record in
// one repository transaction. A stale caller replaying an already-applied
// transition fails the validity check (or the conditional write, if the order
// moved mid-flight) and gets an error instead of a silent double transition.
func (s *orderService) UpdateOrderStatus(ctx context.Context, orderID string, requested domain.OrderStatus, actorID string) (*domain.Order, error) {
	if !requested.IsValid() {
		return nil, fmt.Errorf("unknown order status %q: %w", requested, apperrors.ErrValidation)
	}

	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order %s: %w", orderID, err)
	}

	if !domain.CanTransition(order.Status, requested) {
		return nil, fmt.Errorf("order %s cannot move from %s to %s: %w",
			orderID, order.Status, requested, apperrors.ErrInvalidTransition)
	}

	history := domain.OrderStatusHistory{
		HistoryID: uuid.NewString(),
		OrderID:   orderID,
		OldStatus: order.Status,
		NewStatus: requested,
		ChangedBy: actorID,
		ChangedAt: time.Now(),
	}

	if err := s.orderRepo.ApplyStatusTransition(ctx, history); err != nil {
		return nil, fmt.Errorf("failed to apply transition for order %s: %w", orderID, err)
	}

	order.Status = requested
	return order, nil
}

func (s *orderService) ListOrderHistory(ctx context.Context, orderID string) ([]domain.OrderStatusHistory, error) {
	history, err := s.orderRepo.ListOrderHistory(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list history for order %s: %w", orderID, err)
	}
	return history, nil
}
