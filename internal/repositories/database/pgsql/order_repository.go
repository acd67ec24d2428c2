package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/citruspartners/citrus_ledger_app/internal/apperrors"
	"github.com/citruspartners/citrus_ledger_app/internal/core/domain"
	portsrepo "github.com/citruspartners/citrus_ledger_app/internal/core/ports/repositories"
	"github.com/citruspartners/citrus_ledger_app/internal/models"
	"github.com/citruspartners/citrus_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxOrderRepository persists orders and their status audit trail.
type PgxOrderRepository struct {
	BaseRepository
}

func newPgxOrderRepository(pool *pgxpool.Pool) portsrepo.OrderRepositoryFacade {
	return &PgxOrderRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.OrderRepositoryFacade = (*PgxOrderRepository)(nil)

func (r *PgxOrderRepository) SaveOrder(ctx context.Context, order domain.Order) error {
	modelOrder := mapping.ToModelOrder(order)
	query := `
        INSERT INTO orders (order_id, customer_name, product_variant, quantity, sell_price, status, created_at, created_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
    `
	_, err := r.Pool.Exec(ctx, query,
		modelOrder.OrderID,
		modelOrder.CustomerName,
		modelOrder.ProductVariant,
		modelOrder.Quantity,
		modelOrder.SellPrice,
		modelOrder.Status,
		modelOrder.CreatedAt,
		modelOrder.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}
	return nil
}

func (r *PgxOrderRepository) FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	query := `
        SELECT order_id, customer_name, product_variant, quantity, sell_price, status, created_at, created_by
        FROM orders
        WHERE order_id = $1;
    `
	var modelOrder models.Order
	err := r.Pool.QueryRow(ctx, query, orderID).Scan(
		&modelOrder.OrderID,
		&modelOrder.CustomerName,
		&modelOrder.ProductVariant,
		&modelOrder.Quantity,
		&modelOrder.SellPrice,
		&modelOrder.Status,
		&modelOrder.CreatedAt,
		&modelOrder.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find order %s: %w", orderID, err)
	}

	domainOrder := mapping.ToDomainOrder(modelOrder)
	return &domainOrder, nil
}

func (r *PgxOrderRepository) ListOrders(ctx context.Context, status *domain.OrderStatus) ([]domain.Order, error) {
	query := `
        SELECT order_id, customer_name, product_variant, quantity, sell_price, status, created_at, created_by
        FROM orders`
	var args []any
	if status != nil {
		query += "\n        WHERE status = $1"
		args = append(args, string(*status))
	}
	query += "\n        ORDER BY created_at DESC;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	modelOrders := []models.Order{}
	for rows.Next() {
		var modelOrder models.Order
		err := rows.Scan(
			&modelOrder.OrderID,
			&modelOrder.CustomerName,
			&modelOrder.ProductVariant,
			&modelOrder.Quantity,
			&modelOrder.SellPrice,
			&modelOrder.Status,
			&modelOrder.CreatedAt,
			&modelOrder.CreatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order row: %w", err)
		}
		modelOrders = append(modelOrders, modelOrder)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating order rows: %w", rows.Err())
	}

	return mapping.ToDomainOrderSlice(modelOrders), nil
}

// ApplyStatusTransition performs the status update and the audit insert in a
// single database transaction. The UPDATE is conditioned on the current
// status still matching history.OldStatus, so of two concurrent transition
// requests from the same stale state only one can succeed; the loser gets
// apperrors.ErrConflict.
func (r *PgxOrderRepository) ApplyStatusTransition(ctx context.Context, history domain.OrderStatusHistory) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	updateQuery := `
        UPDATE orders
        SET status = $1
        WHERE order_id = $2 AND status = $3;
    `
	cmdTag, err := tx.Exec(ctx, updateQuery,
		string(history.NewStatus),
		history.OrderID,
		string(history.OldStatus),
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update order status", err)
	}
	if cmdTag.RowsAffected() == 0 {
		// The order moved since we read it, or it does not exist.
		return fmt.Errorf("order %s is no longer in status %s: %w",
			history.OrderID, history.OldStatus, apperrors.ErrConflict)
	}

	historyQuery := `
        INSERT INTO order_status_history (history_id, order_id, old_status, new_status, changed_by, changed_at)
        VALUES ($1, $2, $3, $4, $5, $6);
    `
	_, err = tx.Exec(ctx, historyQuery,
		history.HistoryID,
		history.OrderID,
		string(history.OldStatus),
		string(history.NewStatus),
		history.ChangedBy,
		history.ChangedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert order status history", err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxOrderRepository) ListOrderHistory(ctx context.Context, orderID string) ([]domain.OrderStatusHistory, error) {
	query := `
        SELECT history_id, order_id, old_status, new_status, changed_by, changed_at
        FROM order_status_history
        WHERE order_id = $1
        ORDER BY changed_at ASC;
    `
	rows, err := r.Pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to query order history: %w", err)
	}
	defer rows.Close()

	modelHistory := []models.OrderStatusHistory{}
	for rows.Next() {
		var m models.OrderStatusHistory
		err := rows.Scan(
			&m.HistoryID,
			&m.OrderID,
			&m.OldStatus,
			&m.NewStatus,
			&m.ChangedBy,
			&m.ChangedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order history row: %w", err)
		}
		modelHistory = append(modelHistory, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating order history rows: %w", rows.Err())
	}

	return mapping.ToDomainOrderHistorySlice(modelHistory), nil
}
