package repository

import (
	"context"
	"errors"
	"fmt"

	"order-management/internal/data/entity"
	"order-management/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type OrderRepository interface {
	CreateWithItems(ctx context.Context, order *entity.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	FindByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Order, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
	FindItems(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderProduct, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type orderRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOrderRepository(db database.PgxIface, log *zap.Logger) OrderRepository {
	return &orderRepository{
		db:  db,
		log: log,
	}
}

// CreateWithItems inserts the order and all of its line items in a single
// transaction so an order never becomes visible without its items. The
// per-seller number is allocated by the insert statement itself, so a stale
// maximum read before the transaction cannot leak into the row. The
// allocated number is written back into order.Number.
func (or *orderRepository) CreateWithItems(ctx context.Context, order *entity.Order) error {
	tx, err := or.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin order transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	orderQuery := `
		INSERT INTO orders (id, number, created_at, customer_id, user_id)
		SELECT $1, COALESCE(MAX(number), 0) + 1, $2, $3, $4
		FROM orders
		WHERE user_id = $4
		RETURNING number
	`

	err = tx.QueryRow(ctx, orderQuery,
		order.ID,
		order.CreatedAt,
		order.CustomerID,
		order.UserID,
	).Scan(&order.Number)
	if err != nil {
		or.log.Error("Failed to create order",
			zap.Error(err),
			zap.String("user_id", order.UserID.String()),
		)
		return fmt.Errorf("create order for user %s: %w", order.UserID.String(), constraintError(err))
	}

	itemQuery := `
		INSERT INTO order_products (id, quantity, price, order_id, product_id)
		VALUES ($1, $2, $3, $4, $5)
	`

	for _, item := range order.Items {
		_, err = tx.Exec(ctx, itemQuery,
			item.ID,
			item.Quantity,
			item.Price,
			item.OrderID,
			item.ProductID,
		)
		if err != nil {
			or.log.Error("Failed to create order line",
				zap.Error(err),
				zap.String("order_id", order.ID.String()),
				zap.String("product_id", item.ProductID.String()),
			)
			return fmt.Errorf("create order line for product %s: %w",
				item.ProductID.String(), constraintError(err))
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit order transaction: %w", err)
	}

	return nil
}

func (or *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	query := `
		SELECT id, number, created_at, customer_id, user_id
		FROM orders
		WHERE id = $1
	`

	var order entity.Order
	err := or.db.QueryRow(ctx, query, id).Scan(
		&order.ID,
		&order.Number,
		&order.CreatedAt,
		&order.CustomerID,
		&order.UserID,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		or.log.Error("Failed to find order by ID",
			zap.Error(err),
			zap.String("order_id", id.String()),
		)
		return nil, fmt.Errorf("find order by ID %s: %w", id.String(), err)
	}

	return &order, nil
}

func (or *orderRepository) FindByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Order, error) {
	query := `
		SELECT id, number, created_at, customer_id, user_id
		FROM orders
		WHERE user_id = $1
		ORDER BY number DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := or.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		or.log.Error("Failed to get orders for user",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find orders for user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var orders []*entity.Order
	for rows.Next() {
		var order entity.Order
		err := rows.Scan(
			&order.ID,
			&order.Number,
			&order.CreatedAt,
			&order.CustomerID,
			&order.UserID,
		)
		if err != nil {
			or.log.Error("Failed to scan order row", zap.Error(err))
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		orders = append(orders, &order)
	}

	if err := rows.Err(); err != nil {
		or.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate orders rows: %w", err)
	}

	return orders, nil
}

func (or *orderRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM orders WHERE user_id = $1`

	var count int64
	err := or.db.QueryRow(ctx, query, userID).Scan(&count)
	if err != nil {
		or.log.Error("Database error counting orders",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count orders for user %s: %w", userID.String(), err)
	}

	return count, nil
}

func (or *orderRepository) FindItems(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderProduct, error) {
	query := `
		SELECT id, quantity, price, order_id, product_id
		FROM order_products
		WHERE order_id = $1
	`

	rows, err := or.db.Query(ctx, query, orderID)
	if err != nil {
		or.log.Error("Failed to get order lines",
			zap.Error(err),
			zap.String("order_id", orderID.String()),
		)
		return nil, fmt.Errorf("find lines for order %s: %w", orderID.String(), err)
	}
	defer rows.Close()

	var items []*entity.OrderProduct
	for rows.Next() {
		var item entity.OrderProduct
		err := rows.Scan(
			&item.ID,
			&item.Quantity,
			&item.Price,
			&item.OrderID,
			&item.ProductID,
		)
		if err != nil {
			or.log.Error("Failed to scan order line row", zap.Error(err))
			return nil, fmt.Errorf("scan order line row: %w", err)
		}
		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		or.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate order lines rows: %w", err)
	}

	return items, nil
}

// Delete cascades to the order's line items (ON DELETE CASCADE).
func (or *orderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM orders WHERE id = $1`

	result, err := or.db.Exec(ctx, query, id)
	if err != nil {
		or.log.Error("Failed to delete order",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return fmt.Errorf("delete order %s: %w", id.String(), constraintError(err))
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("order %s not found", id.String())
	}

	or.log.Info("Order deleted", zap.String("id", id.String()))
	return nil
}
