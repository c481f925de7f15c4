package migrations

import (
	"context"
	"database/sql"
	"time"

	"order-management/internal/seed"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
	"github.com/shopspring/decimal"
)

func init() {
	goose.AddMigrationContext(upSeedOrders, downSeedOrders)
}

// upSeedOrders creates 150 orders over sellers that own at least one
// customer and one product. Order numbers continue from each seller's
// current maximum; line prices snapshot the product price ±10%.
func upSeedOrders(ctx context.Context, tx *sql.Tx) error {
	userIDs, err := selectUserIDs(ctx, tx)
	if err != nil {
		return err
	}
	if len(userIDs) == 0 {
		logger.Warn("No users found, skipping order seed")
		return nil
	}

	customersByUser, err := selectCustomersByUser(ctx, tx)
	if err != nil {
		return err
	}
	if len(customersByUser) == 0 {
		logger.Warn("No customers found, skipping order seed")
		return nil
	}

	productsByUser, err := selectProductsByUser(ctx, tx)
	if err != nil {
		return err
	}
	if len(productsByUser) == 0 {
		logger.Warn("No products found, skipping order seed")
		return nil
	}

	maxNumberByUser, err := selectMaxOrderNumbers(ctx, tx)
	if err != nil {
		return err
	}

	plans := seed.Orders(seed.OrderInput{
		UserIDs:         userIDs,
		CustomersByUser: customersByUser,
		ProductsByUser:  productsByUser,
		MaxNumberByUser: maxNumberByUser,
	}, 150, time.Now())

	if len(plans) == 0 {
		logger.Warn("No users with both customers and products, skipping order seed")
		return nil
	}

	orderQuery := `
		INSERT INTO orders (id, number, created_at, customer_id, user_id)
		VALUES ($1, $2, $3, $4, $5)
	`
	lineQuery := `
		INSERT INTO order_products (id, quantity, price, order_id, product_id)
		VALUES ($1, $2, $3, $4, $5)
	`

	for _, order := range plans {
		_, err := tx.ExecContext(ctx, orderQuery,
			order.ID,
			order.Number,
			order.CreatedAt,
			order.CustomerID,
			order.UserID,
		)
		if err != nil {
			return err
		}

		for _, line := range order.Lines {
			_, err := tx.ExecContext(ctx, lineQuery,
				line.ID,
				line.Quantity,
				line.Price,
				order.ID,
				line.ProductID,
			)
			if err != nil {
				return err
			}
		}
	}

	return nil
}

func downSeedOrders(ctx context.Context, tx *sql.Tx) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM order_products`); err != nil {
		return err
	}
	_, err := tx.ExecContext(ctx, `DELETE FROM orders`)
	return err
}

func selectCustomersByUser(ctx context.Context, tx *sql.Tx) (map[uuid.UUID][]uuid.UUID, error) {
	rows, err := tx.QueryContext(ctx, `SELECT id, user_id FROM customers`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byUser := make(map[uuid.UUID][]uuid.UUID)
	for rows.Next() {
		var id, userID uuid.UUID
		if err := rows.Scan(&id, &userID); err != nil {
			return nil, err
		}
		byUser[userID] = append(byUser[userID], id)
	}

	return byUser, rows.Err()
}

func selectProductsByUser(ctx context.Context, tx *sql.Tx) (map[uuid.UUID][]seed.ProductRef, error) {
	rows, err := tx.QueryContext(ctx, `SELECT id, user_id, price FROM products`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byUser := make(map[uuid.UUID][]seed.ProductRef)
	for rows.Next() {
		var id, userID uuid.UUID
		var price decimal.Decimal
		if err := rows.Scan(&id, &userID, &price); err != nil {
			return nil, err
		}
		byUser[userID] = append(byUser[userID], seed.ProductRef{ID: id, Price: price})
	}

	return byUser, rows.Err()
}

func selectMaxOrderNumbers(ctx context.Context, tx *sql.Tx) (map[uuid.UUID]int, error) {
	rows, err := tx.QueryContext(ctx,
		`SELECT user_id, COALESCE(MAX(number), 0) FROM orders GROUP BY user_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	maxByUser := make(map[uuid.UUID]int)
	for rows.Next() {
		var userID uuid.UUID
		var max int
		if err := rows.Scan(&userID, &max); err != nil {
			return nil, err
		}
		maxByUser[userID] = max
	}

	return maxByUser, rows.Err()
}
