package migrations

import (
	"context"
	"database/sql"

	"order-management/internal/seed"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upSeedCustomers, downSeedCustomers)
}

// upSeedCustomers gives every existing seller 1-3 customers. No-op with a
// warning when no users exist yet.
func upSeedCustomers(ctx context.Context, tx *sql.Tx) error {
	userIDs, err := selectUserIDs(ctx, tx)
	if err != nil {
		return err
	}
	if len(userIDs) == 0 {
		logger.Warn("No users found, skipping customer seed")
		return nil
	}

	query := `
		INSERT INTO customers (id, name, inn, customer_type, user_id)
		VALUES ($1, $2, $3, $4, $5)
	`

	for _, customer := range seed.Customers(userIDs) {
		_, err := tx.ExecContext(ctx, query,
			customer.ID,
			customer.Name,
			customer.INN,
			customer.Type,
			customer.UserID,
		)
		if err != nil {
			return err
		}
	}

	return nil
}

func downSeedCustomers(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `DELETE FROM customers`)
	return err
}

func selectUserIDs(ctx context.Context, tx *sql.Tx) ([]uuid.UUID, error) {
	rows, err := tx.QueryContext(ctx, `SELECT id FROM users`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}
