package migrations

import (
	"context"
	"database/sql"

	"order-management/internal/seed"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upSeedProducts, downSeedProducts)
}

// upSeedProducts gives every existing seller 1-5 products with prices in
// whole hundreds. No-op with a warning when no users exist yet.
func upSeedProducts(ctx context.Context, tx *sql.Tx) error {
	userIDs, err := selectUserIDs(ctx, tx)
	if err != nil {
		return err
	}
	if len(userIDs) == 0 {
		logger.Warn("No users found, skipping product seed")
		return nil
	}

	query := `
		INSERT INTO products (id, name, price, is_countable, user_id)
		VALUES ($1, $2, $3, $4, $5)
	`

	for _, product := range seed.Products(userIDs) {
		_, err := tx.ExecContext(ctx, query,
			product.ID,
			product.Name,
			product.Price,
			product.IsCountable,
			product.UserID,
		)
		if err != nil {
			return err
		}
	}

	return nil
}

func downSeedProducts(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `DELETE FROM products`)
	return err
}
