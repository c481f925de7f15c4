package migrations

import (
	"context"
	"database/sql"
	"time"

	"order-management/internal/seed"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upSeedOTPScenarios, downSeedOTPScenarios)
}

// upSeedOTPScenarios inserts eight categories of OTP records: normal used
// codes, expired ones, and several suspicious patterns (single-phone burst,
// night-hour requests, sequential phone sweep, repeated identical code,
// stale unused codes, fresh codes). The table deliberately has no per-phone
// uniqueness so these records can coexist.
func upSeedOTPScenarios(ctx context.Context, tx *sql.Tx) error {
	query := `
		INSERT INTO one_time_passwords (id, phone_number, code, created_at, is_used)
		VALUES ($1, $2, $3, $4, $5)
	`

	for _, otp := range seed.OTPScenarios(time.Now()) {
		_, err := tx.ExecContext(ctx, query,
			otp.ID,
			otp.PhoneNumber,
			otp.Code,
			otp.CreatedAt,
			otp.IsUsed,
		)
		if err != nil {
			return err
		}
	}

	return nil
}

func downSeedOTPScenarios(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `DELETE FROM one_time_passwords`)
	return err
}
