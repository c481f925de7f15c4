package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// Sentinel errors for storage constraint violations. Deletion policy lives in
// the schema (ON DELETE CASCADE / RESTRICT); these let callers tell a
// restricted delete or duplicate key apart from an infrastructure failure.
var (
	ErrDuplicate      = errors.New("duplicate value violates unique constraint")
	ErrRestricted     = errors.New("operation restricted by foreign key constraint")
	ErrCheckViolation = errors.New("value violates check constraint")
)

// constraintError translates PostgreSQL error codes into sentinel errors,
// keeping the violated constraint name for diagnostics.
func constraintError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return fmt.Errorf("%w: %s", ErrDuplicate, pgErr.ConstraintName)
		case "23503":
			return fmt.Errorf("%w: %s", ErrRestricted, pgErr.ConstraintName)
		case "23514":
			return fmt.Errorf("%w: %s", ErrCheckViolation, pgErr.ConstraintName)
		}
	}
	return err
}
