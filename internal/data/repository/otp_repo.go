package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"order-management/internal/data/entity"
	"order-management/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type OTPRepository interface {
	Create(ctx context.Context, otp *entity.OneTimePassword) error
	FindLatestUnused(ctx context.Context, phoneNumber string, code int, notBefore time.Time) (*entity.OneTimePassword, error)
	FindByPhone(ctx context.Context, phoneNumber string) ([]*entity.OneTimePassword, error)
	MarkAsUsed(ctx context.Context, id uuid.UUID) error
}

type otpRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOTPRepository(db database.PgxIface, log *zap.Logger) OTPRepository {
	return &otpRepository{
		db:  db,
		log: log.With(zap.String("repository", "otp")),
	}
}

func (r *otpRepository) Create(ctx context.Context, otp *entity.OneTimePassword) error {
	query := `
		INSERT INTO one_time_passwords (id, phone_number, code, created_at, is_used)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		otp.ID,
		otp.PhoneNumber,
		otp.Code,
		otp.CreatedAt,
		otp.IsUsed,
	)

	if err != nil {
		r.log.Error("Failed to create OTP",
			zap.Error(err),
			zap.String("phone_number", otp.PhoneNumber),
		)
		return fmt.Errorf("create OTP for %s: %w", otp.PhoneNumber, err)
	}

	return nil
}

// FindLatestUnused returns the newest unused code for the phone issued at or
// after notBefore. Multiple outstanding codes per phone are allowed by the
// schema; only the newest match counts.
func (r *otpRepository) FindLatestUnused(ctx context.Context, phoneNumber string, code int, notBefore time.Time) (*entity.OneTimePassword, error) {
	query := `
		SELECT id, phone_number, code, created_at, is_used
		FROM one_time_passwords
		WHERE phone_number = $1
		  AND code = $2
		  AND is_used = false
		  AND created_at >= $3
		ORDER BY created_at DESC
		LIMIT 1
	`

	var otp entity.OneTimePassword
	err := r.db.QueryRow(ctx, query, phoneNumber, code, notBefore).Scan(
		&otp.ID,
		&otp.PhoneNumber,
		&otp.Code,
		&otp.CreatedAt,
		&otp.IsUsed,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find valid OTP",
			zap.Error(err),
			zap.String("phone_number", phoneNumber),
		)
		return nil, fmt.Errorf("find valid OTP for %s: %w", phoneNumber, err)
	}

	return &otp, nil
}

func (r *otpRepository) FindByPhone(ctx context.Context, phoneNumber string) ([]*entity.OneTimePassword, error) {
	query := `
		SELECT id, phone_number, code, created_at, is_used
		FROM one_time_passwords
		WHERE phone_number = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, phoneNumber)
	if err != nil {
		r.log.Error("Failed to get OTPs for phone",
			zap.Error(err),
			zap.String("phone_number", phoneNumber),
		)
		return nil, fmt.Errorf("find OTPs for %s: %w", phoneNumber, err)
	}
	defer rows.Close()

	var otps []*entity.OneTimePassword
	for rows.Next() {
		var otp entity.OneTimePassword
		err := rows.Scan(
			&otp.ID,
			&otp.PhoneNumber,
			&otp.Code,
			&otp.CreatedAt,
			&otp.IsUsed,
		)
		if err != nil {
			r.log.Error("Failed to scan OTP row", zap.Error(err))
			return nil, fmt.Errorf("scan OTP row: %w", err)
		}
		otps = append(otps, &otp)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate OTP rows: %w", err)
	}

	return otps, nil
}

func (r *otpRepository) MarkAsUsed(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE one_time_passwords
		SET is_used = true
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to mark OTP as used",
			zap.Error(err),
			zap.String("otp_id", id.String()),
		)
		return fmt.Errorf("mark OTP %s as used: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("OTP %s not found", id.String())
	}

	return nil
}
