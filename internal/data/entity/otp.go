package entity

import (
	"time"

	"github.com/google/uuid"
)

// OneTimePassword is correlated to users by phone number only; there is no
// foreign key and no per-phone uniqueness, so multiple outstanding codes per
// phone are allowed.
type OneTimePassword struct {
	ID          uuid.UUID `db:"id"`
	PhoneNumber string    `db:"phone_number"`
	Code        int       `db:"code"`
	CreatedAt   time.Time `db:"created_at"`
	IsUsed      bool      `db:"is_used"`
}

func NewOneTimePassword(phoneNumber string, code int) *OneTimePassword {
	return &OneTimePassword{
		ID:          uuid.New(),
		PhoneNumber: phoneNumber,
		Code:        code,
		CreatedAt:   time.Now().UTC(),
		IsUsed:      false,
	}
}
