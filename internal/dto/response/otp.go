package response

import (
	"time"

	"order-management/internal/data/entity"
)

type OTPResponse struct {
	ID          string    `json:"id"`
	PhoneNumber string    `json:"phone_number"`
	Code        int       `json:"code"`
	CreatedAt   time.Time `json:"created_at"`
	IsUsed      bool      `json:"is_used"`
}

type VerifyOTPResponse struct {
	PhoneNumber string `json:"phone_number"`
	Verified    bool   `json:"verified"`
}

func OTPToResponse(otp *entity.OneTimePassword) OTPResponse {
	return OTPResponse{
		ID:          otp.ID.String(),
		PhoneNumber: otp.PhoneNumber,
		Code:        otp.Code,
		CreatedAt:   otp.CreatedAt,
		IsUsed:      otp.IsUsed,
	}
}
