package usecase

import (
	"context"
	"fmt"
	"time"

	"order-management/internal/data/entity"
	"order-management/internal/data/repository"
	"order-management/internal/dto/request"
	"order-management/internal/dto/response"
	"order-management/pkg/utils"

	"go.uber.org/zap"
)

type OTPService interface {
	SendOTP(ctx context.Context, req *request.SendOTPRequest) (*response.OTPResponse, error)
	VerifyOTP(ctx context.Context, req *request.VerifyOTPRequest) (*response.VerifyOTPResponse, error)
	GetOTPsByPhone(ctx context.Context, phoneNumber string) ([]response.OTPResponse, error)
}

type otpService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewOTPService(
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) OTPService {
	return &otpService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "otp")),
	}
}

// SendOTP issues a new code for the phone. Outstanding codes are not
// invalidated; each is checked against the expiry window on verification.
func (s *otpService) SendOTP(ctx context.Context, req *request.SendOTPRequest) (*response.OTPResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Send OTP validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	code := utils.GenerateOTPCode(s.config.OTP.Length)
	otp := entity.NewOneTimePassword(req.PhoneNumber, code)

	if err := s.repo.OTP.Create(ctx, otp); err != nil {
		s.log.Error("Failed to store OTP",
			zap.Error(err),
			zap.String("phone_number", req.PhoneNumber),
		)
		return nil, fmt.Errorf("send OTP: %w", err)
	}

	// Delivery over SMS happens out of band; the code is logged for local runs.
	s.log.Info("OTP issued",
		zap.String("phone_number", req.PhoneNumber),
		zap.String("otp_id", otp.ID.String()),
	)

	otpResp := response.OTPToResponse(otp)
	return &otpResp, nil
}

func (s *otpService) VerifyOTP(ctx context.Context, req *request.VerifyOTPRequest) (*response.VerifyOTPResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Verify OTP validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	notBefore := time.Now().UTC().Add(-time.Duration(s.config.OTP.ExpiryMinutes) * time.Minute)

	otp, err := s.repo.OTP.FindLatestUnused(ctx, req.PhoneNumber, req.Code, notBefore)
	if err != nil {
		s.log.Error("Failed to look up OTP",
			zap.Error(err),
			zap.String("phone_number", req.PhoneNumber),
		)
		return nil, fmt.Errorf("verify OTP: %w", err)
	}
	if otp == nil {
		s.log.Warn("OTP verification rejected",
			zap.String("phone_number", req.PhoneNumber),
		)
		return nil, fmt.Errorf("code is invalid or expired")
	}

	if err := s.repo.OTP.MarkAsUsed(ctx, otp.ID); err != nil {
		s.log.Error("Failed to mark OTP as used",
			zap.Error(err),
			zap.String("otp_id", otp.ID.String()),
		)
		return nil, fmt.Errorf("verify OTP: %w", err)
	}

	s.log.Info("OTP verified",
		zap.String("phone_number", req.PhoneNumber),
		zap.String("otp_id", otp.ID.String()),
	)

	return &response.VerifyOTPResponse{
		PhoneNumber: req.PhoneNumber,
		Verified:    true,
	}, nil
}

// GetOTPsByPhone lists every code ever issued for the phone, newest first.
func (s *otpService) GetOTPsByPhone(ctx context.Context, phoneNumber string) ([]response.OTPResponse, error) {
	if phoneNumber == "" {
		return nil, fmt.Errorf("invalid phone number: empty")
	}

	otps, err := s.repo.OTP.FindByPhone(ctx, phoneNumber)
	if err != nil {
		s.log.Error("Failed to get OTPs for phone",
			zap.Error(err),
			zap.String("phone_number", phoneNumber),
		)
		return nil, fmt.Errorf("get OTPs: %w", err)
	}

	otpResponses := make([]response.OTPResponse, len(otps))
	for i, otp := range otps {
		otpResponses[i] = response.OTPToResponse(otp)
	}

	return otpResponses, nil
}
