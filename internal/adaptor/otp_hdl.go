package adaptor

import (
	"encoding/json"
	"net/http"

	"order-management/internal/dto/request"
	"order-management/internal/usecase"
	"order-management/pkg/utils"

	"go.uber.org/zap"
)

type OTPHandler struct {
	service usecase.OTPService
	log     *zap.Logger
}

func NewOTPHandler(service usecase.OTPService, log *zap.Logger) *OTPHandler {
	return &OTPHandler{
		service: service,
		log:     log.With(zap.String("handler", "otp")),
	}
}

// SendOTP handles POST /api/otp/send
func (h *OTPHandler) SendOTP(w http.ResponseWriter, r *http.Request) {
	var req request.SendOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	otp, err := h.service.SendOTP(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "send OTP")
		return
	}

	utils.ResponseCreated(w, "OTP sent successfully", otp)
}

// GetOTPs handles GET /api/otp?phone=
func (h *OTPHandler) GetOTPs(w http.ResponseWriter, r *http.Request) {
	phone := r.URL.Query().Get("phone")
	if phone == "" {
		utils.ResponseBadRequest(w, "Query parameter phone is required", nil)
		return
	}

	otps, err := h.service.GetOTPsByPhone(r.Context(), phone)
	if err != nil {
		handleServiceError(w, h.log, err, "get OTPs")
		return
	}

	utils.ResponseSuccess(w, "OTPs retrieved successfully", otps)
}

// VerifyOTP handles POST /api/otp/verify
func (h *OTPHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req request.VerifyOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	result, err := h.service.VerifyOTP(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "verify OTP")
		return
	}

	utils.ResponseSuccess(w, "OTP verified successfully", result)
}
