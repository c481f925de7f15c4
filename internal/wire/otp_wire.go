package wire

import (
	"order-management/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireOTP(r chi.Router, handler *adaptor.Handler) {
	r.Route("/api/otp", func(r chi.Router) {
		r.Get("/", handler.OTP.GetOTPs)
		r.Post("/send", handler.OTP.SendOTP)
		r.Post("/verify", handler.OTP.VerifyOTP)
	})
}
