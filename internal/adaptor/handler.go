package adaptor

import (
	"errors"
	"net/http"
	"strings"

	"order-management/internal/data/repository"
	"order-management/internal/usecase"
	"order-management/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	User     *UserHandler
	Product  *ProductHandler
	Customer *CustomerHandler
	Order    *OrderHandler
	OTP      *OTPHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		User:     NewUserHandler(service.User, log),
		Product:  NewProductHandler(service.Product, log),
		Customer: NewCustomerHandler(service.Customer, log),
		Order:    NewOrderHandler(service.Order, log),
		OTP:      NewOTPHandler(service.OTP, log),
	}
}

// handleServiceError maps service errors to HTTP responses. Constraint
// sentinels take priority over message matching.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	errMsg := err.Error()

	switch {
	case errors.Is(err, repository.ErrDuplicate):
		log.Warn(operation+" failed - duplicate",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseConflict(w, errMsg)

	case errors.Is(err, repository.ErrRestricted):
		log.Warn(operation+" failed - restricted by references",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseConflict(w, errMsg)

	case errors.Is(err, repository.ErrCheckViolation):
		log.Warn(operation+" failed - check violation",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "not found"):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid"),
		strings.Contains(errMsg, "belongs to another user"),
		strings.Contains(errMsg, "duplicate product"):
		log.Warn(operation+" rejected",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
