package usecase

import (
	"order-management/internal/data/repository"
	"order-management/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	User     UserService
	Product  ProductService
	Customer CustomerService
	Order    OrderService
	OTP      OTPService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		User:     NewUserService(repo, log),
		Product:  NewProductService(repo, log),
		Customer: NewCustomerService(repo, log),
		Order:    NewOrderService(repo, log),
		OTP:      NewOTPService(repo, config, log),
	}
}
