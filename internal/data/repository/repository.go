package repository

import (
	"order-management/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User     UserRepository
	Product  ProductRepository
	Customer CustomerRepository
	Order    OrderRepository
	OTP      OTPRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:     NewUserRepository(db, log),
		Product:  NewProductRepository(db, log),
		Customer: NewCustomerRepository(db, log),
		Order:    NewOrderRepository(db, log),
		OTP:      NewOTPRepository(db, log),
	}
}
