package usecase

import (
	"context"
	"fmt"

	"order-management/internal/data/entity"
	"order-management/internal/data/repository"
	"order-management/internal/dto/request"
	"order-management/internal/dto/response"
	"order-management/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CustomerService interface {
	GetUserCustomers(ctx context.Context, userID string) ([]response.CustomerResponse, error)
	GetCustomerByID(ctx context.Context, customerID string) (*response.CustomerResponse, error)
	CreateCustomer(ctx context.Context, userID string, req *request.CreateCustomerRequest) (*response.CustomerResponse, error)
	UpdateCustomer(ctx context.Context, customerID string, req *request.UpdateCustomerRequest) (*response.CustomerResponse, error)
	DeleteCustomer(ctx context.Context, customerID string) error
}

type customerService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCustomerService(
	repo *repository.Repository,
	log *zap.Logger,
) CustomerService {
	return &customerService{
		repo: repo,
		log:  log.With(zap.String("service", "customer")),
	}
}

func (s *customerService) GetUserCustomers(ctx context.Context, userID string) ([]response.CustomerResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}

	user, err := s.repo.User.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	customers, err := s.repo.Customer.FindByUser(ctx, id)
	if err != nil {
		s.log.Error("Failed to get customers for user",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		return nil, fmt.Errorf("get customers: %w", err)
	}

	customerResponses := make([]response.CustomerResponse, len(customers))
	for i, customer := range customers {
		customerResponses[i] = response.CustomerToResponse(customer)
	}

	return customerResponses, nil
}

func (s *customerService) GetCustomerByID(ctx context.Context, customerID string) (*response.CustomerResponse, error) {
	id, err := uuid.Parse(customerID)
	if err != nil {
		return nil, fmt.Errorf("invalid customer id: %w", err)
	}

	customer, err := s.repo.Customer.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get customer by ID",
			zap.Error(err),
			zap.String("customer_id", customerID),
		)
		return nil, fmt.Errorf("get customer by id: %w", err)
	}
	if customer == nil {
		return nil, fmt.Errorf("customer not found")
	}

	customerResp := response.CustomerToResponse(customer)
	return &customerResp, nil
}

func (s *customerService) CreateCustomer(ctx context.Context, userID string, req *request.CreateCustomerRequest) (*response.CustomerResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create customer validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	customerType := entity.CustomerType(req.Type)
	if !customerType.Valid() {
		return nil, fmt.Errorf("invalid customer type: %s", req.Type)
	}

	user, err := s.repo.User.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	customer := entity.NewCustomer(req.Name, req.INN, customerType, id)

	// The same INN may exist under another seller; (inn, user_id) uniqueness
	// is enforced by the database and surfaces as ErrDuplicate.
	if err := s.repo.Customer.Create(ctx, customer); err != nil {
		s.log.Error("Failed to create customer",
			zap.Error(err),
			zap.String("inn", req.INN),
			zap.String("user_id", userID),
		)
		return nil, fmt.Errorf("create customer: %w", err)
	}

	s.log.Info("Customer created",
		zap.String("customer_id", customer.ID.String()),
		zap.String("inn", customer.INN),
		zap.String("user_id", userID),
	)

	customerResp := response.CustomerToResponse(customer)
	return &customerResp, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, customerID string, req *request.UpdateCustomerRequest) (*response.CustomerResponse, error) {
	id, err := uuid.Parse(customerID)
	if err != nil {
		return nil, fmt.Errorf("invalid customer id: %w", err)
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update customer validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	customerType := entity.CustomerType(req.Type)
	if !customerType.Valid() {
		return nil, fmt.Errorf("invalid customer type: %s", req.Type)
	}

	customer, err := s.repo.Customer.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find customer: %w", err)
	}
	if customer == nil {
		return nil, fmt.Errorf("customer not found")
	}

	customer.Name = req.Name
	customer.INN = req.INN
	customer.Type = customerType

	if err := s.repo.Customer.Update(ctx, customer); err != nil {
		s.log.Error("Failed to update customer",
			zap.Error(err),
			zap.String("customer_id", customerID),
		)
		return nil, fmt.Errorf("update customer: %w", err)
	}

	s.log.Info("Customer updated", zap.String("customer_id", customerID))

	customerResp := response.CustomerToResponse(customer)
	return &customerResp, nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, customerID string) error {
	id, err := uuid.Parse(customerID)
	if err != nil {
		return fmt.Errorf("invalid customer id: %w", err)
	}

	customer, err := s.repo.Customer.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find customer: %w", err)
	}
	if customer == nil {
		return fmt.Errorf("customer not found")
	}

	// Orders placed for this customer are removed with it.
	if err := s.repo.Customer.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete customer",
			zap.Error(err),
			zap.String("customer_id", customerID),
		)
		return fmt.Errorf("delete customer: %w", err)
	}

	s.log.Info("Customer deleted",
		zap.String("customer_id", customerID),
		zap.String("inn", customer.INN),
	)

	return nil
}
