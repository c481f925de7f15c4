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

type OrderService interface {
	GetUserOrders(ctx context.Context, userID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.OrderResponse], error)
	GetOrderByID(ctx context.Context, orderID string) (*response.OrderResponse, error)
	CreateOrder(ctx context.Context, userID string, req *request.CreateOrderRequest) (*response.OrderResponse, error)
	DeleteOrder(ctx context.Context, orderID string) error
}

type orderService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewOrderService(
	repo *repository.Repository,
	log *zap.Logger,
) OrderService {
	return &orderService{
		repo: repo,
		log:  log.With(zap.String("service", "order")),
	}
}

func (s *orderService) GetUserOrders(ctx context.Context, userID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.OrderResponse], error) {
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

	orders, err := s.repo.Order.FindByUser(ctx, id, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get orders for user",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		return nil, fmt.Errorf("get orders: %w", err)
	}

	total, err := s.repo.Order.CountByUser(ctx, id)
	if err != nil {
		s.log.Error("Failed to count orders",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		return nil, fmt.Errorf("count orders: %w", err)
	}

	orderResponses := make([]response.OrderResponse, len(orders))
	for i, order := range orders {
		items, err := s.repo.Order.FindItems(ctx, order.ID)
		if err != nil {
			s.log.Error("Failed to get lines for order",
				zap.Error(err),
				zap.String("order_id", order.ID.String()),
			)
			return nil, fmt.Errorf("get order lines: %w", err)
		}
		order.Items = items
		orderResponses[i] = response.OrderToResponse(order)
	}

	s.log.Info("Orders retrieved",
		zap.Int("count", len(orders)),
		zap.Int64("total", total),
		zap.String("user_id", userID),
	)

	return response.NewPaginatedResponse(orderResponses, req.Page, req.PerPage, total), nil
}

func (s *orderService) GetOrderByID(ctx context.Context, orderID string) (*response.OrderResponse, error) {
	id, err := uuid.Parse(orderID)
	if err != nil {
		return nil, fmt.Errorf("invalid order id: %w", err)
	}

	order, err := s.repo.Order.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get order by ID",
			zap.Error(err),
			zap.String("order_id", orderID),
		)
		return nil, fmt.Errorf("get order by id: %w", err)
	}
	if order == nil {
		return nil, fmt.Errorf("order not found")
	}

	items, err := s.repo.Order.FindItems(ctx, id)
	if err != nil {
		s.log.Error("Failed to get lines for order",
			zap.Error(err),
			zap.String("order_id", orderID),
		)
		return nil, fmt.Errorf("get order lines: %w", err)
	}
	order.Items = items

	orderResp := response.OrderToResponse(order)
	return &orderResp, nil
}

func (s *orderService) CreateOrder(ctx context.Context, userID string, req *request.CreateOrderRequest) (*response.OrderResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create order validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByID(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("invalid customer id: %w", err)
	}

	customer, err := s.repo.Customer.FindByID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("find customer: %w", err)
	}
	if customer == nil {
		return nil, fmt.Errorf("customer not found")
	}
	if customer.UserID != uid {
		return nil, fmt.Errorf("customer belongs to another user")
	}

	// The per-seller number is allocated by the repository inside the insert
	// transaction, so concurrent creates never race on a stale maximum.
	order := entity.NewOrder(customerID, uid)

	seen := make(map[uuid.UUID]bool, len(req.Items))
	for _, item := range req.Items {
		productID, err := uuid.Parse(item.ProductID)
		if err != nil {
			return nil, fmt.Errorf("invalid product id: %w", err)
		}
		if seen[productID] {
			return nil, fmt.Errorf("duplicate product %s in order", item.ProductID)
		}
		seen[productID] = true

		product, err := s.repo.Product.FindByID(ctx, productID)
		if err != nil {
			return nil, fmt.Errorf("find product: %w", err)
		}
		if product == nil {
			return nil, fmt.Errorf("product not found: %s", item.ProductID)
		}
		if product.UserID != uid {
			return nil, fmt.Errorf("product %s belongs to another user", item.ProductID)
		}

		// The line price is a snapshot: either the explicit override or the
		// product's price at this moment.
		price := product.Price
		if item.Price != nil {
			price, err = parsePrice(*item.Price)
			if err != nil {
				return nil, err
			}
		}

		order.Items = append(order.Items, entity.NewOrderProduct(order.ID, productID, item.Quantity, price))
	}

	if err := s.repo.Order.CreateWithItems(ctx, order); err != nil {
		s.log.Error("Failed to create order",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.log.Info("Order created",
		zap.String("order_id", order.ID.String()),
		zap.Int("number", order.Number),
		zap.String("user_id", userID),
		zap.Int("line_count", len(order.Items)),
	)

	orderResp := response.OrderToResponse(order)
	return &orderResp, nil
}

func (s *orderService) DeleteOrder(ctx context.Context, orderID string) error {
	id, err := uuid.Parse(orderID)
	if err != nil {
		return fmt.Errorf("invalid order id: %w", err)
	}

	order, err := s.repo.Order.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find order: %w", err)
	}
	if order == nil {
		return fmt.Errorf("order not found")
	}

	if err := s.repo.Order.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete order",
			zap.Error(err),
			zap.String("order_id", orderID),
		)
		return fmt.Errorf("delete order: %w", err)
	}

	s.log.Info("Order deleted",
		zap.String("order_id", orderID),
		zap.Int("number", order.Number),
	)

	return nil
}
