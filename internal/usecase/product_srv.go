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
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type ProductService interface {
	GetUserProducts(ctx context.Context, userID string) ([]response.ProductResponse, error)
	GetProductByID(ctx context.Context, productID string) (*response.ProductResponse, error)
	CreateProduct(ctx context.Context, userID string, req *request.CreateProductRequest) (*response.ProductResponse, error)
	UpdateProduct(ctx context.Context, productID string, req *request.UpdateProductRequest) (*response.ProductResponse, error)
	DeleteProduct(ctx context.Context, productID string) error
}

type productService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewProductService(
	repo *repository.Repository,
	log *zap.Logger,
) ProductService {
	return &productService{
		repo: repo,
		log:  log.With(zap.String("service", "product")),
	}
}

// parsePrice accepts a decimal string and requires a non-negative value with
// at most two fractional digits.
func parsePrice(raw string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid price %q: %w", raw, err)
	}
	if price.IsNegative() {
		return decimal.Zero, fmt.Errorf("invalid price %q: must not be negative", raw)
	}
	if price.Exponent() < -2 {
		return decimal.Zero, fmt.Errorf("invalid price %q: more than two decimal places", raw)
	}
	return price, nil
}

func (s *productService) GetUserProducts(ctx context.Context, userID string) ([]response.ProductResponse, error) {
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

	products, err := s.repo.Product.FindByUser(ctx, id)
	if err != nil {
		s.log.Error("Failed to get products for user",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		return nil, fmt.Errorf("get products: %w", err)
	}

	productResponses := make([]response.ProductResponse, len(products))
	for i, product := range products {
		productResponses[i] = response.ProductToResponse(product)
	}

	return productResponses, nil
}

func (s *productService) GetProductByID(ctx context.Context, productID string) (*response.ProductResponse, error) {
	id, err := uuid.Parse(productID)
	if err != nil {
		return nil, fmt.Errorf("invalid product id: %w", err)
	}

	product, err := s.repo.Product.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get product by ID",
			zap.Error(err),
			zap.String("product_id", productID),
		)
		return nil, fmt.Errorf("get product by id: %w", err)
	}
	if product == nil {
		return nil, fmt.Errorf("product not found")
	}

	productResp := response.ProductToResponse(product)
	return &productResp, nil
}

func (s *productService) CreateProduct(ctx context.Context, userID string, req *request.CreateProductRequest) (*response.ProductResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create product validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	price, err := parsePrice(req.Price)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.User.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	isCountable := true
	if req.IsCountable != nil {
		isCountable = *req.IsCountable
	}

	product := entity.NewProduct(req.Name, price, isCountable, id)

	if err := s.repo.Product.Create(ctx, product); err != nil {
		s.log.Error("Failed to create product",
			zap.Error(err),
			zap.String("name", req.Name),
			zap.String("user_id", userID),
		)
		return nil, fmt.Errorf("create product: %w", err)
	}

	s.log.Info("Product created",
		zap.String("product_id", product.ID.String()),
		zap.String("name", product.Name),
		zap.String("user_id", userID),
	)

	productResp := response.ProductToResponse(product)
	return &productResp, nil
}

func (s *productService) UpdateProduct(ctx context.Context, productID string, req *request.UpdateProductRequest) (*response.ProductResponse, error) {
	id, err := uuid.Parse(productID)
	if err != nil {
		return nil, fmt.Errorf("invalid product id: %w", err)
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update product validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	price, err := parsePrice(req.Price)
	if err != nil {
		return nil, err
	}

	product, err := s.repo.Product.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find product: %w", err)
	}
	if product == nil {
		return nil, fmt.Errorf("product not found")
	}

	product.Name = req.Name
	product.Price = price
	product.IsCountable = req.IsCountable

	if err := s.repo.Product.Update(ctx, product); err != nil {
		s.log.Error("Failed to update product",
			zap.Error(err),
			zap.String("product_id", productID),
		)
		return nil, fmt.Errorf("update product: %w", err)
	}

	s.log.Info("Product updated", zap.String("product_id", productID))

	productResp := response.ProductToResponse(product)
	return &productResp, nil
}

func (s *productService) DeleteProduct(ctx context.Context, productID string) error {
	id, err := uuid.Parse(productID)
	if err != nil {
		return fmt.Errorf("invalid product id: %w", err)
	}

	product, err := s.repo.Product.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find product: %w", err)
	}
	if product == nil {
		return fmt.Errorf("product not found")
	}

	// Fails with ErrRestricted while any order line references the product.
	if err := s.repo.Product.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete product",
			zap.Error(err),
			zap.String("product_id", productID),
		)
		return fmt.Errorf("delete product: %w", err)
	}

	s.log.Info("Product deleted",
		zap.String("product_id", productID),
		zap.String("name", product.Name),
	)

	return nil
}
