package response

import (
	"order-management/internal/data/entity"
)

type ProductResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price       string `json:"price"`
	IsCountable bool   `json:"is_countable"`
	UserID      string `json:"user_id"`
}

func ProductToResponse(product *entity.Product) ProductResponse {
	return ProductResponse{
		ID:          product.ID.String(),
		Name:        product.Name,
		Price:       product.Price.StringFixed(2),
		IsCountable: product.IsCountable,
		UserID:      product.UserID.String(),
	}
}
