package response

import (
	"time"

	"order-management/internal/data/entity"
)

type OrderResponse struct {
	ID         string              `json:"id"`
	Number     int                 `json:"number"`
	CreatedAt  time.Time           `json:"created_at"`
	CustomerID string              `json:"customer_id"`
	UserID     string              `json:"user_id"`
	Items      []OrderItemResponse `json:"items,omitempty"`
}

type OrderItemResponse struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Price     string `json:"price"`
}

func OrderToResponse(order *entity.Order) OrderResponse {
	resp := OrderResponse{
		ID:         order.ID.String(),
		Number:     order.Number,
		CreatedAt:  order.CreatedAt,
		CustomerID: order.CustomerID.String(),
		UserID:     order.UserID.String(),
	}

	for _, item := range order.Items {
		resp.Items = append(resp.Items, OrderItemResponse{
			ID:        item.ID.String(),
			ProductID: item.ProductID.String(),
			Quantity:  item.Quantity,
			Price:     item.Price.StringFixed(2),
		})
	}

	return resp
}
