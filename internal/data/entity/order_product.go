package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderProduct is a line item. Price is a snapshot taken when the order is
// placed and does not follow later product price changes.
type OrderProduct struct {
	ID        uuid.UUID       `db:"id"`
	Quantity  int             `db:"quantity"`
	Price     decimal.Decimal `db:"price"`
	OrderID   uuid.UUID       `db:"order_id"`
	ProductID uuid.UUID       `db:"product_id"`
}

func NewOrderProduct(orderID, productID uuid.UUID, quantity int, price decimal.Decimal) *OrderProduct {
	return &OrderProduct{
		ID:        uuid.New(),
		Quantity:  quantity,
		Price:     price,
		OrderID:   orderID,
		ProductID: productID,
	}
}
