package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product belongs to exactly one user and is deleted with them.
// IsCountable distinguishes goods sold in discrete units from bulk goods.
type Product struct {
	ID          uuid.UUID       `db:"id"`
	Name        string          `db:"name"`
	Price       decimal.Decimal `db:"price"`
	IsCountable bool            `db:"is_countable"`
	UserID      uuid.UUID       `db:"user_id"`
}

func NewProduct(name string, price decimal.Decimal, isCountable bool, userID uuid.UUID) *Product {
	return &Product{
		ID:          uuid.New(),
		Name:        name,
		Price:       price,
		IsCountable: isCountable,
		UserID:      userID,
	}
}
