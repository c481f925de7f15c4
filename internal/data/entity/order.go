package entity

import (
	"time"

	"github.com/google/uuid"
)

// Order numbering is scoped per seller: (number, user_id) is unique and
// numbers are allocated as max-existing+1 for that user when the row is
// inserted. Number stays zero until then.
type Order struct {
	ID         uuid.UUID `db:"id"`
	Number     int       `db:"number"`
	CreatedAt  time.Time `db:"created_at"`
	CustomerID uuid.UUID `db:"customer_id"`
	UserID     uuid.UUID `db:"user_id"`

	// Items are loaded on demand, not scanned with the order row.
	Items []*OrderProduct
}

func NewOrder(customerID, userID uuid.UUID) *Order {
	return &Order{
		ID:         uuid.New(),
		CreatedAt:  time.Now().UTC(),
		CustomerID: customerID,
		UserID:     userID,
	}
}
