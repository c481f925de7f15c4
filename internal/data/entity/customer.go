package entity

import "github.com/google/uuid"

type CustomerType string

const (
	CustomerLegalEntity CustomerType = "legal_entity"
	CustomerIndividual  CustomerType = "individual"
)

// Valid reports whether the type matches the CHECK constraint on customers.
func (t CustomerType) Valid() bool {
	return t == CustomerLegalEntity || t == CustomerIndividual
}

// Customer belongs to exactly one user. The same INN may recur under
// different sellers but (inn, user_id) is unique.
type Customer struct {
	ID     uuid.UUID    `db:"id"`
	Name   string       `db:"name"`
	INN    string       `db:"inn"`
	Type   CustomerType `db:"customer_type"`
	UserID uuid.UUID    `db:"user_id"`
}

func NewCustomer(name, inn string, customerType CustomerType, userID uuid.UUID) *Customer {
	return &Customer{
		ID:     uuid.New(),
		Name:   name,
		INN:    inn,
		Type:   customerType,
		UserID: userID,
	}
}
