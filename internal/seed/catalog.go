package seed

import (
	"fmt"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CustomerPlan is one synthetic customer row for an existing seller.
type CustomerPlan struct {
	ID     uuid.UUID
	Name   string
	INN    string
	Type   string
	UserID uuid.UUID
}

// ProductPlan is one synthetic product row for an existing seller.
type ProductPlan struct {
	ID          uuid.UUID
	Name        string
	Price       decimal.Decimal
	IsCountable bool
	UserID      uuid.UUID
}

// Customers generates 1-3 customers per seller. INNs are unique within each
// seller, matching the (inn, user_id) constraint; the same INN may still
// appear under two different sellers.
func Customers(userIDs []uuid.UUID) []CustomerPlan {
	var plans []CustomerPlan
	for _, userID := range userIDs {
		usedINNs := make(map[string]bool)

		count := gofakeit.Number(1, 3)
		for i := 0; i < count; i++ {
			var inn string
			for {
				inn = INN()
				if !usedINNs[inn] {
					usedINNs[inn] = true
					break
				}
			}

			customerType := "individual"
			name := customerName(customerType)
			if gofakeit.Bool() {
				customerType = "legal_entity"
				name = customerName(customerType)
			}

			plans = append(plans, CustomerPlan{
				ID:     uuid.New(),
				Name:   name,
				INN:    inn,
				Type:   customerType,
				UserID: userID,
			})
		}
	}

	return plans
}

func customerName(customerType string) string {
	if customerType == "legal_entity" {
		return fmt.Sprintf("ООО «%s»", gofakeit.Company())
	}
	surname, name := FullName()
	return fmt.Sprintf("%s %s", surname, name)
}

// Products generates 1-5 products per seller. Prices are whole hundreds
// between 100 and 100000; roughly 80% are countable goods.
func Products(userIDs []uuid.UUID) []ProductPlan {
	var plans []ProductPlan
	for _, userID := range userIDs {
		count := gofakeit.Number(1, 5)
		for i := 0; i < count; i++ {
			price := decimal.NewFromInt(int64(gofakeit.Number(1, 1000) * 100))

			plans = append(plans, ProductPlan{
				ID:          uuid.New(),
				Name:        gofakeit.ProductName(),
				Price:       price,
				IsCountable: gofakeit.Float32() > 0.2,
				UserID:      userID,
			})
		}
	}

	return plans
}
