package seed

import (
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductRef is an existing product row as read from the database.
type ProductRef struct {
	ID    uuid.UUID
	Price decimal.Decimal
}

// OrderInput carries the existing rows an order plan is built from.
type OrderInput struct {
	UserIDs         []uuid.UUID
	CustomersByUser map[uuid.UUID][]uuid.UUID
	ProductsByUser  map[uuid.UUID][]ProductRef
	// MaxNumberByUser holds the current highest order number per seller so
	// new numbers continue above it.
	MaxNumberByUser map[uuid.UUID]int
}

// OrderPlan is one synthetic order with its line items.
type OrderPlan struct {
	ID         uuid.UUID
	Number     int
	CreatedAt  time.Time
	CustomerID uuid.UUID
	UserID     uuid.UUID
	Lines      []OrderLinePlan
}

// OrderLinePlan is one synthetic line item.
type OrderLinePlan struct {
	ID        uuid.UUID
	Quantity  int
	Price     decimal.Decimal
	ProductID uuid.UUID
}

var hundred = decimal.NewFromInt(100)

// Orders builds n synthetic orders over users that own at least one customer
// and one product. Numbers per seller start above the existing maximum and
// increase strictly by one. Returns an empty plan when no user qualifies.
func Orders(in OrderInput, n int, now time.Time) []OrderPlan {
	var validUsers []uuid.UUID
	for _, userID := range in.UserIDs {
		if len(in.CustomersByUser[userID]) > 0 && len(in.ProductsByUser[userID]) > 0 {
			validUsers = append(validUsers, userID)
		}
	}
	if len(validUsers) == 0 {
		return nil
	}

	nextNumber := make(map[uuid.UUID]int, len(validUsers))
	for _, userID := range validUsers {
		nextNumber[userID] = in.MaxNumberByUser[userID] + 1
	}

	baseDate := now.AddDate(-1, 0, 0)

	plans := make([]OrderPlan, 0, n)
	for i := 0; i < n; i++ {
		userID := validUsers[gofakeit.Number(0, len(validUsers)-1)]

		customers := in.CustomersByUser[userID]
		customerID := customers[gofakeit.Number(0, len(customers)-1)]

		number := nextNumber[userID]
		nextNumber[userID]++

		// Random business-hours moment within the last year.
		createdAt := baseDate.AddDate(0, 0, gofakeit.Number(0, 364)).
			Add(time.Duration(gofakeit.Number(8, 20)) * time.Hour).
			Add(time.Duration(gofakeit.Number(0, 59)) * time.Minute)

		plans = append(plans, OrderPlan{
			ID:         uuid.New(),
			Number:     number,
			CreatedAt:  createdAt,
			CustomerID: customerID,
			UserID:     userID,
			Lines:      orderLines(in.ProductsByUser[userID]),
		})
	}

	return plans
}

// orderLines attaches 1-5 distinct products with quantity 1-10 and a price
// snapshot perturbed ±10% from the current product price, rounded to the
// nearest hundred with a floor of 100.
func orderLines(products []ProductRef) []OrderLinePlan {
	count := gofakeit.Number(1, 5)
	if count > len(products) {
		count = len(products)
	}

	shuffled := asAny(products)
	gofakeit.ShuffleAnySlice(shuffled)
	picked := shuffled[:count]

	lines := make([]OrderLinePlan, 0, count)
	for _, p := range picked {
		product := p.(ProductRef)

		lines = append(lines, OrderLinePlan{
			ID:        uuid.New(),
			Quantity:  gofakeit.Number(1, 10),
			Price:     LinePrice(product.Price),
			ProductID: product.ID,
		})
	}

	return lines
}

// LinePrice perturbs the product price by ±10%, rounds to the nearest
// hundred and never drops below 100.
func LinePrice(productPrice decimal.Decimal) decimal.Decimal {
	modifier := decimal.NewFromFloat(gofakeit.Float64Range(0.9, 1.1))

	price := productPrice.Mul(modifier).Div(hundred).Round(0).Mul(hundred)
	if price.LessThan(hundred) {
		price = hundred
	}

	return price
}

func asAny(products []ProductRef) []any {
	out := make([]any, len(products))
	for i, p := range products {
		out[i] = p
	}
	return out
}
