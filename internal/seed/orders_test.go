package seed

import (
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderInputFixture() (OrderInput, uuid.UUID, uuid.UUID) {
	userA := uuid.New()
	userB := uuid.New()

	in := OrderInput{
		UserIDs: []uuid.UUID{userA, userB},
		CustomersByUser: map[uuid.UUID][]uuid.UUID{
			userA: {uuid.New(), uuid.New()},
			userB: {uuid.New()},
		},
		ProductsByUser: map[uuid.UUID][]ProductRef{
			userA: {
				{ID: uuid.New(), Price: decimal.NewFromInt(500)},
				{ID: uuid.New(), Price: decimal.NewFromInt(1200)},
				{ID: uuid.New(), Price: decimal.NewFromInt(300)},
			},
			userB: {
				{ID: uuid.New(), Price: decimal.NewFromInt(900)},
			},
		},
		MaxNumberByUser: map[uuid.UUID]int{
			userA: 7,
		},
	}

	return in, userA, userB
}

func TestOrders(t *testing.T) {
	gofakeit.Seed(42)

	in, userA, userB := orderInputFixture()
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	plans := Orders(in, 60, now)
	require.Len(t, plans, 60)

	lastNumber := map[uuid.UUID]int{
		userA: 7,
		userB: 0,
	}

	ownedProducts := make(map[uuid.UUID]map[uuid.UUID]bool)
	for userID, products := range in.ProductsByUser {
		ownedProducts[userID] = make(map[uuid.UUID]bool)
		for _, p := range products {
			ownedProducts[userID][p.ID] = true
		}
	}
	ownedCustomers := make(map[uuid.UUID]map[uuid.UUID]bool)
	for userID, customers := range in.CustomersByUser {
		ownedCustomers[userID] = make(map[uuid.UUID]bool)
		for _, c := range customers {
			ownedCustomers[userID][c] = true
		}
	}

	for _, plan := range plans {
		// Numbers per seller continue above the existing maximum, one at a time.
		require.Equal(t, lastNumber[plan.UserID]+1, plan.Number)
		lastNumber[plan.UserID] = plan.Number

		assert.True(t, ownedCustomers[plan.UserID][plan.CustomerID],
			"customer not owned by order's user")

		assert.True(t, plan.CreatedAt.After(now.AddDate(-1, 0, -1)))
		assert.True(t, plan.CreatedAt.Before(now.AddDate(0, 0, 1)))

		require.GreaterOrEqual(t, len(plan.Lines), 1)
		assert.LessOrEqual(t, len(plan.Lines), 5)

		seen := make(map[uuid.UUID]bool)
		for _, line := range plan.Lines {
			assert.True(t, ownedProducts[plan.UserID][line.ProductID],
				"product not owned by order's user")
			assert.False(t, seen[line.ProductID], "duplicate product in order")
			seen[line.ProductID] = true

			assert.GreaterOrEqual(t, line.Quantity, 1)
			assert.LessOrEqual(t, line.Quantity, 10)

			assert.True(t, line.Price.GreaterThanOrEqual(decimal.NewFromInt(100)))
			assert.True(t, line.Price.Mod(decimal.NewFromInt(100)).IsZero(),
				"line price %s not a whole hundred", line.Price)
		}
	}
}

func TestOrdersNoQualifiedUsers(t *testing.T) {
	userID := uuid.New()

	// A user with customers but no products does not qualify.
	in := OrderInput{
		UserIDs: []uuid.UUID{userID},
		CustomersByUser: map[uuid.UUID][]uuid.UUID{
			userID: {uuid.New()},
		},
		ProductsByUser:  map[uuid.UUID][]ProductRef{},
		MaxNumberByUser: map[uuid.UUID]int{},
	}

	assert.Nil(t, Orders(in, 10, time.Now()))
}

func TestOrdersSkipsUnqualifiedUsers(t *testing.T) {
	gofakeit.Seed(42)

	qualified := uuid.New()
	bare := uuid.New()

	in := OrderInput{
		UserIDs: []uuid.UUID{qualified, bare},
		CustomersByUser: map[uuid.UUID][]uuid.UUID{
			qualified: {uuid.New()},
		},
		ProductsByUser: map[uuid.UUID][]ProductRef{
			qualified: {{ID: uuid.New(), Price: decimal.NewFromInt(400)}},
		},
		MaxNumberByUser: map[uuid.UUID]int{},
	}

	plans := Orders(in, 20, time.Now())
	require.Len(t, plans, 20)

	for _, plan := range plans {
		assert.Equal(t, qualified, plan.UserID)
	}
}

func TestLinePrice(t *testing.T) {
	gofakeit.Seed(42)

	hundredD := decimal.NewFromInt(100)

	for i := 0; i < 200; i++ {
		price := LinePrice(decimal.NewFromInt(1000))

		assert.True(t, price.GreaterThanOrEqual(hundredD))
		assert.True(t, price.Mod(hundredD).IsZero())
		// ±10% of 1000 rounded to hundreds stays within [800, 1200].
		assert.True(t, price.GreaterThanOrEqual(decimal.NewFromInt(800)))
		assert.True(t, price.LessThanOrEqual(decimal.NewFromInt(1200)))
	}
}

func TestLinePriceFloor(t *testing.T) {
	gofakeit.Seed(42)

	for i := 0; i < 50; i++ {
		price := LinePrice(decimal.NewFromInt(10))
		assert.True(t, price.Equal(decimal.NewFromInt(100)),
			"tiny price must round up to the 100 floor, got %s", price)
	}
}
