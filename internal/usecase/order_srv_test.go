package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"order-management/internal/data/entity"
	"order-management/internal/data/repository"
	"order-management/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orderFixture struct {
	svc        *Service
	userID     string
	customerID string
	productID  string
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()

	svc := newTestService(newFakeRepository())
	userID := createUserFixture(t, svc, "+79161234567", "123456789012")

	customer, err := svc.Customer.CreateCustomer(context.Background(), userID, &request.CreateCustomerRequest{
		Name: "Иванов Петр",
		INN:  "500100732259",
		Type: "individual",
	})
	require.NoError(t, err)

	product, err := svc.Product.CreateProduct(context.Background(), userID, &request.CreateProductRequest{
		Name:  "Доска обрезная",
		Price: "1500.00",
	})
	require.NoError(t, err)

	return &orderFixture{
		svc:        svc,
		userID:     userID,
		customerID: customer.ID,
		productID:  product.ID,
	}
}

func TestCreateOrder(t *testing.T) {
	f := newOrderFixture(t)

	order, err := f.svc.Order.CreateOrder(context.Background(), f.userID, &request.CreateOrderRequest{
		CustomerID: f.customerID,
		Items: []request.OrderItemRequest{
			{ProductID: f.productID, Quantity: 3},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, order.Number)
	assert.Equal(t, f.customerID, order.CustomerID)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 3, order.Items[0].Quantity)
	// Line price snapshots the product's current price.
	assert.Equal(t, "1500.00", order.Items[0].Price)
}

func TestCreateOrderNumbersIncrement(t *testing.T) {
	f := newOrderFixture(t)

	req := &request.CreateOrderRequest{
		CustomerID: f.customerID,
		Items: []request.OrderItemRequest{
			{ProductID: f.productID, Quantity: 1},
		},
	}

	for want := 1; want <= 3; want++ {
		order, err := f.svc.Order.CreateOrder(context.Background(), f.userID, req)
		require.NoError(t, err)
		assert.Equal(t, want, order.Number)
	}
}

func TestCreateOrderConcurrentAllocation(t *testing.T) {
	f := newOrderFixture(t)

	req := &request.CreateOrderRequest{
		CustomerID: f.customerID,
		Items: []request.OrderItemRequest{
			{ProductID: f.productID, Quantity: 1},
		},
	}

	const workers = 8
	numbers := make(chan int, workers)
	errs := make(chan error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			order, err := f.svc.Order.CreateOrder(context.Background(), f.userID, req)
			if err != nil {
				errs <- err
				return
			}
			numbers <- order.Number
		}()
	}
	wg.Wait()
	close(numbers)
	close(errs)

	// Every create must succeed: numbers are allocated inside the insert,
	// so simultaneous orders for one seller cannot collide on a stale maximum.
	for err := range errs {
		t.Errorf("concurrent create failed: %v", err)
	}

	seen := make(map[int]bool, workers)
	for number := range numbers {
		seen[number] = true
	}
	require.Len(t, seen, workers)
	for want := 1; want <= workers; want++ {
		assert.True(t, seen[want], "order number %d was never allocated", want)
	}
}

func TestCreateOrderPriceOverride(t *testing.T) {
	f := newOrderFixture(t)

	override := "1200.00"
	order, err := f.svc.Order.CreateOrder(context.Background(), f.userID, &request.CreateOrderRequest{
		CustomerID: f.customerID,
		Items: []request.OrderItemRequest{
			{ProductID: f.productID, Quantity: 2, Price: &override},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "1200.00", order.Items[0].Price)
}

func TestCreateOrderDuplicateProduct(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.svc.Order.CreateOrder(context.Background(), f.userID, &request.CreateOrderRequest{
		CustomerID: f.customerID,
		Items: []request.OrderItemRequest{
			{ProductID: f.productID, Quantity: 1},
			{ProductID: f.productID, Quantity: 2},
		},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate product")
}

func TestCreateOrderForeignCustomer(t *testing.T) {
	f := newOrderFixture(t)

	otherID := createUserFixture(t, f.svc, "+79160000001", "100000000001")
	otherCustomer, err := f.svc.Customer.CreateCustomer(context.Background(), otherID, &request.CreateCustomerRequest{
		Name: "ООО «Ромашка»",
		INN:  "7707083893",
		Type: "legal_entity",
	})
	require.NoError(t, err)

	_, err = f.svc.Order.CreateOrder(context.Background(), f.userID, &request.CreateOrderRequest{
		CustomerID: otherCustomer.ID,
		Items: []request.OrderItemRequest{
			{ProductID: f.productID, Quantity: 1},
		},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "belongs to another user")
}

func TestCreateOrderForeignProduct(t *testing.T) {
	f := newOrderFixture(t)

	otherID := createUserFixture(t, f.svc, "+79160000001", "100000000001")
	otherProduct, err := f.svc.Product.CreateProduct(context.Background(), otherID, &request.CreateProductRequest{
		Name:  "Кирпич",
		Price: "25.50",
	})
	require.NoError(t, err)

	_, err = f.svc.Order.CreateOrder(context.Background(), f.userID, &request.CreateOrderRequest{
		CustomerID: f.customerID,
		Items: []request.OrderItemRequest{
			{ProductID: otherProduct.ID, Quantity: 1},
		},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "belongs to another user")
}

func TestCreateOrderEmptyItems(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.svc.Order.CreateOrder(context.Background(), f.userID, &request.CreateOrderRequest{
		CustomerID: f.customerID,
		Items:      nil,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestGetOrderByIDWithItems(t *testing.T) {
	f := newOrderFixture(t)

	created, err := f.svc.Order.CreateOrder(context.Background(), f.userID, &request.CreateOrderRequest{
		CustomerID: f.customerID,
		Items: []request.OrderItemRequest{
			{ProductID: f.productID, Quantity: 5},
		},
	})
	require.NoError(t, err)

	order, err := f.svc.Order.GetOrderByID(context.Background(), created.ID)
	require.NoError(t, err)
	require.Len(t, order.Items, 1)
	assert.Equal(t, f.productID, order.Items[0].ProductID)
}

func TestGetUserOrders(t *testing.T) {
	f := newOrderFixture(t)

	req := &request.CreateOrderRequest{
		CustomerID: f.customerID,
		Items: []request.OrderItemRequest{
			{ProductID: f.productID, Quantity: 1},
		},
	}
	for i := 0; i < 3; i++ {
		_, err := f.svc.Order.CreateOrder(context.Background(), f.userID, req)
		require.NoError(t, err)
	}

	page, err := f.svc.Order.GetUserOrders(context.Background(), f.userID, &request.PaginatedRequest{Page: 1, PerPage: 2})
	require.NoError(t, err)

	assert.Len(t, page.Data, 2)
	assert.Equal(t, int64(3), page.Pagination.Total)
	// Newest first.
	assert.Equal(t, 3, page.Data[0].Number)
}

// failingItemsOrderRepo delegates everything except FindItems, which always
// errors, so list and detail paths can be checked against storage failures.
type failingItemsOrderRepo struct {
	repository.OrderRepository
}

func (f *failingItemsOrderRepo) FindItems(context.Context, uuid.UUID) ([]*entity.OrderProduct, error) {
	return nil, errors.New("connection reset")
}

func TestGetUserOrdersItemsFailure(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(repo)
	userID := createUserFixture(t, svc, "+79161234567", "123456789012")

	customer, err := svc.Customer.CreateCustomer(context.Background(), userID, &request.CreateCustomerRequest{
		Name: "Иванов Петр",
		INN:  "500100732259",
		Type: "individual",
	})
	require.NoError(t, err)

	product, err := svc.Product.CreateProduct(context.Background(), userID, &request.CreateProductRequest{
		Name:  "Доска обрезная",
		Price: "1500.00",
	})
	require.NoError(t, err)

	_, err = svc.Order.CreateOrder(context.Background(), userID, &request.CreateOrderRequest{
		CustomerID: customer.ID,
		Items: []request.OrderItemRequest{
			{ProductID: product.ID, Quantity: 1},
		},
	})
	require.NoError(t, err)

	repo.Order = &failingItemsOrderRepo{OrderRepository: repo.Order}

	// The list path must surface a line-load failure the same way the
	// detail path does, not hand back orders with missing items.
	_, err = svc.Order.GetUserOrders(context.Background(), userID, &request.PaginatedRequest{Page: 1, PerPage: 10})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "get order lines")
}

func TestDeleteOrder(t *testing.T) {
	f := newOrderFixture(t)

	created, err := f.svc.Order.CreateOrder(context.Background(), f.userID, &request.CreateOrderRequest{
		CustomerID: f.customerID,
		Items: []request.OrderItemRequest{
			{ProductID: f.productID, Quantity: 1},
		},
	})
	require.NoError(t, err)

	require.NoError(t, f.svc.Order.DeleteOrder(context.Background(), created.ID))

	_, err = f.svc.Order.GetOrderByID(context.Background(), created.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
