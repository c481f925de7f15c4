package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"order-management/internal/data/entity"
	"order-management/internal/data/repository"

	"github.com/google/uuid"
)

// In-memory repository fakes. Each mirrors the constraint behavior of the
// real storage layer closely enough for service tests.

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	for _, existing := range f.users {
		if existing.PhoneNumber == user.PhoneNumber || existing.INN == user.INN {
			return fmt.Errorf("create user: %w", repository.ErrDuplicate)
		}
	}
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	clone := *user
	return &clone, nil
}

func (f *fakeUserRepo) FindByPhone(_ context.Context, phoneNumber string) (*entity.User, error) {
	for _, user := range f.users {
		if user.PhoneNumber == phoneNumber {
			clone := *user
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.User, error) {
	var all []*entity.User
	for _, user := range f.users {
		clone := *user
		all = append(all, &clone)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Surname < all[j].Surname })

	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (f *fakeUserRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(f.users)), nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return fmt.Errorf("user %s not found", user.ID.String())
	}
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.users[id]; !ok {
		return fmt.Errorf("user %s not found", id.String())
	}
	delete(f.users, id)
	return nil
}

type fakeProductRepo struct {
	products map[uuid.UUID]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[uuid.UUID]*entity.Product)}
}

func (f *fakeProductRepo) Create(_ context.Context, product *entity.Product) error {
	clone := *product
	f.products[product.ID] = &clone
	return nil
}

func (f *fakeProductRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	product, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	clone := *product
	return &clone, nil
}

func (f *fakeProductRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, product := range f.products {
		if product.UserID == userID {
			clone := *product
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) Update(_ context.Context, product *entity.Product) error {
	if _, ok := f.products[product.ID]; !ok {
		return fmt.Errorf("product %s not found", product.ID.String())
	}
	clone := *product
	f.products[product.ID] = &clone
	return nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.products[id]; !ok {
		return fmt.Errorf("product %s not found", id.String())
	}
	delete(f.products, id)
	return nil
}

type fakeCustomerRepo struct {
	customers map[uuid.UUID]*entity.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[uuid.UUID]*entity.Customer)}
}

func (f *fakeCustomerRepo) Create(_ context.Context, customer *entity.Customer) error {
	for _, existing := range f.customers {
		if existing.INN == customer.INN && existing.UserID == customer.UserID {
			return fmt.Errorf("create customer: %w", repository.ErrDuplicate)
		}
	}
	clone := *customer
	f.customers[customer.ID] = &clone
	return nil
}

func (f *fakeCustomerRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, ok := f.customers[id]
	if !ok {
		return nil, nil
	}
	clone := *customer
	return &clone, nil
}

func (f *fakeCustomerRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Customer, error) {
	var out []*entity.Customer
	for _, customer := range f.customers {
		if customer.UserID == userID {
			clone := *customer
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (f *fakeCustomerRepo) Update(_ context.Context, customer *entity.Customer) error {
	if _, ok := f.customers[customer.ID]; !ok {
		return fmt.Errorf("customer %s not found", customer.ID.String())
	}
	clone := *customer
	f.customers[customer.ID] = &clone
	return nil
}

func (f *fakeCustomerRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.customers[id]; !ok {
		return fmt.Errorf("customer %s not found", id.String())
	}
	delete(f.customers, id)
	return nil
}

type fakeOrderRepo struct {
	mu     sync.Mutex
	orders map[uuid.UUID]*entity.Order
	items  map[uuid.UUID][]*entity.OrderProduct
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		orders: make(map[uuid.UUID]*entity.Order),
		items:  make(map[uuid.UUID][]*entity.OrderProduct),
	}
}

// CreateWithItems allocates the per-seller number under the same lock as the
// insert, mirroring the in-transaction allocation of the real repository.
func (f *fakeOrderRepo) CreateWithItems(_ context.Context, order *entity.Order) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	max := 0
	for _, existing := range f.orders {
		if existing.UserID == order.UserID && existing.Number > max {
			max = existing.Number
		}
	}
	order.Number = max + 1

	clone := *order
	clone.Items = nil
	f.orders[order.ID] = &clone
	for _, item := range order.Items {
		itemClone := *item
		f.items[order.ID] = append(f.items[order.ID], &itemClone)
	}
	return nil
}

func (f *fakeOrderRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Order, error) {
	order, ok := f.orders[id]
	if !ok {
		return nil, nil
	}
	clone := *order
	return &clone, nil
}

func (f *fakeOrderRepo) FindByUser(_ context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, order := range f.orders {
		if order.UserID == userID {
			clone := *order
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number > out[j].Number })

	if offset >= len(out) {
		return nil, nil
	}
	end := offset + limit
	if end > len(out) {
		end = len(out)
	}
	return out[offset:end], nil
}

func (f *fakeOrderRepo) CountByUser(_ context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	for _, order := range f.orders {
		if order.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (f *fakeOrderRepo) FindItems(_ context.Context, orderID uuid.UUID) ([]*entity.OrderProduct, error) {
	return f.items[orderID], nil
}

func (f *fakeOrderRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.orders[id]; !ok {
		return fmt.Errorf("order %s not found", id.String())
	}
	delete(f.orders, id)
	delete(f.items, id)
	return nil
}

type fakeOTPRepo struct {
	otps map[uuid.UUID]*entity.OneTimePassword
}

func newFakeOTPRepo() *fakeOTPRepo {
	return &fakeOTPRepo{otps: make(map[uuid.UUID]*entity.OneTimePassword)}
}

func (f *fakeOTPRepo) Create(_ context.Context, otp *entity.OneTimePassword) error {
	clone := *otp
	f.otps[otp.ID] = &clone
	return nil
}

func (f *fakeOTPRepo) FindLatestUnused(_ context.Context, phoneNumber string, code int, notBefore time.Time) (*entity.OneTimePassword, error) {
	var latest *entity.OneTimePassword
	for _, otp := range f.otps {
		if otp.PhoneNumber != phoneNumber || otp.Code != code || otp.IsUsed {
			continue
		}
		if otp.CreatedAt.Before(notBefore) {
			continue
		}
		if latest == nil || otp.CreatedAt.After(latest.CreatedAt) {
			latest = otp
		}
	}
	if latest == nil {
		return nil, nil
	}
	clone := *latest
	return &clone, nil
}

func (f *fakeOTPRepo) FindByPhone(_ context.Context, phoneNumber string) ([]*entity.OneTimePassword, error) {
	var out []*entity.OneTimePassword
	for _, otp := range f.otps {
		if otp.PhoneNumber == phoneNumber {
			clone := *otp
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (f *fakeOTPRepo) MarkAsUsed(_ context.Context, id uuid.UUID) error {
	otp, ok := f.otps[id]
	if !ok {
		return fmt.Errorf("OTP %s not found", id.String())
	}
	otp.IsUsed = true
	return nil
}

// newFakeRepository wires all fakes into the aggregate the services expect.
func newFakeRepository() *repository.Repository {
	return &repository.Repository{
		User:     newFakeUserRepo(),
		Product:  newFakeProductRepo(),
		Customer: newFakeCustomerRepo(),
		Order:    newFakeOrderRepo(),
		OTP:      newFakeOTPRepo(),
	}
}
