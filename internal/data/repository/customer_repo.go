package repository

import (
	"context"
	"errors"
	"fmt"

	"order-management/internal/data/entity"
	"order-management/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type customerRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCustomerRepository(db database.PgxIface, log *zap.Logger) CustomerRepository {
	return &customerRepository{
		db:  db,
		log: log,
	}
}

func (cr *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	query := `
		INSERT INTO customers (id, name, inn, customer_type, user_id)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := cr.db.Exec(ctx, query,
		customer.ID,
		customer.Name,
		customer.INN,
		customer.Type,
		customer.UserID,
	)

	if err != nil {
		cr.log.Error("Failed to create customer",
			zap.Error(err),
			zap.String("inn", customer.INN),
			zap.String("user_id", customer.UserID.String()),
		)
		return fmt.Errorf("create customer %s: %w", customer.INN, constraintError(err))
	}

	return nil
}

func (cr *customerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	query := `
		SELECT id, name, inn, customer_type, user_id
		FROM customers
		WHERE id = $1
	`

	var customer entity.Customer
	err := cr.db.QueryRow(ctx, query, id).Scan(
		&customer.ID,
		&customer.Name,
		&customer.INN,
		&customer.Type,
		&customer.UserID,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		cr.log.Error("Failed to find customer by ID",
			zap.Error(err),
			zap.String("customer_id", id.String()),
		)
		return nil, fmt.Errorf("find customer by ID %s: %w", id.String(), err)
	}

	return &customer, nil
}

func (cr *customerRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Customer, error) {
	query := `
		SELECT id, name, inn, customer_type, user_id
		FROM customers
		WHERE user_id = $1
		ORDER BY name
	`

	rows, err := cr.db.Query(ctx, query, userID)
	if err != nil {
		cr.log.Error("Failed to get customers for user",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find customers for user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var customers []*entity.Customer
	for rows.Next() {
		var customer entity.Customer
		err := rows.Scan(
			&customer.ID,
			&customer.Name,
			&customer.INN,
			&customer.Type,
			&customer.UserID,
		)
		if err != nil {
			cr.log.Error("Failed to scan customer row", zap.Error(err))
			return nil, fmt.Errorf("scan customer row: %w", err)
		}
		customers = append(customers, &customer)
	}

	if err := rows.Err(); err != nil {
		cr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate customers rows: %w", err)
	}

	return customers, nil
}

func (cr *customerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	query := `
		UPDATE customers
		SET name = $2, inn = $3, customer_type = $4
		WHERE id = $1
	`

	result, err := cr.db.Exec(ctx, query,
		customer.ID,
		customer.Name,
		customer.INN,
		customer.Type,
	)

	if err != nil {
		cr.log.Error("Failed to update customer",
			zap.Error(err),
			zap.String("customer_id", customer.ID.String()),
		)
		return fmt.Errorf("update customer %s: %w", customer.ID.String(), constraintError(err))
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("customer %s not found", customer.ID.String())
	}

	return nil
}

// Delete cascades to the customer's orders (ON DELETE CASCADE), which in
// turn cascade to their line items.
func (cr *customerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM customers WHERE id = $1`

	result, err := cr.db.Exec(ctx, query, id)
	if err != nil {
		cr.log.Error("Failed to delete customer",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return fmt.Errorf("delete customer %s: %w", id.String(), constraintError(err))
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("customer %s not found", id.String())
	}

	cr.log.Info("Customer deleted", zap.String("id", id.String()))
	return nil
}
