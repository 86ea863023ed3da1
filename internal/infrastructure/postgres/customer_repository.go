package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/waterbiz/waterbiz-api/internal/domain"
	"github.com/waterbiz/waterbiz-api/internal/domain/entity"
	"github.com/waterbiz/waterbiz-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implements CustomerRepository (usable with pool or tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository builds the adapter. Pass a pool or tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

const customerColumns = `customer_id, name, primary_mobile, secondary_mobile, address, map_location, created_at, updated_at`

// List returns every customer, newest first.
func (r *CustomerRepo) List() ([]*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := scanCustomer(rows, &c); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// GetByID fetches one customer, or domain.ErrNotFound.
func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE customer_id = $1`
	var c entity.Customer
	err := scanCustomer(r.q.QueryRow(context.Background(), query, id), &c)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

// Create persists a new customer.
func (r *CustomerRepo) Create(c *entity.Customer) error {
	query := `
		INSERT INTO customers (customer_id, name, primary_mobile, secondary_mobile, address, map_location, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Name, c.PrimaryMobile, c.SecondaryMobile, c.Address, c.MapLocation,
		c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// Update overwrites every writable field. The stored created_at is read back
// into the entity so callers can echo the full row.
func (r *CustomerRepo) Update(c *entity.Customer) error {
	query := `
		UPDATE customers
		SET name = $2, primary_mobile = $3, secondary_mobile = $4, address = $5, map_location = $6, updated_at = $7
		WHERE customer_id = $1
		RETURNING created_at`
	err := r.q.QueryRow(context.Background(), query,
		c.ID, c.Name, c.PrimaryMobile, c.SecondaryMobile, c.Address, c.MapLocation, c.UpdatedAt,
	).Scan(&c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

// Delete removes a customer and returns the deleted row, or
// domain.ErrNotFound when the id matched nothing.
func (r *CustomerRepo) Delete(id string) (*entity.Customer, error) {
	query := `DELETE FROM customers WHERE customer_id = $1 RETURNING ` + customerColumns
	var c entity.Customer
	err := scanCustomer(r.q.QueryRow(context.Background(), query, id), &c)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("delete customer: %w", err)
	}
	return &c, nil
}

func scanCustomer(row pgx.Row, c *entity.Customer) error {
	return row.Scan(
		&c.ID, &c.Name, &c.PrimaryMobile, &c.SecondaryMobile, &c.Address, &c.MapLocation,
		&c.CreatedAt, &c.UpdatedAt,
	)
}
