package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/waterbiz/waterbiz-api/internal/domain"
	"github.com/waterbiz/waterbiz-api/internal/domain/entity"
	"github.com/waterbiz/waterbiz-api/internal/domain/repository"
)

var _ repository.CustomerProductRepository = (*CustomerProductRepo)(nil)

// CustomerProductRepo implements CustomerProductRepository.
//
// Listings LEFT JOIN inventory so an ownership record survives deletion of
// the product it points at (product_name comes back NULL).
type CustomerProductRepo struct {
	q Querier
}

// NewCustomerProductRepository builds the adapter.
func NewCustomerProductRepository(q Querier) *CustomerProductRepo {
	return &CustomerProductRepo{q: q}
}

// List returns every ownership record joined with the customer and product
// names, most recently updated first.
func (r *CustomerProductRepo) List() ([]*entity.CustomerProductListing, error) {
	query := `
		SELECT cp.ownership_id, cp.customer_id, cp.product_id, cp.serial_number,
		       cp.installation_date, cp.last_service_date, cp.next_service_date, cp.remarks,
		       cp.created_at, cp.updated_at,
		       c.name AS customer_name, i.product_name
		FROM customer_products cp
		JOIN customers c ON cp.customer_id = c.customer_id
		LEFT JOIN inventory i ON cp.product_id = i.product_id
		ORDER BY cp.updated_at DESC`
	return r.queryListings(query)
}

// ListByCustomer returns one customer's ownership records, most recently
// updated first. The customer name is already known to the caller, so only
// the product name is joined.
func (r *CustomerProductRepo) ListByCustomer(customerID string) ([]*entity.CustomerProductListing, error) {
	query := `
		SELECT cp.ownership_id, cp.customer_id, cp.product_id, cp.serial_number,
		       cp.installation_date, cp.last_service_date, cp.next_service_date, cp.remarks,
		       cp.created_at, cp.updated_at,
		       '' AS customer_name, i.product_name
		FROM customer_products cp
		LEFT JOIN inventory i ON cp.product_id = i.product_id
		WHERE cp.customer_id = $1
		ORDER BY cp.updated_at DESC`
	return r.queryListings(query, customerID)
}

func (r *CustomerProductRepo) queryListings(query string, args ...any) ([]*entity.CustomerProductListing, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list customer products: %w", err)
	}
	defer rows.Close()
	var list []*entity.CustomerProductListing
	for rows.Next() {
		var l entity.CustomerProductListing
		if err := rows.Scan(
			&l.ID, &l.CustomerID, &l.ProductID, &l.SerialNumber,
			&l.InstallationDate, &l.LastServiceDate, &l.NextServiceDate, &l.Remarks,
			&l.CreatedAt, &l.UpdatedAt,
			&l.CustomerName, &l.ProductName,
		); err != nil {
			return nil, fmt.Errorf("scan customer product: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// Create persists a new ownership record.
func (r *CustomerProductRepo) Create(cp *entity.CustomerProduct) error {
	query := `
		INSERT INTO customer_products (ownership_id, customer_id, product_id, serial_number, installation_date, last_service_date, next_service_date, remarks, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		cp.ID, cp.CustomerID, cp.ProductID, cp.SerialNumber, cp.InstallationDate,
		cp.LastServiceDate, cp.NextServiceDate, cp.Remarks, cp.CreatedAt, cp.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert customer product: %w", err)
	}
	return nil
}

// Update overwrites every writable field except the owning customer, which
// never changes after installation.
func (r *CustomerProductRepo) Update(cp *entity.CustomerProduct) error {
	query := `
		UPDATE customer_products
		SET product_id = $2, serial_number = $3, installation_date = $4,
		    last_service_date = $5, next_service_date = $6, remarks = $7, updated_at = $8
		WHERE ownership_id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		cp.ID, cp.ProductID, cp.SerialNumber, cp.InstallationDate,
		cp.LastServiceDate, cp.NextServiceDate, cp.Remarks, cp.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update customer product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes an ownership record.
func (r *CustomerProductRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM customer_products WHERE ownership_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete customer product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// MarkServiced stores the rolled-over service dates.
func (r *CustomerProductRepo) MarkServiced(id string, lastService, nextService, updatedAt time.Time) error {
	query := `
		UPDATE customer_products
		SET last_service_date = $2, next_service_date = $3, updated_at = $4
		WHERE ownership_id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, lastService, nextService, updatedAt)
	if err != nil {
		return fmt.Errorf("mark customer product serviced: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
