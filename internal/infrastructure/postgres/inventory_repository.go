package postgres

import (
	"context"
	"fmt"

	"github.com/waterbiz/waterbiz-api/internal/domain"
	"github.com/waterbiz/waterbiz-api/internal/domain/entity"
	"github.com/waterbiz/waterbiz-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implements InventoryRepository.
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository builds the adapter.
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// List returns every inventory item, newest first.
func (r *InventoryRepo) List() ([]*entity.InventoryItem, error) {
	query := `
		SELECT product_id, product_name, quantity, purchase_price, sale_price, description, updated_by, product_type, product_make, created_at, updated_at
		FROM inventory ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryItem
	for rows.Next() {
		var it entity.InventoryItem
		if err := rows.Scan(
			&it.ID, &it.ProductName, &it.Quantity, &it.PurchasePrice, &it.SalePrice,
			&it.Description, &it.UpdatedBy, &it.ProductType, &it.ProductMake,
			&it.CreatedAt, &it.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan inventory item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// Create persists a new inventory item.
func (r *InventoryRepo) Create(item *entity.InventoryItem) error {
	query := `
		INSERT INTO inventory (product_id, product_name, quantity, purchase_price, sale_price, description, updated_by, product_type, product_make, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.ProductName, item.Quantity, item.PurchasePrice, item.SalePrice,
		item.Description, item.UpdatedBy, item.ProductType, item.ProductMake,
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert inventory item: %w", err)
	}
	return nil
}

// Update overwrites every writable field, including the quantity.
func (r *InventoryRepo) Update(item *entity.InventoryItem) error {
	query := `
		UPDATE inventory
		SET product_name = $2, quantity = $3, purchase_price = $4, sale_price = $5,
		    description = $6, updated_by = $7, product_type = $8, product_make = $9, updated_at = $10
		WHERE product_id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		item.ID, item.ProductName, item.Quantity, item.PurchasePrice, item.SalePrice,
		item.Description, item.UpdatedBy, item.ProductType, item.ProductMake, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update inventory item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes an inventory item. Ownership records that reference it are
// left behind on purpose; listings tolerate the dangling product_id.
func (r *InventoryRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM inventory WHERE product_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete inventory item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
