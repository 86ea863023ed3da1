package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItemRequest create/update payload. Type and make are closed
// vendor lists from the order forms.
type InventoryItemRequest struct {
	ProductName   string          `json:"product_name" validate:"required"`
	Quantity      int             `json:"quantity" validate:"gte=0"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	Description   string          `json:"description"`
	UpdatedBy     string          `json:"updated_by"`
	ProductType   string          `json:"product_type" validate:"required,oneof=Machine Spare Others"`
	ProductMake   string          `json:"product_make" validate:"required,oneof=Kent 'Aqua Squard' Aquafina"`
}

// InventoryItemResponse one inventory row.
type InventoryItemResponse struct {
	ProductID     string          `json:"product_id"`
	ProductName   string          `json:"product_name"`
	Quantity      int             `json:"quantity"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	Description   string          `json:"description"`
	UpdatedBy     string          `json:"updated_by"`
	ProductType   string          `json:"product_type"`
	ProductMake   string          `json:"product_make"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// SearchFields returns the values the inventory search box matches against.
func (i *InventoryItemResponse) SearchFields() []string {
	return []string{i.ProductName, i.Description}
}
