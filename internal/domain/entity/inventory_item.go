package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product type values accepted for inventory items.
const (
	ProductTypeMachine = "Machine"
	ProductTypeSpare   = "Spare"
	ProductTypeOthers  = "Others"
)

// InventoryItem is a stocked product. Quantity is a plain mutable count,
// overwritten on every update; there is no movement ledger.
type InventoryItem struct {
	ID            string
	ProductName   string
	Quantity      int
	PurchasePrice decimal.Decimal
	SalePrice     decimal.Decimal
	Description   string
	UpdatedBy     string
	ProductType   string // Machine, Spare, Others
	ProductMake   string // Kent, Aqua Squard, Aquafina
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
