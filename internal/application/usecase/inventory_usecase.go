package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/waterbiz/waterbiz-api/internal/application/dto"
	"github.com/waterbiz/waterbiz-api/internal/domain"
	"github.com/waterbiz/waterbiz-api/internal/domain/entity"
	"github.com/waterbiz/waterbiz-api/internal/domain/repository"
)

// InventoryUseCase use cases for inventory items.
type InventoryUseCase struct {
	repo repository.InventoryRepository
}

// NewInventoryUseCase builds the use case.
func NewInventoryUseCase(repo repository.InventoryRepository) *InventoryUseCase {
	return &InventoryUseCase{repo: repo}
}

// List returns every inventory item, newest first.
func (uc *InventoryUseCase) List() ([]*dto.InventoryItemResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InventoryItemResponse, 0, len(list))
	for _, it := range list {
		out = append(out, inventoryItemResponse(it))
	}
	return out, nil
}

// Create validates the payload and persists a new item.
func (uc *InventoryUseCase) Create(in dto.InventoryItemRequest) error {
	if err := validateInventoryItem(in); err != nil {
		return err
	}
	now := time.Now()
	return uc.repo.Create(&entity.InventoryItem{
		ID:            uuid.New().String(),
		ProductName:   in.ProductName,
		Quantity:      in.Quantity,
		PurchasePrice: in.PurchasePrice,
		SalePrice:     in.SalePrice,
		Description:   in.Description,
		UpdatedBy:     in.UpdatedBy,
		ProductType:   in.ProductType,
		ProductMake:   in.ProductMake,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
}

// Update overwrites every writable field of an existing item, quantity
// included — there is no stock ledger, the count is simply replaced.
func (uc *InventoryUseCase) Update(id string, in dto.InventoryItemRequest) error {
	if err := validateInventoryItem(in); err != nil {
		return err
	}
	return uc.repo.Update(&entity.InventoryItem{
		ID:            id,
		ProductName:   in.ProductName,
		Quantity:      in.Quantity,
		PurchasePrice: in.PurchasePrice,
		SalePrice:     in.SalePrice,
		Description:   in.Description,
		UpdatedBy:     in.UpdatedBy,
		ProductType:   in.ProductType,
		ProductMake:   in.ProductMake,
		UpdatedAt:     time.Now(),
	})
}

// Delete removes an item from inventory.
func (uc *InventoryUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// validateInventoryItem runs the tag rules plus the price checks the tags
// cannot express (decimal.Decimal has no numeric validator binding).
func validateInventoryItem(in dto.InventoryItemRequest) error {
	if err := dto.Validate(in); err != nil {
		return err
	}
	if in.PurchasePrice.IsNegative() || in.SalePrice.IsNegative() {
		return fmt.Errorf("%w: prices must not be negative", domain.ErrInvalidInput)
	}
	return nil
}

func inventoryItemResponse(it *entity.InventoryItem) *dto.InventoryItemResponse {
	return &dto.InventoryItemResponse{
		ProductID:     it.ID,
		ProductName:   it.ProductName,
		Quantity:      it.Quantity,
		PurchasePrice: it.PurchasePrice,
		SalePrice:     it.SalePrice,
		Description:   it.Description,
		UpdatedBy:     it.UpdatedBy,
		ProductType:   it.ProductType,
		ProductMake:   it.ProductMake,
		CreatedAt:     it.CreatedAt,
		UpdatedAt:     it.UpdatedAt,
	}
}
