package repository

import "github.com/waterbiz/waterbiz-api/internal/domain/entity"

// InventoryRepository is the persistence port for InventoryItem.
type InventoryRepository interface {
	List() ([]*entity.InventoryItem, error)
	Create(item *entity.InventoryItem) error
	Update(item *entity.InventoryItem) error
	Delete(id string) error
}
