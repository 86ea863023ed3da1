package repository

import (
	"time"

	"github.com/waterbiz/waterbiz-api/internal/domain/entity"
)

// CustomerProductRepository is the persistence port for ownership records.
// Listings carry the joined customer name (inner join) and product name
// (left join, nil when the inventory row is gone).
type CustomerProductRepository interface {
	List() ([]*entity.CustomerProductListing, error)
	ListByCustomer(customerID string) ([]*entity.CustomerProductListing, error)
	Create(cp *entity.CustomerProduct) error
	Update(cp *entity.CustomerProduct) error
	Delete(id string) error
	// MarkServiced overwrites both service dates and stamps updated_at.
	MarkServiced(id string, lastService, nextService, updatedAt time.Time) error
}
