package repository

import "github.com/waterbiz/waterbiz-api/internal/domain/entity"

// CustomerRepository is the persistence port for Customer.
// Update overwrites every writable field and refreshes CreatedAt on the
// passed entity from the stored row; Update and Delete report
// domain.ErrNotFound when the id has no matching row.
type CustomerRepository interface {
	List() ([]*entity.Customer, error)
	GetByID(id string) (*entity.Customer, error)
	Create(c *entity.Customer) error
	Update(c *entity.Customer) error
	Delete(id string) (*entity.Customer, error)
}
