package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/waterbiz/waterbiz-api/internal/application/dto"
	"github.com/waterbiz/waterbiz-api/internal/domain/entity"
	"github.com/waterbiz/waterbiz-api/internal/domain/repository"
)

// CustomerUseCase use cases for customers.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase builds the use case.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// List returns every customer, newest first.
func (uc *CustomerUseCase) List() ([]*dto.CustomerResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, customerResponse(c))
	}
	return out, nil
}

// Get returns one customer or domain.ErrNotFound.
func (uc *CustomerUseCase) Get(id string) (*dto.CustomerResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return customerResponse(c), nil
}

// Create validates the payload, mints the id and timestamps, and persists
// the customer. The stored row is echoed back.
func (uc *CustomerUseCase) Create(in dto.CustomerRequest) (*dto.CustomerResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	now := time.Now()
	c := &entity.Customer{
		ID:              uuid.New().String(),
		Name:            in.Name,
		PrimaryMobile:   in.PrimaryMobile,
		SecondaryMobile: in.SecondaryMobile,
		Address:         in.Address,
		MapLocation:     in.MapLocation,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(c); err != nil {
		return nil, err
	}
	return customerResponse(c), nil
}

// Update overwrites every writable field of an existing customer.
func (uc *CustomerUseCase) Update(id string, in dto.CustomerRequest) (*dto.CustomerResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	c := &entity.Customer{
		ID:              id,
		Name:            in.Name,
		PrimaryMobile:   in.PrimaryMobile,
		SecondaryMobile: in.SecondaryMobile,
		Address:         in.Address,
		MapLocation:     in.MapLocation,
		UpdatedAt:       time.Now(),
	}
	if err := uc.repo.Update(c); err != nil {
		return nil, err
	}
	return customerResponse(c), nil
}

// Delete removes a customer and returns the deleted row. Ownership records
// pointing at the customer are not touched.
func (uc *CustomerUseCase) Delete(id string) (*dto.CustomerResponse, error) {
	c, err := uc.repo.Delete(id)
	if err != nil {
		return nil, err
	}
	return customerResponse(c), nil
}

func customerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		CustomerID:      c.ID,
		Name:            c.Name,
		PrimaryMobile:   c.PrimaryMobile,
		SecondaryMobile: c.SecondaryMobile,
		Address:         c.Address,
		MapLocation:     c.MapLocation,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}
