package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/waterbiz/waterbiz-api/internal/application/dto"
	"github.com/waterbiz/waterbiz-api/internal/domain/entity"
	"github.com/waterbiz/waterbiz-api/internal/domain/repository"
)

// CustomerProductUseCase use cases for ownership records, including the
// service rollover applied when a technician marks a unit serviced.
type CustomerProductUseCase struct {
	repo repository.CustomerProductRepository

	// now is swappable for tests of the rollover rule.
	now func() time.Time
}

// NewCustomerProductUseCase builds the use case.
func NewCustomerProductUseCase(repo repository.CustomerProductRepository) *CustomerProductUseCase {
	return &CustomerProductUseCase{repo: repo, now: time.Now}
}

// List returns every ownership record with customer and product names
// joined in, most recently updated first.
func (uc *CustomerProductUseCase) List() ([]*dto.CustomerProductResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return customerProductResponses(list), nil
}

// ListByCustomer returns one customer's ownership records.
func (uc *CustomerProductUseCase) ListByCustomer(customerID string) ([]*dto.CustomerProductResponse, error) {
	list, err := uc.repo.ListByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	return customerProductResponses(list), nil
}

// Create validates the payload and persists a new ownership record.
func (uc *CustomerProductUseCase) Create(in dto.CustomerProductRequest) error {
	if err := dto.Validate(in); err != nil {
		return err
	}
	installation, err := dto.ParseDate(in.InstallationDate)
	if err != nil {
		return err
	}
	lastService, err := dto.ParseDatePtr(in.LastServiceDate)
	if err != nil {
		return err
	}
	nextService, err := dto.ParseDatePtr(in.NextServiceDate)
	if err != nil {
		return err
	}
	now := uc.now()
	return uc.repo.Create(&entity.CustomerProduct{
		ID:               uuid.New().String(),
		CustomerID:       in.CustomerID,
		ProductID:        in.ProductID,
		SerialNumber:     in.SerialNumber,
		InstallationDate: installation,
		LastServiceDate:  lastService,
		NextServiceDate:  nextService,
		Remarks:          in.Remarks,
		CreatedAt:        now,
		UpdatedAt:        now,
	})
}

// Update overwrites every writable field except the owning customer.
func (uc *CustomerProductUseCase) Update(id string, in dto.CustomerProductUpdateRequest) error {
	if err := dto.Validate(in); err != nil {
		return err
	}
	installation, err := dto.ParseDate(in.InstallationDate)
	if err != nil {
		return err
	}
	lastService, err := dto.ParseDatePtr(in.LastServiceDate)
	if err != nil {
		return err
	}
	nextService, err := dto.ParseDatePtr(in.NextServiceDate)
	if err != nil {
		return err
	}
	return uc.repo.Update(&entity.CustomerProduct{
		ID:               id,
		ProductID:        in.ProductID,
		SerialNumber:     in.SerialNumber,
		InstallationDate: installation,
		LastServiceDate:  lastService,
		NextServiceDate:  nextService,
		Remarks:          in.Remarks,
		UpdatedAt:        uc.now(),
	})
}

// Delete removes an ownership record.
func (uc *CustomerProductUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// MarkServiced applies the rollover rule: last service today, next service
// three calendar months out, whatever the record held before.
func (uc *CustomerProductUseCase) MarkServiced(id string) error {
	now := uc.now()
	last, next := entity.ServiceRollover(now)
	return uc.repo.MarkServiced(id, last, next, now)
}

func customerProductResponses(list []*entity.CustomerProductListing) []*dto.CustomerProductResponse {
	out := make([]*dto.CustomerProductResponse, 0, len(list))
	for _, l := range list {
		out = append(out, &dto.CustomerProductResponse{
			OwnershipID:      l.ID,
			CustomerID:       l.CustomerID,
			ProductID:        l.ProductID,
			SerialNumber:     l.SerialNumber,
			InstallationDate: dto.FormatDate(l.InstallationDate),
			LastServiceDate:  dto.FormatDatePtr(l.LastServiceDate),
			NextServiceDate:  dto.FormatDatePtr(l.NextServiceDate),
			Remarks:          l.Remarks,
			CustomerName:     l.CustomerName,
			ProductName:      l.ProductName,
			CreatedAt:        l.CreatedAt,
			UpdatedAt:        l.UpdatedAt,
		})
	}
	return out
}
