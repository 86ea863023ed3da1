package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/waterbiz/waterbiz-api/internal/application/dto"
	"github.com/waterbiz/waterbiz-api/internal/domain"
	"github.com/waterbiz/waterbiz-api/internal/domain/entity"
)

type customerProductRepoStub struct {
	rows map[string]*entity.CustomerProduct

	servicedID      string
	servicedLast    time.Time
	servicedNext    time.Time
	servicedStamped time.Time
}

func newCustomerProductRepoStub() *customerProductRepoStub {
	return &customerProductRepoStub{rows: make(map[string]*entity.CustomerProduct)}
}

func (s *customerProductRepoStub) List() ([]*entity.CustomerProductListing, error) {
	var out []*entity.CustomerProductListing
	for _, cp := range s.rows {
		out = append(out, &entity.CustomerProductListing{CustomerProduct: *cp})
	}
	return out, nil
}

func (s *customerProductRepoStub) ListByCustomer(customerID string) ([]*entity.CustomerProductListing, error) {
	var out []*entity.CustomerProductListing
	for _, cp := range s.rows {
		if cp.CustomerID == customerID {
			out = append(out, &entity.CustomerProductListing{CustomerProduct: *cp})
		}
	}
	return out, nil
}

func (s *customerProductRepoStub) Create(cp *entity.CustomerProduct) error {
	s.rows[cp.ID] = cp
	return nil
}

func (s *customerProductRepoStub) Update(cp *entity.CustomerProduct) error {
	existing, ok := s.rows[cp.ID]
	if !ok {
		return domain.ErrNotFound
	}
	cp.CustomerID = existing.CustomerID
	cp.CreatedAt = existing.CreatedAt
	s.rows[cp.ID] = cp
	return nil
}

func (s *customerProductRepoStub) Delete(id string) error {
	if _, ok := s.rows[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.rows, id)
	return nil
}

func (s *customerProductRepoStub) MarkServiced(id string, lastService, nextService, updatedAt time.Time) error {
	cp, ok := s.rows[id]
	if !ok {
		return domain.ErrNotFound
	}
	cp.LastServiceDate = &lastService
	cp.NextServiceDate = &nextService
	cp.UpdatedAt = updatedAt
	s.servicedID = id
	s.servicedLast = lastService
	s.servicedNext = nextService
	s.servicedStamped = updatedAt
	return nil
}

func validOwnership() dto.CustomerProductRequest {
	return dto.CustomerProductRequest{
		CustomerID:       "cust-1",
		SerialNumber:     "KT-2024-0042",
		InstallationDate: "2024-01-15",
	}
}

func TestCustomerProductCreate_ParsesDates(t *testing.T) {
	repo := newCustomerProductRepoStub()
	uc := NewCustomerProductUseCase(repo)

	in := validOwnership()
	in.LastServiceDate = "2024-10-01"
	in.NextServiceDate = "2025-01-01"

	require.NoError(t, uc.Create(in))

	require.Len(t, repo.rows, 1)
	for _, cp := range repo.rows {
		assert.Equal(t, "cust-1", cp.CustomerID)
		assert.Equal(t, time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC), cp.InstallationDate)
		require.NotNil(t, cp.LastServiceDate)
		assert.Equal(t, "2024-10-01", cp.LastServiceDate.Format(dto.DateLayout))
	}
}

func TestCustomerProductCreate_RejectsMissingCustomerOrBadDate(t *testing.T) {
	uc := NewCustomerProductUseCase(newCustomerProductRepoStub())

	in := validOwnership()
	in.CustomerID = ""
	assert.ErrorIs(t, uc.Create(in), domain.ErrInvalidInput)

	in = validOwnership()
	in.InstallationDate = "15-01-2024"
	assert.ErrorIs(t, uc.Create(in), domain.ErrInvalidInput)
}

func TestMarkServiced_AppliesRolloverRegardlessOfPriorDates(t *testing.T) {
	repo := newCustomerProductRepoStub()
	uc := NewCustomerProductUseCase(repo)
	uc.now = func() time.Time {
		return time.Date(2025, time.August, 28, 11, 30, 0, 0, time.UTC)
	}

	// Seed a record whose next service was set far in the future.
	in := validOwnership()
	in.LastServiceDate = "2020-01-01"
	in.NextServiceDate = "2030-01-01"
	require.NoError(t, uc.Create(in))
	var id string
	for k := range repo.rows {
		id = k
	}

	require.NoError(t, uc.MarkServiced(id))

	assert.Equal(t, id, repo.servicedID)
	assert.Equal(t, time.Date(2025, time.August, 28, 0, 0, 0, 0, time.UTC), repo.servicedLast)
	assert.Equal(t, time.Date(2025, time.November, 28, 0, 0, 0, 0, time.UTC), repo.servicedNext)
	assert.Equal(t, time.Date(2025, time.August, 28, 11, 30, 0, 0, time.UTC), repo.servicedStamped,
		"updated_at carries the same clock reading, not a second one")
}

func TestMarkServiced_NotFound(t *testing.T) {
	uc := NewCustomerProductUseCase(newCustomerProductRepoStub())

	assert.ErrorIs(t, uc.MarkServiced("missing"), domain.ErrNotFound)
}

func TestCustomerProductUpdate_CannotReassignCustomer(t *testing.T) {
	repo := newCustomerProductRepoStub()
	uc := NewCustomerProductUseCase(repo)

	require.NoError(t, uc.Create(validOwnership()))
	var id string
	for k := range repo.rows {
		id = k
	}

	require.NoError(t, uc.Update(id, dto.CustomerProductUpdateRequest{
		SerialNumber:     "KT-2024-0099",
		InstallationDate: "2024-02-20",
		Remarks:          "replaced membrane",
	}))

	cp := repo.rows[id]
	assert.Equal(t, "cust-1", cp.CustomerID, "owning customer never changes")
	assert.Equal(t, "KT-2024-0099", cp.SerialNumber)
	assert.Nil(t, cp.LastServiceDate, "omitted dates are cleared, not merged")
}

func TestCustomerProductDelete_SecondCallIsNotFound(t *testing.T) {
	repo := newCustomerProductRepoStub()
	uc := NewCustomerProductUseCase(repo)

	require.NoError(t, uc.Create(validOwnership()))
	var id string
	for k := range repo.rows {
		id = k
	}

	require.NoError(t, uc.Delete(id))
	assert.ErrorIs(t, uc.Delete(id), domain.ErrNotFound)
}
