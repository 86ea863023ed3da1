package usecase

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/waterbiz/waterbiz-api/internal/application/dto"
	"github.com/waterbiz/waterbiz-api/internal/domain"
	"github.com/waterbiz/waterbiz-api/internal/domain/entity"
)

type inventoryRepoStub struct {
	rows map[string]*entity.InventoryItem
}

func newInventoryRepoStub() *inventoryRepoStub {
	return &inventoryRepoStub{rows: make(map[string]*entity.InventoryItem)}
}

func (s *inventoryRepoStub) List() ([]*entity.InventoryItem, error) {
	var out []*entity.InventoryItem
	for _, it := range s.rows {
		out = append(out, it)
	}
	return out, nil
}

func (s *inventoryRepoStub) Create(item *entity.InventoryItem) error {
	s.rows[item.ID] = item
	return nil
}

func (s *inventoryRepoStub) Update(item *entity.InventoryItem) error {
	existing, ok := s.rows[item.ID]
	if !ok {
		return domain.ErrNotFound
	}
	item.CreatedAt = existing.CreatedAt
	s.rows[item.ID] = item
	return nil
}

func (s *inventoryRepoStub) Delete(id string) error {
	if _, ok := s.rows[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.rows, id)
	return nil
}

func validItem() dto.InventoryItemRequest {
	return dto.InventoryItemRequest{
		ProductName:   "Kent Grand Plus",
		Quantity:      4,
		PurchasePrice: decimal.NewFromInt(12500),
		SalePrice:     decimal.NewFromInt(16500),
		ProductType:   "Machine",
		ProductMake:   "Kent",
	}
}

func TestInventoryCreate_PersistsWithFreshID(t *testing.T) {
	repo := newInventoryRepoStub()
	uc := NewInventoryUseCase(repo)

	require.NoError(t, uc.Create(validItem()))

	require.Len(t, repo.rows, 1)
	for id, it := range repo.rows {
		assert.NotEmpty(t, id)
		assert.Equal(t, "Kent Grand Plus", it.ProductName)
		assert.Equal(t, 4, it.Quantity)
		assert.False(t, it.CreatedAt.IsZero())
	}
}

func TestInventoryCreate_RejectsUnknownTypeAndMake(t *testing.T) {
	uc := NewInventoryUseCase(newInventoryRepoStub())

	in := validItem()
	in.ProductType = "Consumable"
	assert.ErrorIs(t, uc.Create(in), domain.ErrInvalidInput)

	in = validItem()
	in.ProductMake = "Unknown Brand"
	assert.ErrorIs(t, uc.Create(in), domain.ErrInvalidInput)
}

func TestInventoryCreate_AcceptsMultiWordMake(t *testing.T) {
	uc := NewInventoryUseCase(newInventoryRepoStub())

	in := validItem()
	in.ProductMake = "Aqua Squard"
	assert.NoError(t, uc.Create(in))
}

func TestInventoryCreate_RejectsNegativePriceOrQuantity(t *testing.T) {
	uc := NewInventoryUseCase(newInventoryRepoStub())

	in := validItem()
	in.PurchasePrice = decimal.NewFromInt(-1)
	assert.ErrorIs(t, uc.Create(in), domain.ErrInvalidInput)

	in = validItem()
	in.Quantity = -3
	assert.ErrorIs(t, uc.Create(in), domain.ErrInvalidInput)
}

func TestInventoryUpdate_OverwritesQuantityDirectly(t *testing.T) {
	repo := newInventoryRepoStub()
	uc := NewInventoryUseCase(repo)

	require.NoError(t, uc.Create(validItem()))
	var id string
	for k := range repo.rows {
		id = k
	}

	in := validItem()
	in.Quantity = 99
	require.NoError(t, uc.Update(id, in))

	assert.Equal(t, 99, repo.rows[id].Quantity)
}

func TestInventoryUpdate_NotFound(t *testing.T) {
	uc := NewInventoryUseCase(newInventoryRepoStub())

	assert.ErrorIs(t, uc.Update("missing", validItem()), domain.ErrNotFound)
}

func TestInventoryDelete_SecondCallIsNotFound(t *testing.T) {
	repo := newInventoryRepoStub()
	uc := NewInventoryUseCase(repo)

	require.NoError(t, uc.Create(validItem()))
	var id string
	for k := range repo.rows {
		id = k
	}

	require.NoError(t, uc.Delete(id))
	assert.ErrorIs(t, uc.Delete(id), domain.ErrNotFound)
}
