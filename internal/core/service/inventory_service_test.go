package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rl1809/inventory-catalog/internal/core/domain"
)

// Mock InventoryRepository
type mockInventoryRepo struct {
	items     []domain.Inventory
	err       error
	lastQuery domain.InventoryQuery
	lastID    uint
}

func (m *mockInventoryRepo) ListInventory(ctx context.Context, q domain.InventoryQuery) ([]domain.Inventory, error) {
	m.lastQuery = q
	if m.err != nil {
		return nil, m.err
	}
	return m.items, nil
}

func (m *mockInventoryRepo) GetInventory(ctx context.Context, id uint) (*domain.Inventory, error) {
	m.lastID = id
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.items {
		if m.items[i].ID == id {
			return &m.items[i], nil
		}
	}
	return nil, nil
}

func fixtureItems() []domain.Inventory {
	supplier := domain.Supplier{ID: "8c7e0f4e-4a4b-4a55-9d8f-1f0f3f1c2b3a", Name: "Supplier 1"}
	return []domain.Inventory{
		{ID: 1, Name: "Item 1", Stock: 10, Availability: true, SupplierID: supplier.ID, Supplier: supplier},
		{ID: 2, Name: "Item 2", Stock: 5, Availability: false, SupplierID: supplier.ID, Supplier: supplier},
	}
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func TestList_Success(t *testing.T) {
	repo := &mockInventoryRepo{items: fixtureItems()}
	svc := NewInventoryService(repo)

	items, err := svc.List(context.Background(), domain.InventoryFilter{Name: "Item"})
	require.NoError(t, err)

	assert.Len(t, items, 2)
	assert.Equal(t, "Item", repo.lastQuery.Name)
}

func TestList_NotFound(t *testing.T) {
	repo := &mockInventoryRepo{}
	svc := NewInventoryService(repo)

	_, err := svc.List(context.Background(), domain.InventoryFilter{Name: "asdasdsd"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, "inventory data not found", err.Error())
}

func TestList_WithAllFilters(t *testing.T) {
	repo := &mockInventoryRepo{items: fixtureItems()[:1]}
	svc := NewInventoryService(repo)

	items, err := svc.List(context.Background(), domain.InventoryFilter{
		Name:         "Item 1",
		SupplierName: "Supplier 1",
		Stock:        intPtr(10),
		Availability: strPtr("True"),
	})
	require.NoError(t, err)
	require.Len(t, items, 1)

	q := repo.lastQuery
	assert.Equal(t, "Item 1", q.Name)
	assert.Equal(t, "Supplier 1", q.SupplierName)
	require.NotNil(t, q.Stock)
	assert.Equal(t, 10, *q.Stock)
	require.NotNil(t, q.Availability)
	assert.True(t, *q.Availability)
}

func TestList_AvailabilityNormalization(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{"true", true},
		{"TRUE", true},
		{"tRuE", true},
		{"false", false},
		{"yes", false},
		{"1", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			repo := &mockInventoryRepo{items: fixtureItems()}
			svc := NewInventoryService(repo)

			_, err := svc.List(context.Background(), domain.InventoryFilter{Availability: strPtr(tt.raw)})
			require.NoError(t, err)

			require.NotNil(t, repo.lastQuery.Availability)
			assert.Equal(t, tt.want, *repo.lastQuery.Availability)
		})
	}
}

func TestList_NoFiltersLeavesQueryEmpty(t *testing.T) {
	repo := &mockInventoryRepo{items: fixtureItems()}
	svc := NewInventoryService(repo)

	_, err := svc.List(context.Background(), domain.InventoryFilter{})
	require.NoError(t, err)

	assert.Equal(t, domain.InventoryQuery{}, repo.lastQuery)
}

func TestList_RepositoryError(t *testing.T) {
	boom := errors.New("connection refused")
	repo := &mockInventoryRepo{err: boom}
	svc := NewInventoryService(repo)

	_, err := svc.List(context.Background(), domain.InventoryFilter{})

	assert.ErrorIs(t, err, boom)
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestGet_Success(t *testing.T) {
	repo := &mockInventoryRepo{items: fixtureItems()}
	svc := NewInventoryService(repo)

	item, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "Item 1", item.Name)
	assert.Equal(t, "Supplier 1", item.Supplier.Name)
}

func TestGet_NotFound(t *testing.T) {
	repo := &mockInventoryRepo{items: fixtureItems()}
	svc := NewInventoryService(repo)

	_, err := svc.Get(context.Background(), 999)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "Inventory with id 999 not found", err.Error())
	assert.Equal(t, uint(999), repo.lastID)
}

func TestGet_RepositoryErrorCollapsesToNotFound(t *testing.T) {
	boom := errors.New("driver: bad connection")
	repo := &mockInventoryRepo{err: boom}
	svc := NewInventoryService(repo)

	_, err := svc.Get(context.Background(), 1)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, err, boom)

	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, boom, nf.Cause)
}

func TestParseStock(t *testing.T) {
	stock, err := ParseStock("10")
	require.NoError(t, err)
	assert.Equal(t, 10, stock)

	stock, err = ParseStock("-3")
	require.NoError(t, err)
	assert.Equal(t, -3, stock)

	for _, raw := range []string{"", "ten", "10abc", "1.5"} {
		_, err := ParseStock(raw)
		assert.ErrorIs(t, err, ErrInvalidFilter, "raw=%q", raw)
	}
}
