package port

import (
	"context"

	"github.com/rl1809/inventory-catalog/internal/core/domain"
)

type InventoryRepository interface {
	// ListInventory returns every item matching all active constraints of q,
	// with its supplier populated, ordered by primary key
	ListInventory(ctx context.Context, q domain.InventoryQuery) ([]domain.Inventory, error)

	// GetInventory retrieves an item by primary key, returns nil when absent
	GetInventory(ctx context.Context, id uint) (*domain.Inventory, error)
}

// CatalogWriter seeds suppliers and items. It is not exposed over any API.
type CatalogWriter interface {
	CreateSupplier(ctx context.Context, supplier *domain.Supplier) error
	CreateInventory(ctx context.Context, inventory *domain.Inventory) error
}
