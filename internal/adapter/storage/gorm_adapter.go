package storage

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rl1809/inventory-catalog/internal/core/domain"
)

type GormAdapter struct {
	db *gorm.DB
}

func NewGormAdapter(db *gorm.DB) *GormAdapter {
	return &GormAdapter{db: db}
}

func (g *GormAdapter) ListInventory(ctx context.Context, q domain.InventoryQuery) ([]domain.Inventory, error) {
	tx := g.db.WithContext(ctx).Joins(supplierAlias)
	tx = applyInventoryQuery(tx, q)

	var records []inventoryRecord
	err := tx.Order(clause.OrderByColumn{Column: clause.Column{Table: clause.CurrentTable, Name: "id"}}).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("query inventory: %w", err)
	}

	items := make([]domain.Inventory, 0, len(records))
	for _, r := range records {
		items = append(items, r.toDomain())
	}
	return items, nil
}

func (g *GormAdapter) GetInventory(ctx context.Context, id uint) (*domain.Inventory, error) {
	var record inventoryRecord
	err := g.db.WithContext(ctx).
		Joins(supplierAlias).
		Where(clause.Eq{Column: clause.Column{Table: clause.CurrentTable, Name: "id"}, Value: id}).
		Take(&record).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query inventory %d: %w", id, err)
	}

	inv := record.toDomain()
	return &inv, nil
}

func (g *GormAdapter) CreateSupplier(ctx context.Context, supplier *domain.Supplier) error {
	record := supplierRecord{ID: supplier.ID, Name: supplier.Name}
	if err := g.db.WithContext(ctx).Create(&record).Error; err != nil {
		return fmt.Errorf("insert supplier: %w", err)
	}

	*supplier = record.toDomain()
	return nil
}

// CreateInventory inserts inventory. The referenced supplier must already
// exist; it is never created or updated through this call.
func (g *GormAdapter) CreateInventory(ctx context.Context, inventory *domain.Inventory) error {
	record := newInventoryRecord(*inventory)
	if err := g.db.WithContext(ctx).Omit(clause.Associations).Create(&record).Error; err != nil {
		return fmt.Errorf("insert inventory: %w", err)
	}

	inventory.ID = record.ID
	inventory.CreatedAt = record.CreatedAt
	inventory.UpdatedAt = record.UpdatedAt
	return nil
}

func (g *GormAdapter) Ping(ctx context.Context) error {
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
