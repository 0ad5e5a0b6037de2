package storage

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rl1809/inventory-catalog/internal/core/domain"
)

type supplierRecord struct {
	ID        string    `gorm:"column:id;primaryKey;type:varchar(36)"`
	Name      string    `gorm:"column:name;type:varchar(100);not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (supplierRecord) TableName() string { return "suppliers" }

// BeforeCreate assigns a random UUID to suppliers created without an ID.
func (s *supplierRecord) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

func (s supplierRecord) toDomain() domain.Supplier {
	return domain.Supplier{
		ID:        s.ID,
		Name:      s.Name,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

type inventoryRecord struct {
	ID           uint           `gorm:"column:id;primaryKey;autoIncrement"`
	Name         string         `gorm:"column:name;type:varchar(100);not null"`
	Description  string         `gorm:"column:description;type:varchar(255);not null"`
	Note         string         `gorm:"column:note;type:text;not null"`
	Stock        int            `gorm:"column:stock;not null"`
	Availability bool           `gorm:"column:availability;not null"`
	SupplierID   string         `gorm:"column:supplier_id;type:varchar(36);not null;index"`
	Supplier     supplierRecord `gorm:"foreignKey:SupplierID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	UpdatedAt    time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	CreatedAt    time.Time      `gorm:"column:created_at;autoCreateTime"`
}

func (inventoryRecord) TableName() string { return "inventories" }

func (r inventoryRecord) toDomain() domain.Inventory {
	return domain.Inventory{
		ID:           r.ID,
		Name:         r.Name,
		Description:  r.Description,
		Note:         r.Note,
		Stock:        r.Stock,
		Availability: r.Availability,
		SupplierID:   r.SupplierID,
		Supplier:     r.Supplier.toDomain(),
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func newInventoryRecord(inv domain.Inventory) inventoryRecord {
	return inventoryRecord{
		ID:           inv.ID,
		Name:         inv.Name,
		Description:  inv.Description,
		Note:         inv.Note,
		Stock:        inv.Stock,
		Availability: inv.Availability,
		SupplierID:   inv.SupplierID,
	}
}
