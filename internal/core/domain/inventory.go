package domain

import "time"

type Supplier struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Inventory struct {
	ID           uint
	Name         string
	Description  string
	Note         string
	Stock        int // may be zero or negative
	Availability bool
	SupplierID   string
	Supplier     Supplier
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
