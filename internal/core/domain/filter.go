package domain

import "strings"

// InventoryFilter carries the optional criteria accepted by a listing.
// Empty strings and nil pointers impose no constraint.
type InventoryFilter struct {
	Name         string
	SupplierName string
	Stock        *int
	Availability *string
}

// InventoryQuery is the normalized form of InventoryFilter handed to storage.
type InventoryQuery struct {
	Name         string
	SupplierName string
	Stock        *int
	Availability *bool
}

func (f InventoryFilter) Query() InventoryQuery {
	q := InventoryQuery{
		Name:         f.Name,
		SupplierName: f.SupplierName,
		Stock:        f.Stock,
	}
	if f.Availability != nil {
		available := ParseAvailability(*f.Availability)
		q.Availability = &available
	}
	return q
}

// ParseAvailability reports whether s spells "true" in any case. Every other
// value, including the empty string, is false.
func ParseAvailability(s string) bool {
	return strings.EqualFold(s, "true")
}
