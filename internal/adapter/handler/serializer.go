package handler

import "github.com/rl1809/inventory-catalog/internal/core/domain"

type SupplierResponse struct {
	SupplierID string `json:"supplier_id"`
	Name       string `json:"name"`
}

// InventoryResponse is the API view of an item. Audit timestamps are left out.
type InventoryResponse struct {
	ID           uint             `json:"id"`
	Name         string           `json:"name"`
	Description  string           `json:"description"`
	Note         string           `json:"note"`
	Stock        int              `json:"stock"`
	Availability bool             `json:"availability"`
	Supplier     SupplierResponse `json:"supplier"`
}

func NewInventoryResponse(inv domain.Inventory) InventoryResponse {
	return InventoryResponse{
		ID:           inv.ID,
		Name:         inv.Name,
		Description:  inv.Description,
		Note:         inv.Note,
		Stock:        inv.Stock,
		Availability: inv.Availability,
		Supplier: SupplierResponse{
			SupplierID: inv.Supplier.ID,
			Name:       inv.Supplier.Name,
		},
	}
}

func NewInventoryResponses(items []domain.Inventory) []InventoryResponse {
	out := make([]InventoryResponse, 0, len(items))
	for _, inv := range items {
		out = append(out, NewInventoryResponse(inv))
	}
	return out
}

func (r InventoryResponse) asMap() map[string]interface{} {
	return map[string]interface{}{
		"id":           int64(r.ID),
		"name":         r.Name,
		"description":  r.Description,
		"note":         r.Note,
		"stock":        int64(r.Stock),
		"availability": r.Availability,
		"supplier": map[string]interface{}{
			"supplier_id": r.Supplier.SupplierID,
			"name":        r.Supplier.Name,
		},
	}
}
