package storage

import (
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rl1809/inventory-catalog/internal/core/domain"
)

// supplierAlias is the alias GORM gives the joined supplier table.
const supplierAlias = "Supplier"

// likeEscaper makes user input match literally inside a LIKE pattern. '!' is
// used as the escape character since backslash handling differs between
// MySQL and the other dialects.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// iContains folds both operands with the database's LOWER so that column and
// pattern share one case mapping. SQLite's LOWER only folds ASCII.
func iContains(tx *gorm.DB, column clause.Column, value string) *gorm.DB {
	return tx.Where("LOWER(?) LIKE LOWER(?) ESCAPE '!'", column, containsPattern(value))
}

// applyInventoryQuery adds one condition per active constraint of q. The
// conditions are AND-ed; an empty query leaves tx untouched.
func applyInventoryQuery(tx *gorm.DB, q domain.InventoryQuery) *gorm.DB {
	if q.Name != "" {
		tx = iContains(tx, clause.Column{Table: clause.CurrentTable, Name: "name"}, q.Name)
	}

	if q.SupplierName != "" {
		tx = iContains(tx, clause.Column{Table: supplierAlias, Name: "name"}, q.SupplierName)
	}

	if q.Stock != nil {
		tx = tx.Where(clause.Eq{Column: clause.Column{Table: clause.CurrentTable, Name: "stock"}, Value: *q.Stock})
	}

	if q.Availability != nil {
		tx = tx.Where(clause.Eq{Column: clause.Column{Table: clause.CurrentTable, Name: "availability"}, Value: *q.Availability})
	}

	return tx
}
