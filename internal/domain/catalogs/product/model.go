// Package product provides the product catalog as seen by reporting.
package product

import (
	"strings"

	"bizreport/internal/core/id"
	"bizreport/internal/core/types"
	"bizreport/internal/domain/catalogs/unit"
)

// Product is a stocked item.
type Product struct {
	ID      id.ID `db:"id" json:"id"`
	OwnerID id.ID `db:"owner_id" json:"ownerId"`

	Name string `db:"name" json:"name"`

	// Unit is the base unit Quantity is stored in
	Unit unit.BaseUnit `db:"unit" json:"unit"`

	// Quantity is the current on-hand stock in base units
	Quantity types.Quantity `db:"quantity" json:"quantity"`

	Category *string `db:"category" json:"category,omitempty"`
	Active   bool    `db:"active" json:"active"`
}

// CategoryLabel returns the category as stored, or "" when it is absent or blank.
func (p Product) CategoryLabel() string {
	if p.Category == nil || strings.TrimSpace(*p.Category) == "" {
		return ""
	}
	return *p.Category
}

// DisplayStock returns the on-hand quantity converted to its display unit.
func (p Product) DisplayStock() unit.Display {
	return unit.Normalize(p.Quantity, p.Unit)
}
