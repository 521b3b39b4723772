// Package unit provides measurement units for product stock.
// Stock is stored in a base unit (count, grams or milliliters) and shown in a display unit.
package unit

import (
	"github.com/shopspring/decimal"
)

// BaseUnit is the unit a product's quantity is stored in.
type BaseUnit string

const (
	Count      BaseUnit = "unit"       // pieces
	Gram       BaseUnit = "gram"       // mass
	Milliliter BaseUnit = "milliliter" // volume
)

// Class groups base units by what they measure.
type Class string

const (
	ClassCount  Class = "count"
	ClassMass   Class = "mass"
	ClassVolume Class = "volume"
)

// Display labels.
const (
	LabelCount    = "un"
	LabelKilogram = "kg"
	LabelLiter    = "L"
)

var thousand = decimal.NewFromInt(1000)

// Display is a quantity converted for presentation.
type Display struct {
	Quantity decimal.Decimal `json:"quantity"`
	Unit     string          `json:"unit"`
}

// ClassOf returns the class of a base unit. Unknown units count as pieces.
func ClassOf(u BaseUnit) Class {
	switch u {
	case Gram:
		return ClassMass
	case Milliliter:
		return ClassVolume
	default:
		return ClassCount
	}
}

// Normalize converts a base-unit quantity to its display unit:
// grams to kilograms, milliliters to liters, everything else unchanged.
func Normalize(qty decimal.Decimal, u BaseUnit) Display {
	switch ClassOf(u) {
	case ClassMass:
		return Display{Quantity: qty.Div(thousand), Unit: LabelKilogram}
	case ClassVolume:
		return Display{Quantity: qty.Div(thousand), Unit: LabelLiter}
	default:
		return Display{Quantity: qty, Unit: LabelCount}
	}
}

// DisplayPlaces is the number of decimals a display quantity of this class is rounded to.
func DisplayPlaces(c Class) int32 {
	if c == ClassCount {
		return 0
	}
	return 2
}

// IsValid reports whether u is one of the known base units.
func IsValid(u BaseUnit) bool {
	switch u {
	case Count, Gram, Milliliter:
		return true
	}
	return false
}
