package models

import (
	"time"

	"github.com/google/uuid"
)

// PartCategory identifies a swappable watch component type.
type PartCategory string

const (
	CategoryDial  PartCategory = "dial"
	CategoryHands PartCategory = "hands"
	CategoryRotor PartCategory = "rotor"
	CategoryStrap PartCategory = "strap"
	CategoryBezel PartCategory = "bezel"
)

// PartCategories lists every category in canonical wizard order.
func PartCategories() []PartCategory {
	return []PartCategory{CategoryDial, CategoryHands, CategoryRotor, CategoryStrap, CategoryBezel}
}

// Valid reports whether c is one of the known categories.
func (c PartCategory) Valid() bool {
	switch c {
	case CategoryDial, CategoryHands, CategoryRotor, CategoryStrap, CategoryBezel:
		return true
	}
	return false
}

// WatchPart is a swappable component (dial, hands, rotor, strap, bezel).
// CompatibleCases holds the names of cases the part fits. An empty list
// means the part fits nothing: compatibility lookups match against the
// list, so a part with no entries never appears in a wizard session.
type WatchPart struct {
	ID              uuid.UUID
	Name            string
	Image           string
	Category        PartCategory
	CompatibleCases []string
	// Price is the surcharge over the case base price, rubles. Missing
	// prices are stored as zero and add nothing to the total.
	Price     int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CompatibleWith reports whether the part fits the named case.
func (p WatchPart) CompatibleWith(caseName string) bool {
	for _, name := range p.CompatibleCases {
		if name == caseName {
			return true
		}
	}
	return false
}
