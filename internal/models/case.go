package models

import (
	"time"

	"github.com/google/uuid"
)

// CaseColor is one color variant of a watch case. Names are unique
// within a case; the image is the full case render in that color.
type CaseColor struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

// AvailableParts flags which part categories a case physically accepts.
// A true flag alone does not guarantee a wizard step: the category must
// also have at least one compatible part in the catalog.
type AvailableParts struct {
	Dials  bool `json:"has_dials"`
	Hands  bool `json:"has_hands"`
	Rotors bool `json:"has_rotors"`
	Straps bool `json:"has_straps"`
	Bezel  bool `json:"has_bezel"`
}

// Has reports whether the flag for the given category is set.
func (a AvailableParts) Has(category PartCategory) bool {
	switch category {
	case CategoryDial:
		return a.Dials
	case CategoryHands:
		return a.Hands
	case CategoryRotor:
		return a.Rotors
	case CategoryStrap:
		return a.Straps
	case CategoryBezel:
		return a.Bezel
	}
	return false
}

// WatchCase is the body a customer starts customizing from.
// Administrator-managed, read-only to the customer wizard, immutable
// for the duration of one customization session.
type WatchCase struct {
	ID             uuid.UUID
	Name           string
	Image          string
	Colors         []CaseColor
	AvailableParts AvailableParts
	// Price is the base price in rubles. Zero means the case has no
	// explicit price and the fallback base price applies.
	Price     int
	CreatedAt time.Time
	UpdatedAt time.Time
}
