package customizer

import "watch-atelier-backend/internal/models"

// SelectedPart is the customer's current choice for one category. The
// identifier is the authoritative key; the display name is derived from
// the catalog record at selection time and kept for order summaries.
type SelectedPart struct {
	PartID string
	Name   string
}

// Selection holds the customer's in-progress choices: the active color
// and one part per category. Session-scoped, never persisted.
type Selection struct {
	color string
	parts map[models.PartCategory]SelectedPart
}

// NewSelection creates an empty selection with the case's first color
// variant as the default. A case without variants has no color and no
// color step.
func NewSelection(watchCase *models.WatchCase) *Selection {
	s := &Selection{parts: make(map[models.PartCategory]SelectedPart)}
	if len(watchCase.Colors) > 0 {
		s.color = watchCase.Colors[0].Name
	}
	return s
}

// Color returns the active color variant name, empty if the case has
// no variants.
func (s *Selection) Color() string { return s.color }

// SetColor activates a color variant by name.
func (s *Selection) SetColor(name string) { s.color = name }

// Part returns the selection for a category, or false if the category
// has none.
func (s *Selection) Part(category models.PartCategory) (SelectedPart, bool) {
	part, ok := s.parts[category]
	return part, ok
}

// SetPart records the choice for a category. Used by both explicit
// customer picks and the auto-populate pass.
func (s *Selection) SetPart(category models.PartCategory, partID, name string) {
	s.parts[category] = SelectedPart{PartID: partID, Name: name}
}

// AutoPopulate selects the head of each non-empty compatible list for
// every category that has no selection yet. Re-running with the same
// lists is a no-op for already-selected categories, so an explicit
// customer choice is never overridden.
func (s *Selection) AutoPopulate(parts map[models.PartCategory][]models.WatchPart) {
	for _, category := range models.PartCategories() {
		list := parts[category]
		if len(list) == 0 {
			continue
		}
		if _, ok := s.parts[category]; ok {
			continue
		}
		s.SetPart(category, list[0].ID.String(), list[0].Name)
	}
}

// ResolvePart looks the selected part up in the resolved compatible
// list by identifier, recovering the full catalog record for pricing
// and preview.
func (s *Selection) ResolvePart(category models.PartCategory, parts []models.WatchPart) (*models.WatchPart, bool) {
	selected, ok := s.parts[category]
	if !ok {
		return nil, false
	}
	for i := range parts {
		if parts[i].ID.String() == selected.PartID {
			return &parts[i], true
		}
	}
	return nil, false
}
