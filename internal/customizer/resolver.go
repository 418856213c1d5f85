package customizer

import "watch-atelier-backend/internal/models"

// ResolveCompatibleParts filters a category's parts down to the subset
// whose compatibility lists name the case. Input ordering is preserved
// (the catalog query sorts alphabetically by name). Pure: identical
// inputs always yield identical output.
//
// A part with an empty compatibility list matches no case and is never
// offered.
func ResolveCompatibleParts(caseName string, parts []models.WatchPart) []models.WatchPart {
	resolved := make([]models.WatchPart, 0, len(parts))
	for _, part := range parts {
		if part.CompatibleWith(caseName) {
			resolved = append(resolved, part)
		}
	}
	return resolved
}
