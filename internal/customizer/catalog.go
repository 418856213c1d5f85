package customizer

import "watch-atelier-backend/internal/models"

// Catalog is the read-only collaborator supplying cases and their
// compatible parts. Implemented by the Supabase database client; tests
// substitute an in-memory fake.
type Catalog interface {
	GetCase(caseID string) (*models.WatchCase, error)
	GetCaseByName(name string) (*models.WatchCase, error)
	ListCases() ([]models.WatchCase, error)
	GetCompatibleParts(caseName string, category models.PartCategory) ([]models.WatchPart, error)
}

// FetchCompatibleParts resolves the per-category compatible sets for a
// case, querying only categories the case's availability flags enable.
// Disabled categories never hit the catalog.
func FetchCompatibleParts(catalog Catalog, watchCase *models.WatchCase) (map[models.PartCategory][]models.WatchPart, error) {
	parts := make(map[models.PartCategory][]models.WatchPart)
	for _, category := range models.PartCategories() {
		if !watchCase.AvailableParts.Has(category) {
			continue
		}
		list, err := catalog.GetCompatibleParts(watchCase.Name, category)
		if err != nil {
			return nil, &FetchError{Op: "compatible parts: " + string(category), Err: err}
		}
		parts[category] = list
	}
	return parts, nil
}
