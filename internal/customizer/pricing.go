package customizer

import "watch-atelier-backend/internal/models"

// FallbackBasePrice is charged for a case with no explicit price,
// rubles.
const FallbackBasePrice = 20000

// ComputeTotal sums the case base price with the surcharge of every
// currently selected part. Pure and cheap; recomputed on every
// selection change rather than cached.
func ComputeTotal(watchCase *models.WatchCase, selection *Selection, parts map[models.PartCategory][]models.WatchPart) int {
	total := watchCase.Price
	if total == 0 {
		total = FallbackBasePrice
	}
	for _, category := range models.PartCategories() {
		if part, ok := selection.ResolvePart(category, parts[category]); ok {
			total += part.Price
		}
	}
	return total
}
