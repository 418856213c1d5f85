package customizer

import "watch-atelier-backend/internal/models"

// Preview layer policy. The case render in the active color is the base
// layer; parts stack above it in fixed order with the bezel topmost.
// This ordering is a visual correctness invariant: a strap drawn over
// the hands produces a broken preview.
const (
	zIndexBase  = 10
	zIndexDial  = 20
	zIndexHands = 30
	zIndexRotor = 40
	zIndexStrap = 50
	zIndexBezel = 60
)

var layerZIndex = map[models.PartCategory]int{
	models.CategoryDial:  zIndexDial,
	models.CategoryHands: zIndexHands,
	models.CategoryRotor: zIndexRotor,
	models.CategoryStrap: zIndexStrap,
	models.CategoryBezel: zIndexBezel,
}

// Layer is one image of the composed watch preview.
type Layer struct {
	Category string
	Image    string
	ZIndex   int
}

// ComposeLayers builds the preview stack for the current selection,
// ordered by ascending z-index. Categories without a selection are
// omitted; the relative order of present layers never changes.
func ComposeLayers(watchCase *models.WatchCase, selection *Selection, parts map[models.PartCategory][]models.WatchPart) []Layer {
	layers := make([]Layer, 0, len(models.PartCategories())+1)

	baseImage := watchCase.Image
	for _, color := range watchCase.Colors {
		if color.Name == selection.Color() {
			baseImage = color.Image
			break
		}
	}
	if baseImage != "" {
		layers = append(layers, Layer{Category: "case", Image: baseImage, ZIndex: zIndexBase})
	}

	for _, category := range models.PartCategories() {
		part, ok := selection.ResolvePart(category, parts[category])
		if !ok || part.Image == "" {
			continue
		}
		layers = append(layers, Layer{
			Category: string(category),
			Image:    part.Image,
			ZIndex:   layerZIndex[category],
		})
	}
	return layers
}
