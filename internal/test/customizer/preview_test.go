package customizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"watch-atelier-backend/internal/customizer"
)

func TestComposeLayers(t *testing.T) {
	watchCase := testCase()
	parts := testParts()
	selection := customizer.NewSelection(watchCase)
	selection.AutoPopulate(parts)

	layers := customizer.ComposeLayers(watchCase, selection, parts)

	// Base case render plus dial, strap, bezel.
	assert.Len(t, layers, 4)
	assert.Equal(t, "case", layers[0].Category)
	assert.Equal(t, "black.png", layers[0].Image, "base layer uses the active color render")

	for i := 1; i < len(layers); i++ {
		assert.Greater(t, layers[i].ZIndex, layers[i-1].ZIndex, "layers must stack in ascending z order")
	}
	assert.Equal(t, "dial", layers[1].Category)
	assert.Equal(t, "strap", layers[2].Category)
	assert.Equal(t, "bezel", layers[3].Category)
}

func TestComposeLayers_ColorSwitchesBase(t *testing.T) {
	watchCase := testCase()
	parts := testParts()
	selection := customizer.NewSelection(watchCase)
	selection.SetColor("Серебристый")

	layers := customizer.ComposeLayers(watchCase, selection, parts)

	assert.Equal(t, "silver.png", layers[0].Image)
}

func TestComposeLayers_OmitsUnselected(t *testing.T) {
	watchCase := testCase()
	selection := customizer.NewSelection(watchCase)

	layers := customizer.ComposeLayers(watchCase, selection, testParts())

	assert.Len(t, layers, 1)
	assert.Equal(t, "case", layers[0].Category)
}
