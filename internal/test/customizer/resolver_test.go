package customizer_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"watch-atelier-backend/internal/customizer"
	"watch-atelier-backend/internal/models"
)

func TestResolveCompatibleParts(t *testing.T) {
	parts := []models.WatchPart{
		{ID: uuid.New(), Name: "A", Category: models.CategoryDial, CompatibleCases: []string{"Speedmaster", "Diver"}},
		{ID: uuid.New(), Name: "B", Category: models.CategoryDial, CompatibleCases: []string{"Diver"}},
		{ID: uuid.New(), Name: "C", Category: models.CategoryDial, CompatibleCases: []string{"Speedmaster"}},
	}

	resolved := customizer.ResolveCompatibleParts("Speedmaster", parts)

	assert.Len(t, resolved, 2)
	assert.Equal(t, "A", resolved[0].Name)
	assert.Equal(t, "C", resolved[1].Name)
}

func TestResolveCompatibleParts_EmptyListMatchesNothing(t *testing.T) {
	parts := []models.WatchPart{
		{ID: uuid.New(), Name: "Orphan", Category: models.CategoryStrap, CompatibleCases: nil},
		{ID: uuid.New(), Name: "Orphan2", Category: models.CategoryStrap, CompatibleCases: []string{}},
	}

	resolved := customizer.ResolveCompatibleParts("Speedmaster", parts)

	assert.Empty(t, resolved)
}

func TestResolveCompatibleParts_Deterministic(t *testing.T) {
	parts := []models.WatchPart{
		{ID: uuid.New(), Name: "A", CompatibleCases: []string{"Speedmaster"}},
		{ID: uuid.New(), Name: "B", CompatibleCases: []string{"Speedmaster"}},
	}

	first := customizer.ResolveCompatibleParts("Speedmaster", parts)
	second := customizer.ResolveCompatibleParts("Speedmaster", parts)

	assert.Equal(t, first, second)
}
