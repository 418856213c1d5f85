package customizer_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"watch-atelier-backend/internal/customizer"
	"watch-atelier-backend/internal/models"
)

func TestNewSession(t *testing.T) {
	session := customizer.NewSession(testCase(), testParts())

	assert.NotEqual(t, uuid.Nil, session.ID)
	assert.Equal(t, "Черный", session.Selection.Color())
	assert.Equal(t, 0, session.Sequencer.Index())

	// Every selectable category opens with a selection already made.
	for _, category := range []models.PartCategory{models.CategoryDial, models.CategoryStrap, models.CategoryBezel} {
		_, ok := session.Selection.Part(category)
		assert.True(t, ok, "category %s should be auto-selected", category)
	}
}

func TestSession_SelectColor_Unknown(t *testing.T) {
	session := customizer.NewSession(testCase(), testParts())

	err := session.SelectColor("Золотой")

	var notFound *customizer.NotFoundError
	assert.ErrorAs(t, err, &notFound)
	assert.Equal(t, "color", notFound.Resource)
	// A failed selection leaves the previous color active.
	assert.Equal(t, "Черный", session.Selection.Color())
}

func TestSession_SelectPart(t *testing.T) {
	parts := testParts()
	session := customizer.NewSession(testCase(), parts)

	chosen := parts[models.CategoryDial][1]
	err := session.SelectPart(models.CategoryDial, chosen.ID.String())

	assert.NoError(t, err)
	selected, _ := session.Selection.Part(models.CategoryDial)
	assert.Equal(t, chosen.Name, selected.Name)
}

func TestSession_SelectPart_InvalidCategory(t *testing.T) {
	session := customizer.NewSession(testCase(), testParts())

	err := session.SelectPart("crown", uuid.NewString())

	var validation *customizer.ValidationError
	assert.ErrorAs(t, err, &validation)
}

func TestSession_SelectPart_Incompatible(t *testing.T) {
	session := customizer.NewSession(testCase(), testParts())

	err := session.SelectPart(models.CategoryDial, uuid.NewString())

	var notFound *customizer.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestSessionStore(t *testing.T) {
	store := customizer.NewSessionStore()
	session := customizer.NewSession(testCase(), testParts())
	store.Put(session)

	got, err := store.Get(session.ID)
	assert.NoError(t, err)
	assert.Same(t, session, got)

	store.Delete(session.ID)
	_, err = store.Get(session.ID)
	var notFound *customizer.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestSessionStore_DropsExpired(t *testing.T) {
	store := customizer.NewSessionStore()
	session := customizer.NewSession(testCase(), testParts())
	session.ExpiresAt = time.Now().Add(-time.Minute)
	store.Put(session)

	_, err := store.Get(session.ID)

	var notFound *customizer.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}
