package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"watch-atelier-backend/internal/handlers"
	"watch-atelier-backend/internal/models"
)

func setupCasesRouter(catalog *fakeCatalog) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := handlers.NewCasesHandler(catalog, nil)

	router := gin.New()
	router.GET("/cases", handler.ListCases)
	router.GET("/cases/:case_id", handler.GetCase)
	return router
}

func TestListCases(t *testing.T) {
	catalog := newFakeCatalog()
	router := setupCasesRouter(catalog)

	req, _ := http.NewRequest("GET", "/cases", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp models.CaseListResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Cases, 1)
	assert.Equal(t, "Speedmaster", resp.Cases[0].Name)
}

func TestGetCase(t *testing.T) {
	catalog := newFakeCatalog()
	router := setupCasesRouter(catalog)

	req, _ := http.NewRequest("GET", "/cases/"+catalog.watchCase.ID.String(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp models.CaseResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, catalog.watchCase.ID.String(), resp.ID)
	assert.Len(t, resp.Colors, 2)
}

func TestGetCase_CatalogUnavailable(t *testing.T) {
	catalog := newFakeCatalog()
	catalog.caseErr = assert.AnError
	router := setupCasesRouter(catalog)

	req, _ := http.NewRequest("GET", "/cases/"+catalog.watchCase.ID.String(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestGetCase_NotFound(t *testing.T) {
	catalog := newFakeCatalog()
	router := setupCasesRouter(catalog)

	req, _ := http.NewRequest("GET", "/cases/"+uuid.NewString(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
