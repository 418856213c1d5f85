package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"watch-atelier-backend/internal/customizer"
	"watch-atelier-backend/internal/handlers"
	"watch-atelier-backend/internal/models"
	"watch-atelier-backend/internal/orders"
)

// fakeCatalog serves a single case with a dial and a strap compatible
// with it, plus one dial that fits a different case. Setting caseErr
// makes every case lookup fail, simulating a dead database.
type fakeCatalog struct {
	watchCase models.WatchCase
	parts     []models.WatchPart
	caseErr   error
}

func newFakeCatalog() *fakeCatalog {
	watchCase := models.WatchCase{
		ID:   uuid.New(),
		Name: "Speedmaster",
		Colors: []models.CaseColor{
			{Name: "Черный", Image: "black.png"},
			{Name: "Серебристый", Image: "silver.png"},
		},
		AvailableParts: models.AvailableParts{Dials: true, Straps: true},
		Price:          20000,
	}
	return &fakeCatalog{
		watchCase: watchCase,
		parts: []models.WatchPart{
			{
				ID:              uuid.New(),
				Name:            "Синий циферблат",
				Image:           "dial-blue.png",
				Category:        models.CategoryDial,
				CompatibleCases: []string{"Speedmaster"},
				Price:           500,
			},
			{
				ID:              uuid.New(),
				Name:            "Чужой циферблат",
				Image:           "dial-other.png",
				Category:        models.CategoryDial,
				CompatibleCases: []string{"Diver"},
			},
			{
				ID:              uuid.New(),
				Name:            "Кожаный ремешок",
				Image:           "strap-leather.png",
				Category:        models.CategoryStrap,
				CompatibleCases: []string{"Speedmaster"},
				Price:           1200,
			},
		},
	}
}

func (f *fakeCatalog) GetCase(caseID string) (*models.WatchCase, error) {
	if f.caseErr != nil {
		return nil, f.caseErr
	}
	if caseID != f.watchCase.ID.String() {
		return nil, &customizer.NotFoundError{Resource: "case", Key: caseID}
	}
	watchCase := f.watchCase
	return &watchCase, nil
}

func (f *fakeCatalog) GetCaseByName(name string) (*models.WatchCase, error) {
	if f.caseErr != nil {
		return nil, f.caseErr
	}
	if name != f.watchCase.Name {
		return nil, &customizer.NotFoundError{Resource: "case", Key: name}
	}
	watchCase := f.watchCase
	return &watchCase, nil
}

func (f *fakeCatalog) ListCases() ([]models.WatchCase, error) {
	return []models.WatchCase{f.watchCase}, nil
}

func (f *fakeCatalog) GetCompatibleParts(caseName string, category models.PartCategory) ([]models.WatchPart, error) {
	var matched []models.WatchPart
	for _, part := range f.parts {
		if part.Category == category && part.CompatibleWith(caseName) {
			matched = append(matched, part)
		}
	}
	return matched, nil
}

type fakeSubmitter struct {
	order *models.Order
	err   error
}

func (f *fakeSubmitter) SubmitOrder(order *models.Order) (string, error) {
	f.order = order
	return uuid.NewString(), f.err
}

func setupSessionRouter(catalog *fakeCatalog, submitter *fakeSubmitter) (*gin.Engine, *customizer.SessionStore) {
	gin.SetMode(gin.TestMode)
	store := customizer.NewSessionStore()
	handler := handlers.NewSessionsHandler(catalog, store, orders.NewAssembler(submitter), nil, nil)

	router := gin.New()
	router.POST("/sessions", handler.CreateSession)
	router.GET("/sessions/:session_id", handler.GetSession)
	router.PUT("/sessions/:session_id/color", handler.SelectColor)
	router.PUT("/sessions/:session_id/part", handler.SelectPart)
	router.POST("/sessions/:session_id/next", handler.NextStep)
	router.POST("/sessions/:session_id/previous", handler.PreviousStep)
	router.POST("/sessions/:session_id/order", handler.SubmitOrder)
	return router, store
}

func postJSON(router *gin.Engine, method, path string, payload any) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if payload != nil {
		_ = json.NewEncoder(&body).Encode(payload)
	}
	req, _ := http.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func createSession(t *testing.T, router *gin.Engine, catalog *fakeCatalog) models.SessionResponse {
	t.Helper()
	w := postJSON(router, "POST", "/sessions", models.CreateSessionRequest{CaseID: catalog.watchCase.ID.String()})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.SessionResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestCreateSession(t *testing.T) {
	catalog := newFakeCatalog()
	router, _ := setupSessionRouter(catalog, &fakeSubmitter{})

	resp := createSession(t, router, catalog)

	assert.NotEmpty(t, resp.SessionID)
	assert.Equal(t, "Speedmaster", resp.Case.Name)

	kinds := make([]string, 0, len(resp.Steps))
	for _, step := range resp.Steps {
		kinds = append(kinds, step.Kind)
	}
	assert.Equal(t, []string{"color", "dial", "strap", "order"}, kinds)

	assert.Equal(t, 0, resp.CurrentStep)
	assert.Equal(t, "Черный", resp.Selection.Color)
	assert.Equal(t, "Синий циферблат", resp.Selection.Parts["dial"].Name)
	assert.Equal(t, 21700, resp.TotalPrice)

	// The incompatible dial must not be offered.
	assert.Len(t, resp.CompatibleParts["dial"], 1)
}

func TestCreateSession_UnknownCase(t *testing.T) {
	catalog := newFakeCatalog()
	router, _ := setupSessionRouter(catalog, &fakeSubmitter{})

	w := postJSON(router, "POST", "/sessions", models.CreateSessionRequest{CaseID: uuid.NewString()})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateSession_CatalogUnavailable(t *testing.T) {
	catalog := newFakeCatalog()
	catalog.caseErr = assert.AnError
	router, _ := setupSessionRouter(catalog, &fakeSubmitter{})

	w := postJSON(router, "POST", "/sessions", models.CreateSessionRequest{CaseID: catalog.watchCase.ID.String()})

	// An unreachable catalog is not a missing case.
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "catalog unavailable")
}

func TestCreateSession_MissingCaseID(t *testing.T) {
	catalog := newFakeCatalog()
	router, _ := setupSessionRouter(catalog, &fakeSubmitter{})

	w := postJSON(router, "POST", "/sessions", models.CreateSessionRequest{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetSession_Unknown(t *testing.T) {
	catalog := newFakeCatalog()
	router, _ := setupSessionRouter(catalog, &fakeSubmitter{})

	req, _ := http.NewRequest("GET", "/sessions/"+uuid.NewString(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSelectColor(t *testing.T) {
	catalog := newFakeCatalog()
	router, _ := setupSessionRouter(catalog, &fakeSubmitter{})
	session := createSession(t, router, catalog)

	w := postJSON(router, "PUT", "/sessions/"+session.SessionID+"/color", models.SelectColorRequest{Color: "Серебристый"})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp models.SessionResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Серебристый", resp.Selection.Color)
	assert.Equal(t, "silver.png", resp.Layers[0].Image)
}

func TestSelectColor_UnknownVariant(t *testing.T) {
	catalog := newFakeCatalog()
	router, _ := setupSessionRouter(catalog, &fakeSubmitter{})
	session := createSession(t, router, catalog)

	w := postJSON(router, "PUT", "/sessions/"+session.SessionID+"/color", models.SelectColorRequest{Color: "Золотой"})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSelectPart_Incompatible(t *testing.T) {
	catalog := newFakeCatalog()
	router, _ := setupSessionRouter(catalog, &fakeSubmitter{})
	session := createSession(t, router, catalog)

	// The second catalog dial fits a different case.
	w := postJSON(router, "PUT", "/sessions/"+session.SessionID+"/part", models.SelectPartRequest{
		Category: models.CategoryDial,
		PartID:   catalog.parts[1].ID.String(),
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStepNavigation(t *testing.T) {
	catalog := newFakeCatalog()
	router, _ := setupSessionRouter(catalog, &fakeSubmitter{})
	session := createSession(t, router, catalog)

	var resp models.SessionResponse
	for i := 0; i < 6; i++ {
		w := postJSON(router, "POST", "/sessions/"+session.SessionID+"/next", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	// Four steps: advancing past the order step is a bounded no-op.
	assert.Equal(t, 3, resp.CurrentStep)
	assert.Equal(t, "order", resp.Steps[resp.CurrentStep].Kind)

	w := postJSON(router, "POST", "/sessions/"+session.SessionID+"/previous", nil)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.CurrentStep)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSubmitOrder(t *testing.T) {
	catalog := newFakeCatalog()
	submitter := &fakeSubmitter{}
	router, store := setupSessionRouter(catalog, submitter)
	session := createSession(t, router, catalog)

	w := postJSON(router, "POST", "/sessions/"+session.SessionID+"/order", models.SubmitOrderRequest{
		Phone:         "+7 905 123 45 67",
		ContactMethod: models.ContactMethodTelegram,
		Comment:       "гравировка на крышке",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp models.SubmitOrderResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.OrderID)
	assert.Equal(t, models.OrderStatusNew, resp.Status)
	assert.Equal(t, 21700, resp.TotalPrice)

	assert.Equal(t, "Speedmaster", submitter.order.Components.CaseName)
	assert.Equal(t, "гравировка на крышке", submitter.order.Comment)

	// The session is closed after a successful submission.
	sessionID, _ := uuid.Parse(session.SessionID)
	_, err := store.Get(sessionID)
	assert.Error(t, err)
}

func TestSubmitOrder_InvalidPhone(t *testing.T) {
	catalog := newFakeCatalog()
	submitter := &fakeSubmitter{}
	router, store := setupSessionRouter(catalog, submitter)
	session := createSession(t, router, catalog)

	w := postJSON(router, "POST", "/sessions/"+session.SessionID+"/order", models.SubmitOrderRequest{Phone: "12345"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, submitter.order, "validation failures must not reach the submitter")

	// The session survives a failed submission.
	sessionID, _ := uuid.Parse(session.SessionID)
	_, err := store.Get(sessionID)
	assert.NoError(t, err)
}

func TestSubmitOrder_SubmitterFailure(t *testing.T) {
	catalog := newFakeCatalog()
	submitter := &fakeSubmitter{err: assert.AnError}
	router, _ := setupSessionRouter(catalog, submitter)
	session := createSession(t, router, catalog)

	w := postJSON(router, "POST", "/sessions/"+session.SessionID+"/order", models.SubmitOrderRequest{Phone: "+7 905 123 45 67"})

	assert.Equal(t, http.StatusBadGateway, w.Code)
}
