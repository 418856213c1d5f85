package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"watch-atelier-backend/internal/customizer"
	"watch-atelier-backend/internal/models"
	"watch-atelier-backend/internal/orders"
	"watch-atelier-backend/internal/services"
	"watch-atelier-backend/internal/supabase"
)

// SessionsHandler drives the customization wizard: session creation,
// selection, bounded step navigation, and final order submission.
type SessionsHandler struct {
	catalog        customizer.Catalog
	store          *customizer.SessionStore
	assembler      *orders.Assembler
	prefetcher     *services.Prefetcher
	realtimeClient *supabase.RealtimeClient
}

func NewSessionsHandler(
	catalog customizer.Catalog,
	store *customizer.SessionStore,
	assembler *orders.Assembler,
	prefetcher *services.Prefetcher,
	realtimeClient *supabase.RealtimeClient,
) *SessionsHandler {
	return &SessionsHandler{
		catalog:        catalog,
		store:          store,
		assembler:      assembler,
		prefetcher:     prefetcher,
		realtimeClient: realtimeClient,
	}
}

// CreateSession godoc
// @Summary     Start a customization session
// @Description Creates a wizard session for a case: resolves compatible parts, computes the step sequence, and auto-selects the first part of every selectable category.
// @Tags        sessions
// @Accept      json
// @Produce     json
// @Param       request body models.CreateSessionRequest true "Case to customize"
// @Success     200 {object} models.SessionResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     502 {object} models.ErrorResponse
// @Router      /sessions [post]
func (h *SessionsHandler) CreateSession(c *gin.Context) {
	var req models.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.CaseID == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "case_id is required"})
		return
	}

	watchCase, parts, ok := h.takePrefetched(req.CaseID)
	if !ok {
		var err error
		watchCase, err = h.catalog.GetCase(req.CaseID)
		if err != nil {
			respondError(c, catalogError("get case", err))
			return
		}
		parts, err = customizer.FetchCompatibleParts(h.catalog, watchCase)
		if err != nil {
			respondError(c, err)
			return
		}
	}

	session := customizer.NewSession(watchCase, parts)
	h.store.Put(session)

	c.JSON(http.StatusOK, sessionResponse(session))
}

func (h *SessionsHandler) takePrefetched(caseID string) (*models.WatchCase, map[models.PartCategory][]models.WatchPart, bool) {
	if h.prefetcher == nil {
		return nil, nil, false
	}
	return h.prefetcher.Take(caseID)
}

func (h *SessionsHandler) session(c *gin.Context) (*customizer.Session, bool) {
	sessionID, err := uuid.Parse(c.Param("session_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid session id"})
		return nil, false
	}
	session, err := h.store.Get(sessionID)
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	return session, true
}

// GetSession godoc
// @Summary     Get session state
// @Description Returns the full wizard state: steps, current position, selection, compatible parts, total price, and preview layers
// @Tags        sessions
// @Accept      json
// @Produce     json
// @Param       session_id path string true "Session ID (UUID)"
// @Success     200 {object} models.SessionResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /sessions/{session_id} [get]
func (h *SessionsHandler) GetSession(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, sessionResponse(session))
}

// SelectColor godoc
// @Summary     Select a case color
// @Description Activates one of the case's color variants
// @Tags        sessions
// @Accept      json
// @Produce     json
// @Param       session_id path string true "Session ID (UUID)"
// @Param       request body models.SelectColorRequest true "Color variant name"
// @Success     200 {object} models.SessionResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /sessions/{session_id}/color [put]
func (h *SessionsHandler) SelectColor(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var req models.SelectColorRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Color == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "color is required"})
		return
	}

	if err := session.SelectColor(req.Color); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionResponse(session))
}

// SelectPart godoc
// @Summary     Select a part
// @Description Records the customer's part choice for one category. The part must be compatible with the session's case.
// @Tags        sessions
// @Accept      json
// @Produce     json
// @Param       session_id path string true "Session ID (UUID)"
// @Param       request body models.SelectPartRequest true "Category and part"
// @Success     200 {object} models.SessionResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /sessions/{session_id}/part [put]
func (h *SessionsHandler) SelectPart(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var req models.SelectPartRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.PartID == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "category and part_id are required"})
		return
	}

	if err := session.SelectPart(req.Category, req.PartID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionResponse(session))
}

// NextStep godoc
// @Summary     Advance to the next step
// @Description Moves the wizard one step forward. A no-op on the last step.
// @Tags        sessions
// @Accept      json
// @Produce     json
// @Param       session_id path string true "Session ID (UUID)"
// @Success     200 {object} models.SessionResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /sessions/{session_id}/next [post]
func (h *SessionsHandler) NextStep(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	session.Sequencer.Next()
	c.JSON(http.StatusOK, sessionResponse(session))
}

// PreviousStep godoc
// @Summary     Go back one step
// @Description Moves the wizard one step back. A no-op on the first step.
// @Tags        sessions
// @Accept      json
// @Produce     json
// @Param       session_id path string true "Session ID (UUID)"
// @Success     200 {object} models.SessionResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /sessions/{session_id}/previous [post]
func (h *SessionsHandler) PreviousStep(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	session.Sequencer.Previous()
	c.JSON(http.StatusOK, sessionResponse(session))
}

// SubmitOrder godoc
// @Summary     Submit the order
// @Description Validates contact fields, snapshots the session into an order, and persists it. The session is closed on success.
// @Tags        sessions
// @Accept      json
// @Produce     json
// @Param       session_id path string true "Session ID (UUID)"
// @Param       request body models.SubmitOrderRequest true "Customer contact fields"
// @Success     200 {object} models.SubmitOrderResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     502 {object} models.ErrorResponse
// @Router      /sessions/{session_id}/order [post]
func (h *SessionsHandler) SubmitOrder(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var req models.SubmitOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
		return
	}

	contact := orders.ContactInfo{
		Phone:         req.Phone,
		ContactMethod: req.ContactMethod,
		Comment:       req.Comment,
	}
	orderID, err := h.assembler.Submit(contact, session)
	if err != nil {
		respondError(c, err)
		return
	}

	session.OrderID = orderID
	totalPrice := session.Total()
	h.store.Delete(session.ID)

	if h.realtimeClient != nil {
		_ = h.realtimeClient.PublishOrderEvent(orderID, "order:created",
			supabase.OrderCreatedPayload(orderID, session.Case.Name, totalPrice))
	}

	c.JSON(http.StatusOK, models.SubmitOrderResponse{
		OrderID:    orderID,
		Status:     models.OrderStatusNew,
		TotalPrice: totalPrice,
	})
}
