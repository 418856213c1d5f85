package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"watch-atelier-backend/internal/models"
	"watch-atelier-backend/internal/supabase"
)

// AdminCasesHandler is the administrator CRUD surface for watch cases.
type AdminCasesHandler struct {
	dbClient *supabase.DatabaseClient
}

func NewAdminCasesHandler(dbClient *supabase.DatabaseClient) *AdminCasesHandler {
	return &AdminCasesHandler{dbClient: dbClient}
}

func (h *AdminCasesHandler) bindCase(c *gin.Context) (*models.CaseRequest, bool) {
	var req models.CaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return nil, false
	}
	if req.Name == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "name is required"})
		return nil, false
	}
	return &req, true
}

// CreateCase godoc
// @Summary     Create a watch case
// @Tags        admin
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.CaseRequest true "Case definition"
// @Success     200 {object} models.CaseResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /admin/cases [post]
func (h *AdminCasesHandler) CreateCase(c *gin.Context) {
	if h.dbClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	req, ok := h.bindCase(c)
	if !ok {
		return
	}

	watchCase, err := h.dbClient.CreateCase(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to create case", Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, caseResponse(watchCase))
}

// UpdateCase godoc
// @Summary     Update a watch case
// @Tags        admin
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       case_id path string true "Case ID (UUID)"
// @Param       request body models.CaseRequest true "Case definition"
// @Success     200 {object} models.CaseResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /admin/cases/{case_id} [put]
func (h *AdminCasesHandler) UpdateCase(c *gin.Context) {
	if h.dbClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	req, ok := h.bindCase(c)
	if !ok {
		return
	}

	watchCase, err := h.dbClient.UpdateCase(c.Param("case_id"), req)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "case not found", Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, caseResponse(watchCase))
}

// DeleteCase godoc
// @Summary     Delete a watch case
// @Tags        admin
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       case_id path string true "Case ID (UUID)"
// @Success     200 {object} map[string]string "message"
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /admin/cases/{case_id} [delete]
func (h *AdminCasesHandler) DeleteCase(c *gin.Context) {
	if h.dbClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	if err := h.dbClient.DeleteCase(c.Param("case_id")); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to delete case", Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "case deleted successfully"})
}
