package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"watch-atelier-backend/internal/models"
	"watch-atelier-backend/internal/supabase"
)

// AdminPartsHandler is the administrator CRUD surface for watch parts.
type AdminPartsHandler struct {
	dbClient *supabase.DatabaseClient
}

func NewAdminPartsHandler(dbClient *supabase.DatabaseClient) *AdminPartsHandler {
	return &AdminPartsHandler{dbClient: dbClient}
}

func (h *AdminPartsHandler) bindPart(c *gin.Context) (*models.PartRequest, bool) {
	var req models.PartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return nil, false
	}
	if req.Name == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "name is required"})
		return nil, false
	}
	if !req.Category.Valid() {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "unknown part category"})
		return nil, false
	}
	return &req, true
}

// ListParts godoc
// @Summary     List watch parts
// @Description Returns parts, optionally filtered by category
// @Tags        admin
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       category query string false "Part category (dial, hands, rotor, strap, bezel)"
// @Success     200 {object} models.PartListResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /admin/parts [get]
func (h *AdminPartsHandler) ListParts(c *gin.Context) {
	if h.dbClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	category := models.PartCategory(c.Query("category"))
	if category != "" && !category.Valid() {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "unknown part category"})
		return
	}

	parts, err := h.dbClient.ListParts(category)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to list parts", Message: err.Error()})
		return
	}

	responses := make([]models.PartResponse, 0, len(parts))
	for i := range parts {
		responses = append(responses, partResponse(&parts[i]))
	}
	c.JSON(http.StatusOK, models.PartListResponse{Parts: responses})
}

// CreatePart godoc
// @Summary     Create a watch part
// @Tags        admin
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.PartRequest true "Part definition"
// @Success     200 {object} models.PartResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /admin/parts [post]
func (h *AdminPartsHandler) CreatePart(c *gin.Context) {
	if h.dbClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	req, ok := h.bindPart(c)
	if !ok {
		return
	}

	part, err := h.dbClient.CreatePart(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to create part", Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, partResponse(part))
}

// UpdatePart godoc
// @Summary     Update a watch part
// @Tags        admin
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       part_id path string true "Part ID (UUID)"
// @Param       request body models.PartRequest true "Part definition"
// @Success     200 {object} models.PartResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /admin/parts/{part_id} [put]
func (h *AdminPartsHandler) UpdatePart(c *gin.Context) {
	if h.dbClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	req, ok := h.bindPart(c)
	if !ok {
		return
	}

	part, err := h.dbClient.UpdatePart(c.Param("part_id"), req)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "part not found", Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, partResponse(part))
}

// DeletePart godoc
// @Summary     Delete a watch part
// @Tags        admin
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       part_id path string true "Part ID (UUID)"
// @Success     200 {object} map[string]string "message"
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /admin/parts/{part_id} [delete]
func (h *AdminPartsHandler) DeletePart(c *gin.Context) {
	if h.dbClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	if err := h.dbClient.DeletePart(c.Param("part_id")); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to delete part", Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "part deleted successfully"})
}
