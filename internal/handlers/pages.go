package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"watch-atelier-backend/internal/models"
	"watch-atelier-backend/internal/supabase"
)

// PagesHandler serves static page content (about, contacts) and the
// admin editor behind it.
type PagesHandler struct {
	dbClient *supabase.DatabaseClient
}

func NewPagesHandler(dbClient *supabase.DatabaseClient) *PagesHandler {
	return &PagesHandler{dbClient: dbClient}
}

// GetPage godoc
// @Summary     Get page content
// @Description Returns a static content page by slug
// @Tags        pages
// @Accept      json
// @Produce     json
// @Param       page_id path string true "Page slug"
// @Success     200 {object} models.PageResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /pages/{page_id} [get]
func (h *PagesHandler) GetPage(c *gin.Context) {
	if h.dbClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	pageID := c.Param("page_id")
	page, err := h.dbClient.GetPage(pageID)
	if err != nil {
		respondError(c, catalogError("get page", err))
		return
	}

	c.JSON(http.StatusOK, models.PageResponse{
		ID:        page.ID,
		Title:     page.Title,
		Content:   page.Content,
		UpdatedAt: page.UpdatedAt,
	})
}

// UpdatePage godoc
// @Summary     Update page content
// @Description Creates or updates a static content page
// @Tags        admin
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       page_id path string true "Page slug"
// @Param       request body models.PageRequest true "Page content"
// @Success     200 {object} models.PageResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /admin/pages/{page_id} [put]
func (h *PagesHandler) UpdatePage(c *gin.Context) {
	if h.dbClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	pageID := c.Param("page_id")

	var req models.PageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
		return
	}

	page, err := h.dbClient.UpsertPage(pageID, req.Title, req.Content)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to update page", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.PageResponse{
		ID:        page.ID,
		Title:     page.Title,
		Content:   page.Content,
		UpdatedAt: page.UpdatedAt,
	})
}
