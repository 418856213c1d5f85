package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"watch-atelier-backend/internal/customizer"
	"watch-atelier-backend/internal/models"
	"watch-atelier-backend/internal/services"
)

// CasesHandler serves the public catalog reads the case-picker page
// uses before a customization session starts.
type CasesHandler struct {
	catalog    customizer.Catalog
	prefetcher *services.Prefetcher
}

func NewCasesHandler(catalog customizer.Catalog, prefetcher *services.Prefetcher) *CasesHandler {
	return &CasesHandler{
		catalog:    catalog,
		prefetcher: prefetcher,
	}
}

// ListCases godoc
// @Summary     List watch cases
// @Description Returns all watch cases available for customization, alphabetical by name
// @Tags        cases
// @Accept      json
// @Produce     json
// @Success     200 {object} models.CaseListResponse
// @Failure     502 {object} models.ErrorResponse
// @Router      /cases [get]
func (h *CasesHandler) ListCases(c *gin.Context) {
	cases, err := h.catalog.ListCases()
	if err != nil {
		respondError(c, &customizer.FetchError{Op: "list cases", Err: err})
		return
	}

	responses := make([]models.CaseResponse, 0, len(cases))
	for i := range cases {
		responses = append(responses, caseResponse(&cases[i]))
	}
	c.JSON(http.StatusOK, models.CaseListResponse{Cases: responses})
}

// GetCase godoc
// @Summary     Get a watch case
// @Description Returns one watch case. Also warms the compatible-parts cache so a session for this case opens instantly.
// @Tags        cases
// @Accept      json
// @Produce     json
// @Param       case_id path string true "Case ID (UUID)"
// @Success     200 {object} models.CaseResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /cases/{case_id} [get]
func (h *CasesHandler) GetCase(c *gin.Context) {
	caseID := c.Param("case_id")

	watchCase, err := h.catalog.GetCase(caseID)
	if err != nil {
		respondError(c, catalogError("get case", err))
		return
	}

	// The customer is likely about to customize this case.
	if h.prefetcher != nil {
		h.prefetcher.Prefetch(caseID)
	}

	c.JSON(http.StatusOK, caseResponse(watchCase))
}
