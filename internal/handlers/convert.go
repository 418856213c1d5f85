package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"watch-atelier-backend/internal/customizer"
	"watch-atelier-backend/internal/models"
)

func caseResponse(watchCase *models.WatchCase) models.CaseResponse {
	colors := watchCase.Colors
	if colors == nil {
		colors = []models.CaseColor{}
	}
	return models.CaseResponse{
		ID:             watchCase.ID.String(),
		Name:           watchCase.Name,
		Image:          watchCase.Image,
		Colors:         colors,
		AvailableParts: watchCase.AvailableParts,
		Price:          watchCase.Price,
		CreatedAt:      watchCase.CreatedAt,
		UpdatedAt:      watchCase.UpdatedAt,
	}
}

func partResponse(part *models.WatchPart) models.PartResponse {
	compatible := part.CompatibleCases
	if compatible == nil {
		compatible = []string{}
	}
	return models.PartResponse{
		ID:              part.ID.String(),
		Name:            part.Name,
		Image:           part.Image,
		Category:        part.Category,
		CompatibleCases: compatible,
		Price:           part.Price,
		CreatedAt:       part.CreatedAt,
		UpdatedAt:       part.UpdatedAt,
	}
}

func sessionResponse(session *customizer.Session) models.SessionResponse {
	steps := make([]models.StepResponse, 0, len(session.Sequencer.Steps()))
	for _, step := range session.Sequencer.Steps() {
		steps = append(steps, models.StepResponse{Kind: string(step.Kind), Title: step.Title})
	}

	selection := models.SelectionResponse{
		Color: session.Selection.Color(),
		Parts: make(map[string]models.SelectedPartResponse),
	}
	compatible := make(map[string][]models.PartResponse)
	for _, category := range models.PartCategories() {
		if part, ok := session.Selection.Part(category); ok {
			selection.Parts[string(category)] = models.SelectedPartResponse{
				PartID: part.PartID,
				Name:   part.Name,
			}
		}
		list := make([]models.PartResponse, 0, len(session.Parts[category]))
		for i := range session.Parts[category] {
			list = append(list, partResponse(&session.Parts[category][i]))
		}
		compatible[string(category)] = list
	}

	layers := make([]models.LayerResponse, 0)
	for _, layer := range session.Layers() {
		layers = append(layers, models.LayerResponse{
			Category: layer.Category,
			Image:    layer.Image,
			ZIndex:   layer.ZIndex,
		})
	}

	return models.SessionResponse{
		SessionID:       session.ID.String(),
		Case:            caseResponse(session.Case),
		Steps:           steps,
		CurrentStep:     session.Sequencer.Index(),
		Selection:       selection,
		CompatibleParts: compatible,
		TotalPrice:      session.Total(),
		Layers:          layers,
	}
}

func orderResponse(order *models.Order) models.OrderResponse {
	response := models.OrderResponse{
		ID:            order.ID.String(),
		Phone:         order.Phone,
		ContactMethod: order.ContactMethod,
		Comment:       order.Comment,
		Components:    order.Components,
		ComponentIDs:  order.ComponentIDs,
		TotalPrice:    order.TotalPrice,
		Status:        order.Status,
		StatusHistory: order.StatusHistory,
		CreatedAt:     order.CreatedAt,
	}
	if order.AdminNotes.Valid {
		response.AdminNotes = order.AdminNotes.String
	}
	return response
}

// catalogError keeps lookup misses as-is and wraps everything else as
// a catalog read failure, so a down database answers 502, never a
// misleading 404.
func catalogError(op string, err error) error {
	var notFound *customizer.NotFoundError
	if errors.As(err, &notFound) {
		return err
	}
	var fetch *customizer.FetchError
	if errors.As(err, &fetch) {
		return err
	}
	return &customizer.FetchError{Op: op, Err: err}
}

// respondError maps the customization error taxonomy onto HTTP status
// codes. Anything outside the taxonomy is an internal error.
func respondError(c *gin.Context, err error) {
	var (
		notFound   *customizer.NotFoundError
		validation *customizer.ValidationError
		fetch      *customizer.FetchError
		submission *customizer.SubmissionError
	)
	switch {
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "not found", Message: err.Error()})
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "validation failed", Message: err.Error()})
	case errors.As(err, &fetch):
		c.JSON(http.StatusBadGateway, models.ErrorResponse{Error: "catalog unavailable", Message: err.Error()})
	case errors.As(err, &submission):
		c.JSON(http.StatusBadGateway, models.ErrorResponse{Error: "submission failed", Message: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "internal error", Message: err.Error()})
	}
}
