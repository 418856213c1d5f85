package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"watch-atelier-backend/internal/models"
	"watch-atelier-backend/internal/supabase"
)

// AdminOrdersHandler is the administrator surface over submitted
// orders: listing, status transitions, notes, deletion.
type AdminOrdersHandler struct {
	dbClient       *supabase.DatabaseClient
	realtimeClient *supabase.RealtimeClient
}

func NewAdminOrdersHandler(dbClient *supabase.DatabaseClient, realtimeClient *supabase.RealtimeClient) *AdminOrdersHandler {
	return &AdminOrdersHandler{
		dbClient:       dbClient,
		realtimeClient: realtimeClient,
	}
}

// ListOrders godoc
// @Summary     List orders
// @Description Returns all submitted orders, newest first
// @Tags        admin
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.OrderListResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /admin/orders [get]
func (h *AdminOrdersHandler) ListOrders(c *gin.Context) {
	if h.dbClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	orders, err := h.dbClient.ListOrders()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to list orders", Message: err.Error()})
		return
	}

	summaries := make([]models.OrderSummary, 0, len(orders))
	for _, order := range orders {
		summaries = append(summaries, models.OrderSummary{
			ID:         order.ID.String(),
			Phone:      order.Phone,
			CaseName:   order.Components.CaseName,
			TotalPrice: order.TotalPrice,
			Status:     order.Status,
			CreatedAt:  order.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, models.OrderListResponse{Orders: summaries})
}

// GetOrder godoc
// @Summary     Get order details
// @Tags        admin
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       order_id path string true "Order ID (UUID)"
// @Success     200 {object} models.OrderResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /admin/orders/{order_id} [get]
func (h *AdminOrdersHandler) GetOrder(c *gin.Context) {
	if h.dbClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	order, err := h.dbClient.GetOrder(c.Param("order_id"))
	if err != nil {
		respondError(c, catalogError("get order", err))
		return
	}
	c.JSON(http.StatusOK, orderResponse(order))
}

// UpdateOrderStatus godoc
// @Summary     Update order status
// @Description Transitions an order to a new status and appends a status-history entry
// @Tags        admin
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       order_id path string true "Order ID (UUID)"
// @Param       request body models.OrderStatusRequest true "New status and optional note"
// @Success     200 {object} models.OrderResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /admin/orders/{order_id}/status [put]
func (h *AdminOrdersHandler) UpdateOrderStatus(c *gin.Context) {
	if h.dbClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	var req models.OrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
		return
	}
	switch req.Status {
	case models.OrderStatusNew, models.OrderStatusProcessing, models.OrderStatusCompleted, models.OrderStatusCancelled:
	default:
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "unknown order status"})
		return
	}

	order, err := h.dbClient.UpdateOrderStatus(c.Param("order_id"), req.Status, req.Note)
	if err != nil {
		respondError(c, catalogError("update order status", err))
		return
	}

	if h.realtimeClient != nil {
		_ = h.realtimeClient.PublishOrderEvent(order.ID.String(), "order:status",
			supabase.OrderStatusChangedPayload(order.ID.String(), order.Status))
	}

	c.JSON(http.StatusOK, orderResponse(order))
}

// SetOrderNotes godoc
// @Summary     Attach admin notes to an order
// @Tags        admin
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       order_id path string true "Order ID (UUID)"
// @Param       request body models.OrderNoteRequest true "Note text"
// @Success     200 {object} map[string]string "message"
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /admin/orders/{order_id}/notes [put]
func (h *AdminOrdersHandler) SetOrderNotes(c *gin.Context) {
	if h.dbClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	var req models.OrderNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
		return
	}

	if err := h.dbClient.SetOrderNotes(c.Param("order_id"), req.Note); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to set notes", Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "notes saved"})
}

// DeleteOrder godoc
// @Summary     Delete an order
// @Tags        admin
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       order_id path string true "Order ID (UUID)"
// @Success     200 {object} map[string]string "message"
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /admin/orders/{order_id} [delete]
func (h *AdminOrdersHandler) DeleteOrder(c *gin.Context) {
	if h.dbClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	if err := h.dbClient.DeleteOrder(c.Param("order_id")); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to delete order", Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "order deleted successfully"})
}
