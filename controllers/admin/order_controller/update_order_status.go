package order_controller

import (
	"errors"
	"log"
	"net/http"
	"strings"

	report_cache "github.com/Tazeen604/ZerZabar-sub002/cache"
	"github.com/Tazeen604/ZerZabar-sub002/config"
	"github.com/Tazeen604/ZerZabar-sub002/middleware"
	"github.com/Tazeen604/ZerZabar-sub002/models"
	"github.com/Tazeen604/ZerZabar-sub002/services"
	"github.com/Tazeen604/ZerZabar-sub002/status"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UpdateOrderStatus godoc
// @Summary Update order status
// @Description Validate and apply an order status change. Without confirm=true the request only validates the transition and reports what confirmation would commit. admin_notes is required when cancelling.
// @Tags Admin - Orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID (UUID)"
// @Param payload body models.UpdateOrderStatusRequest true "Update payload"
// @Router /admin/orders/{id}/status [patch]
func UpdateOrderStatus(c *gin.Context) {
	log.Printf("[admin.order.update] start path=%s method=%s", c.FullPath(), c.Request.Method)

	orderIDStr := strings.TrimSpace(c.Param("id"))
	if orderIDStr == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Order ID is required"))
		return
	}
	orderID, err := uuid.Parse(orderIDStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid order ID"))
		return
	}

	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[admin.order.update] bad request: bind json err=%v", err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	// admin_notes supported for all statuses, but required for cancelled
	if status.BackendValue(req.Status) == status.Cancelled {
		if req.AdminNotes == nil || strings.TrimSpace(*req.AdminNotes) == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "admin_notes is required when cancelling an order"))
			return
		}
	}

	authedClient := client.WithToken(middleware.Token(c))

	// current status from the held page, falling back to upstream
	current := ""
	if held, ok := orders.Get(orderID.String()); ok {
		current = held.Status
	} else {
		ctx, cancel := config.WithTimeout()
		defer cancel()
		order, err := authedClient.GetOrder(ctx, orderID.String())
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
				return
			}
			log.Printf("[admin.order.update] ERROR fetching current status: %v", err)
			c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to fetch order"))
			return
		}
		current = order.Status
	}

	pending, err := transitions.Request(orderID.String(), current, req.Status, req.AdminNotes)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTransitionInFlight):
			c.JSON(http.StatusConflict, models.ErrorResponse(c, err.Error()))
		default:
			// policy denial: specific message, no upstream call happened
			log.Printf("[admin.order.update] denied %s -> %s: %v", current, req.Status, err)
			c.JSON(http.StatusConflict, models.ErrorResponse(c, err.Error()))
		}
		return
	}

	if !req.Confirm {
		// validation pass only; drop the pending change
		transitions.Cancel(orderID.String())
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Confirmation required", models.UpdateOrderStatusResponse{
			ID:                   orderID.String(),
			RequiresConfirmation: true,
			CurrentStatus:        string(pending.From),
			RequestedStatus:      string(pending.To),
		}))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	settled, err := transitions.ConfirmUsing(ctx, authedClient, orderID.String())
	if err != nil {
		log.Printf("[admin.order.update] commit failed: %v", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, err.Error()))
		return
	}

	// sales figures may have shifted
	report_cache.Invalidate()

	log.Printf("[admin.order.update] success order=%s status=%s", settled.ID, settled.Status)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order updated successfully", models.UpdateOrderStatusResponse{
		ID:          settled.ID,
		OrderNumber: settled.OrderNumber,
		Status:      settled.Status,
	}))
}
