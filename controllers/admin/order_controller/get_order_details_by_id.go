package order_controller

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/Tazeen604/ZerZabar-sub002/config"
	"github.com/Tazeen604/ZerZabar-sub002/middleware"
	"github.com/Tazeen604/ZerZabar-sub002/models"
	"github.com/Tazeen604/ZerZabar-sub002/services"
	"github.com/Tazeen604/ZerZabar-sub002/status"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type orderDetails struct {
	models.Order
	StatusMeta status.DisplayMeta `json:"status_meta"`
}

// GetOrderDetailsByID godoc
// @Summary Get order details
// @Description Retrieve full order details including customer, items and status display metadata
// @Tags Admin - Orders
// @Produce json
// @Param id path string true "Order ID"
// @Router /admin/orders/{id} [get]
func GetOrderDetailsByID(c *gin.Context) {
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

	log.Printf("[admin.order-details] fetching order: %s", orderID.String())

	ctx, cancel := config.WithTimeout()
	defer cancel()

	order, err := client.WithToken(middleware.Token(c)).GetOrder(ctx, orderID.String())
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			log.Printf("[admin.order-details] order not found: %s", orderID.String())
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
			return
		}
		// serve the held copy if we have one
		if held, ok := orders.Get(orderID.String()); ok {
			log.Printf("[admin.order-details] upstream failed, serving held copy: %v", err)
			c.JSON(http.StatusOK, models.SuccessResponse(c, "Storefront unreachable, showing last fetched order", orderDetails{
				Order:      held,
				StatusMeta: status.Meta(status.Status(held.Status)),
			}))
			return
		}
		log.Printf("[admin.order-details] ERROR fetching order: %v", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to fetch order"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order retrieved successfully", orderDetails{
		Order:      *order,
		StatusMeta: status.Meta(status.Status(order.Status)),
	}))
}
