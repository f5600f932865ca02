package order_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/Tazeen604/ZerZabar-sub002/config"
	"github.com/Tazeen604/ZerZabar-sub002/middleware"
	"github.com/Tazeen604/ZerZabar-sub002/models"
	"github.com/Tazeen604/ZerZabar-sub002/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SendOrderInvoice godoc
// @Summary Email order invoice to customer
// @Description Generate the invoice PDF and email it to the order's customer
// @Tags Admin - Orders
// @Produce json
// @Param id path string true "Order ID"
// @Router /admin/orders/{id}/send-invoice [post]
func SendOrderInvoice(c *gin.Context) {
	orderID := c.Param("id")
	log.Printf("[admin.order.send-invoice] request for order: %s", orderID)

	if _, err := uuid.Parse(orderID); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid order ID"))
		return
	}

	resend := services.NewResendClient()
	if resend == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Invoice email is not configured"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	order, err := client.WithToken(middleware.Token(c)).GetOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
			return
		}
		log.Printf("[admin.order.send-invoice] upstream failed: %v", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to fetch order"))
		return
	}

	if order.Customer.Email == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Customer email not found"))
		return
	}

	pdfBuffer := generateOrderInvoicePDF(order)

	// deliver in the background; the admin does not wait on SMTP
	go func(o models.Order, pdf []byte) {
		if err := resend.SendOrderInvoice(&o, pdf); err != nil {
			log.Printf("[admin.order.send-invoice] send failed for order %s: %v", o.OrderNumber, err)
		}
	}(*order, pdfBuffer.Bytes())

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Invoice email queued", gin.H{
		"order_number": order.OrderNumber,
		"recipient":    order.Customer.Email,
	}))
}
