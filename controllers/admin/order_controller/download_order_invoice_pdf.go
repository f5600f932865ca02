package order_controller

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/Tazeen604/ZerZabar-sub002/config"
	"github.com/Tazeen604/ZerZabar-sub002/middleware"
	"github.com/Tazeen604/ZerZabar-sub002/models"
	"github.com/Tazeen604/ZerZabar-sub002/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DownloadOrderInvoicePDF godoc
// @Summary Download order invoice PDF
// @Description Generate and download an invoice PDF for the order
// @Tags Admin - Orders
// @Produce octet-stream
// @Param id path string true "Order ID"
// @Router /admin/orders/{id}/invoice [get]
func DownloadOrderInvoicePDF(c *gin.Context) {
	orderID := c.Param("id")
	log.Printf("[admin.order.invoice] request for order: %s", orderID)

	if _, err := uuid.Parse(orderID); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid order ID"))
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
		log.Printf("[admin.order.invoice] upstream failed: %v", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to fetch order"))
		return
	}

	pdfBuffer := generateOrderInvoicePDF(order)
	if pdfBuffer.Len() == 0 {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to generate invoice"))
		return
	}

	filename := fmt.Sprintf("invoice-%s.pdf", order.OrderNumber)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Length", fmt.Sprintf("%d", pdfBuffer.Len()))
	c.Data(http.StatusOK, "application/pdf", pdfBuffer.Bytes())

	log.Printf("[admin.order.invoice] invoice downloaded for order %s", orderID)
}
