package inventory_controller

import (
	"log"
	"net/http"

	"github.com/Tazeen604/ZerZabar-sub002/config"
	"github.com/Tazeen604/ZerZabar-sub002/middleware"
	"github.com/Tazeen604/ZerZabar-sub002/models"
	"github.com/gin-gonic/gin"
)

// GetLowStock godoc
// @Summary Low stock report
// @Description Retrieve the storefront's low-stock items, annotated with the threshold-derived status label.
// @Tags Admin - Inventory
// @Produce json
// @Router /admin/inventory/low-stock [get]
func GetLowStock(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	items, err := client.WithToken(middleware.Token(c)).LowStock(ctx)
	if err != nil {
		log.Printf("[admin.inventory.low-stock] upstream failed: %v", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to fetch low stock items"))
		return
	}

	for i := range items {
		items[i].StockStatus = settings.StockStatus(ctx, items[i].Available)
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Low stock items retrieved successfully", items))
}
