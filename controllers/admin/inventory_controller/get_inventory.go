package inventory_controller

import (
	"log"
	"net/http"

	"github.com/Tazeen604/ZerZabar-sub002/config"
	"github.com/Tazeen604/ZerZabar-sub002/middleware"
	"github.com/Tazeen604/ZerZabar-sub002/models"
	"github.com/gin-gonic/gin"
)

type inventoryRow struct {
	models.Product
	StockStatus string `json:"stock_status"`
}

// GetInventory godoc
// @Summary List inventory
// @Description Retrieve products with their stock counts. Stock status labels are derived from the configured thresholds; available counts come from the storefront and are never recomputed here.
// @Tags Admin - Inventory
// @Produce json
// @Param q query string false "Search by name or SKU"
// @Param stock_status query string false "Filter by stock status (in_stock, low_stock, out_of_stock)"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Router /admin/inventory [get]
func GetInventory(c *gin.Context) {
	var q models.InventoryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid query parameters"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	products, err := client.WithToken(middleware.Token(c)).ListInventory(ctx, q)
	if err != nil {
		log.Printf("[admin.inventory] upstream failed: %v", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to fetch inventory"))
		return
	}

	rows := make([]inventoryRow, 0, len(products))
	for _, p := range products {
		label := settings.StockStatus(ctx, p.Available)
		if q.StockStatus != "" && q.StockStatus != label {
			continue
		}
		rows = append(rows, inventoryRow{Product: p, StockStatus: label})
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Inventory retrieved successfully", rows))
}
