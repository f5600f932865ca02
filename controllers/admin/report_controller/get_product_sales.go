package report_controller

import (
	"log"
	"net/http"

	report_cache "github.com/Tazeen604/ZerZabar-sub002/cache"
	"github.com/Tazeen604/ZerZabar-sub002/config"
	"github.com/Tazeen604/ZerZabar-sub002/middleware"
	"github.com/Tazeen604/ZerZabar-sub002/models"
	"github.com/gin-gonic/gin"
)

// GetProductSales godoc
// @Summary Product sales report
// @Description Per-product units sold and revenue over a date range.
// @Tags Admin - Reports
// @Produce json
// @Param start_date query string false "Start date"
// @Param end_date query string false "End date"
// @Router /admin/reports/product-sales [get]
func GetProductSales(c *gin.Context) {
	var q models.SalesReportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid query parameters"))
		return
	}

	key := c.Request.URL.RawQuery
	if rows, ok := report_cache.GetProductSales(key); ok {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Product sales retrieved successfully", rows))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	rows, err := client.WithToken(middleware.Token(c)).ProductSales(ctx, q)
	if err != nil {
		log.Printf("[admin.reports.product-sales] upstream failed: %v", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to fetch product sales"))
		return
	}

	report_cache.SetProductSales(key, rows)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product sales retrieved successfully", rows))
}
