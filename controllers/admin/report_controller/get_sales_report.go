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

// GetSalesReport godoc
// @Summary Sales report
// @Description Sales chart buckets for a date range, passed through to the storefront reports endpoint. Distinct ranges cache independently.
// @Tags Admin - Reports
// @Produce json
// @Param start_date query string false "Start date"
// @Param end_date query string false "End date"
// @Param group_by query string false "Bucketing (day, month)"
// @Router /admin/reports/sales [get]
func GetSalesReport(c *gin.Context) {
	var q models.SalesReportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid query parameters"))
		return
	}

	key := c.Request.URL.RawQuery
	if points, ok := report_cache.GetSales(key); ok {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Sales report retrieved successfully", points))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	points, err := client.WithToken(middleware.Token(c)).SalesReport(ctx, q)
	if err != nil {
		log.Printf("[admin.reports.sales] upstream failed: %v", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to fetch sales report"))
		return
	}

	report_cache.SetSales(key, points)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Sales report retrieved successfully", points))
}
