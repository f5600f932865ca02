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

// GetDashboardStats godoc
// @Summary Dashboard overview stats
// @Description Revenue, order and stock headline numbers for the dashboard landing page. Cached for a few minutes between upstream fetches.
// @Tags Admin - Reports
// @Produce json
// @Router /admin/reports/dashboard-stats [get]
func GetDashboardStats(c *gin.Context) {
	if stats, ok := report_cache.GetStats(); ok {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Dashboard stats retrieved successfully", stats))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	stats, err := client.WithToken(middleware.Token(c)).DashboardStats(ctx)
	if err != nil {
		log.Printf("[admin.reports.stats] upstream failed: %v", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to fetch dashboard stats"))
		return
	}

	report_cache.SetStats(stats)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Dashboard stats retrieved successfully", stats))
}
