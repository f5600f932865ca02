package order_controller

import (
	"log"
	"net/http"
	"strings"

	"github.com/Tazeen604/ZerZabar-sub002/config"
	"github.com/Tazeen604/ZerZabar-sub002/middleware"
	"github.com/Tazeen604/ZerZabar-sub002/models"
	"github.com/Tazeen604/ZerZabar-sub002/utils"
	"github.com/gin-gonic/gin"
)

// FilterOrders godoc
// @Summary Filter orders by date
// @Description Run the storefront date filter: either a named filter (filter=today) or an explicit start_date/end_date pair.
// @Tags Admin - Orders
// @Produce json
// @Param filter query string false "Named filter (today)"
// @Param start_date query string false "Start date (RFC3339 or YYYY-MM-DD)"
// @Param end_date query string false "End date (RFC3339 or YYYY-MM-DD)"
// @Router /admin/orders/filter [get]
func FilterOrders(c *gin.Context) {
	filter := strings.TrimSpace(c.Query("filter"))
	startDate := strings.TrimSpace(c.Query("start_date"))
	endDate := strings.TrimSpace(c.Query("end_date"))

	if filter == "" {
		if startDate == "" || endDate == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Provide filter=today or both start_date and end_date"))
			return
		}
		if _, err := utils.ParseTimeFlexible(startDate); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
			return
		}
		if _, err := utils.ParseTimeFlexible(endDate); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
			return
		}
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	list, err := client.WithToken(middleware.Token(c)).FilterOrders(ctx, filter, startDate, endDate)
	if err != nil {
		log.Printf("[admin.orders.filter] upstream failed: %v", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to filter orders"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Orders retrieved successfully", list))
}
