package notification_controller

import (
	"net/http"
	"strconv"

	"github.com/Tazeen604/ZerZabar-sub002/models"
	"github.com/gin-gonic/gin"
)

// GetNotifications godoc
// @Summary List notifications
// @Description Return the poller's local notification view with the unread count. recent=N limits to the N newest by created time.
// @Tags Admin - Notifications
// @Produce json
// @Param recent query int false "Limit to N most recent"
// @Router /admin/notifications [get]
func GetNotifications(c *gin.Context) {
	snapshot := notifications.Snapshot()

	if recentStr := c.Query("recent"); recentStr != "" {
		n, err := strconv.Atoi(recentStr)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid recent value"))
			return
		}
		snapshot.Notifications = notifications.Recent(n)
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Notifications retrieved successfully", snapshot))
}
