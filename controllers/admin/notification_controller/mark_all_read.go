package notification_controller

import (
	"log"
	"net/http"

	"github.com/Tazeen604/ZerZabar-sub002/config"
	"github.com/Tazeen604/ZerZabar-sub002/models"
	"github.com/gin-gonic/gin"
)

// MarkAllRead godoc
// @Summary Mark all notifications read
// @Tags Admin - Notifications
// @Produce json
// @Router /admin/notifications/read-all [post]
func MarkAllRead(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := notifications.MarkAllAsRead(ctx); err != nil {
		log.Printf("[admin.notifications.read-all] failed: %v", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to mark notifications read"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "All notifications marked read", gin.H{
		"unread_count": 0,
	}))
}
