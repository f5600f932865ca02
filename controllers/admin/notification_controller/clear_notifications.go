package notification_controller

import (
	"log"
	"net/http"

	"github.com/Tazeen604/ZerZabar-sub002/config"
	"github.com/Tazeen604/ZerZabar-sub002/models"
	"github.com/gin-gonic/gin"
)

// ClearNotifications godoc
// @Summary Delete all notifications
// @Tags Admin - Notifications
// @Produce json
// @Router /admin/notifications [delete]
func ClearNotifications(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := notifications.Clear(ctx); err != nil {
		log.Printf("[admin.notifications.clear] failed: %v", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to clear notifications"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Notifications cleared", nil))
}
