package notification_controller

import (
	"log"
	"net/http"
	"strings"

	"github.com/Tazeen604/ZerZabar-sub002/config"
	"github.com/Tazeen604/ZerZabar-sub002/models"
	"github.com/gin-gonic/gin"
)

// MarkRead godoc
// @Summary Mark one notification read
// @Description Flip a notification's read flag. Local state only changes after the storefront acknowledges.
// @Tags Admin - Notifications
// @Produce json
// @Param id path string true "Notification ID"
// @Router /admin/notifications/{id}/read [post]
func MarkRead(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Notification ID is required"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := notifications.MarkAsRead(ctx, id); err != nil {
		log.Printf("[admin.notifications.read] failed id=%s: %v", id, err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to mark notification read"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Notification marked read", gin.H{
		"unread_count": notifications.UnreadCount(),
	}))
}
