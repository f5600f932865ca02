package admin_routes

import (
	"github.com/Tazeen604/ZerZabar-sub002/controllers/admin/notification_controller"
	"github.com/gin-gonic/gin"
)

func SetupNotificationRoutes(rg *gin.RouterGroup) {
	notifications := rg.Group("/notifications")

	notifications.GET("", notification_controller.GetNotifications)
	notifications.POST("/:id/read", notification_controller.MarkRead)
	notifications.POST("/read-all", notification_controller.MarkAllRead)
	notifications.DELETE("", notification_controller.ClearNotifications)
}
