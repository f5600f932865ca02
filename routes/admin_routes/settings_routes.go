package admin_routes

import (
	"github.com/Tazeen604/ZerZabar-sub002/controllers/admin/settings_controller"
	"github.com/gin-gonic/gin"
)

func SetupSettingsRoutes(rg *gin.RouterGroup) {
	settings := rg.Group("/settings")

	settings.GET("", settings_controller.GetSettings)
	settings.POST("", settings_controller.UpdateSettings)
}
