package admin_routes

import (
	"github.com/Tazeen604/ZerZabar-sub002/controllers/admin/inventory_controller"
	"github.com/gin-gonic/gin"
)

func SetupInventoryRoutes(rg *gin.RouterGroup) {
	inventory := rg.Group("/inventory")

	inventory.GET("", inventory_controller.GetInventory)
	inventory.GET("/low-stock", inventory_controller.GetLowStock)
	inventory.POST("/:id/adjust", inventory_controller.AdjustInventory)
}
