package admin_routes

import (
	"github.com/Tazeen604/ZerZabar-sub002/controllers/admin/order_controller"
	"github.com/gin-gonic/gin"
)

func SetupOrderRoutes(rg *gin.RouterGroup) {
	order := rg.Group("/orders")

	order.GET("", order_controller.GetOrders)
	order.GET("/filter", order_controller.FilterOrders)
	order.GET("/:id", order_controller.GetOrderDetailsByID)
	order.GET("/:id/invoice", order_controller.DownloadOrderInvoicePDF)
	order.POST("/:id/send-invoice", order_controller.SendOrderInvoice)

	// Status change is the only write operation for orders
	order.PATCH("/:id/status", order_controller.UpdateOrderStatus)
}
