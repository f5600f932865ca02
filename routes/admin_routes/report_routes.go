package admin_routes

import (
	"github.com/Tazeen604/ZerZabar-sub002/controllers/admin/report_controller"
	"github.com/gin-gonic/gin"
)

func SetupReportRoutes(rg *gin.RouterGroup) {
	reports := rg.Group("/reports")

	reports.GET("/dashboard-stats", report_controller.GetDashboardStats)
	reports.GET("/sales", report_controller.GetSalesReport)
	reports.GET("/product-sales", report_controller.GetProductSales)
}
