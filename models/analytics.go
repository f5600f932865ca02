package models

// DashboardStats is the overview card data for the dashboard landing page.
type DashboardStats struct {
	TotalRevenue         float64 `json:"total_revenue"`
	RevenueGrowthPercent float64 `json:"revenue_growth_percent"`
	TotalOrders          int     `json:"total_orders"`
	OrdersGrowthPercent  float64 `json:"orders_growth_percent"`
	PendingOrders        int     `json:"pending_orders"`
	LowStockProducts     int     `json:"low_stock_products"`
}

// SalesPoint is one bucket of the sales chart.
type SalesPoint struct {
	Period  string  `json:"period"` // day or month label
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
}

// ProductSalesRow is one row of the product sales report.
type ProductSalesRow struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	UnitsSold   int     `json:"units_sold"`
	Revenue     float64 `json:"revenue"`
}

// SalesReportQuery binds the report query params passed through upstream.
type SalesReportQuery struct {
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	GroupBy   string `form:"group_by"`
}
