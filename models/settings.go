package models

// Settings is the flat key -> scalar configuration map served by the
// storefront backend. Values are numbers, booleans or strings.
type Settings map[string]any

// DefaultSettings is the fallback used when GET /admin/settings fails.
// Every known key must resolve to something, so consumers never see a hole.
func DefaultSettings() Settings {
	return Settings{
		"low_stock_threshold":      10,
		"new_arrivals_days":        7,
		"out_of_stock_threshold":   0,
		"max_product_images":       5,
		"auto_approve_products":    false,
		"require_product_approval": true,
		"order_auto_confirm":       false,
		"order_confirmation_email": true,
		"low_stock_notification":   true,
		"maintenance_mode":         false,
		"debug_mode":               false,
		"backup_frequency":         "daily",
		"email_notifications":      true,
		"sms_notifications":        false,
		"push_notifications":       true,
		"default_theme":            "light",
		"accent_color":             "#FFD700",
		"primary_color":            "#2C2C2C",
	}
}

// Stock status labels derived from settings thresholds.
const (
	StockStatusIn  = "in_stock"
	StockStatusLow = "low_stock"
	StockStatusOut = "out_of_stock"
)
