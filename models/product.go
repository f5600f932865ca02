package models

import "time"

// Product is the read-only inventory view. Available counts come from the
// backend; the gateway never recomputes stock math.
type Product struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	SKU       string           `json:"sku"`
	Price     float64          `json:"price"`
	SalePrice *float64         `json:"sale_price,omitempty"`
	Variants  []ProductVariant `json:"variants,omitempty"`
	Total     int              `json:"total_quantity"`
	Available int              `json:"available_quantity"`
	CreatedAt time.Time        `json:"created_at"`
}

// ProductVariant carries per-variant stock counts.
type ProductVariant struct {
	Name      string `json:"name"`
	Size      string `json:"size,omitempty"`
	Color     string `json:"color,omitempty"`
	Total     int    `json:"total_quantity"`
	Available int    `json:"available_quantity"`
}

// InventoryItem is a low-stock report row.
type InventoryItem struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	SKU         string `json:"sku"`
	Available   int    `json:"available_quantity"`
	StockStatus string `json:"stock_status,omitempty"`
}

// AdjustInventoryRequest sets an absolute quantity on a product. The only
// adjustment type the storefront accepts from the admin tool is "set".
type AdjustInventoryRequest struct {
	Quantity int    `json:"quantity" binding:"min=0"`
	Type     string `json:"type" binding:"required,oneof=set"`
	Notes    string `json:"notes,omitempty"`
}

// InventoryQuery binds inventory listing filters.
type InventoryQuery struct {
	Q           string `form:"q"`
	StockStatus string `form:"stock_status"`
	Page        int    `form:"page"`
	Limit       int    `form:"limit"`
}
