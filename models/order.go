package models

import "time"

// Order is the admin-facing view of a storefront order.
type Order struct {
	ID           string      `json:"id"`
	OrderNumber  string      `json:"order_number"`
	Status       string      `json:"status"`
	Customer     Customer    `json:"customer"`
	Items        []OrderItem `json:"items"`
	Subtotal     float64     `json:"subtotal"`
	ShippingCost float64     `json:"shipping_cost"`
	TotalAmount  float64     `json:"total_amount"`
	CreatedAt    time.Time   `json:"created_at"`
	ShippedAt    *time.Time  `json:"shipped_at,omitempty"`
	DeliveredAt  *time.Time  `json:"delivered_at,omitempty"`
	AdminNotes   *string     `json:"admin_notes,omitempty"`
}

// Customer holds the contact details attached to an order. Phone is often
// absent upstream ("N/A").
type Customer struct {
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone *string `json:"phone,omitempty"`
}

// OrderItem is a single line item; slice order is display order.
type OrderItem struct {
	ProductName string  `json:"product_name"`
	SKU         string  `json:"sku"`
	Size        *string `json:"size,omitempty"`
	Color       *string `json:"color,omitempty"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

type UpdateOrderStatusRequest struct {
	Status     string  `json:"status" binding:"required"`
	AdminNotes *string `json:"admin_notes,omitempty"`
	// Confirm must be true before the update is sent upstream; a request
	// without it only validates the transition and reports back.
	Confirm bool `json:"confirm"`
}

type UpdateOrderStatusResponse struct {
	ID          string `json:"id"`
	OrderNumber string `json:"order_number"`
	Status      string `json:"status"`
	// RequiresConfirmation is set when the transition is allowed but the
	// caller has not confirmed yet.
	RequiresConfirmation bool   `json:"requires_confirmation,omitempty"`
	CurrentStatus        string `json:"current_status,omitempty"`
	RequestedStatus      string `json:"requested_status,omitempty"`
}

// OrderListQuery binds the list/search query params.
type OrderListQuery struct {
	Q           string `form:"q"`
	Status      string `form:"status"`
	CreatedFrom string `form:"created_from"`
	CreatedTo   string `form:"created_to"`
	Page        int    `form:"page"`
	Limit       int    `form:"limit"`
}
