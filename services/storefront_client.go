package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Tazeen604/ZerZabar-sub002/config"
	"github.com/Tazeen604/ZerZabar-sub002/models"
)

// Envelope is the storefront backend response shape. success=false is the
// only application-level error signal; message carries the reason.
type Envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// ErrNotFound marks a missing record (order id with no match etc).
var ErrNotFound = errors.New("not found")

// BackendError carries the storefront's own failure message verbatim.
type BackendError struct {
	Message    string
	StatusCode int
}

func (e *BackendError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("storefront request failed with status %d", e.StatusCode)
}

// StorefrontClient talks to the storefront REST API. All methods take a
// context; transport failures are wrapped, success=false becomes a
// BackendError.
type StorefrontClient struct {
	baseURL string
	http    *http.Client
	token   string
}

// NewStorefrontClient builds a client against the configured base URL.
func NewStorefrontClient() *StorefrontClient {
	return &StorefrontClient{
		baseURL: config.BackendBaseURL(),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// NewStorefrontClientWithBase is the test seam.
func NewStorefrontClientWithBase(baseURL string) *StorefrontClient {
	return &StorefrontClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// WithToken returns a shallow copy that forwards the given bearer token.
func (c *StorefrontClient) WithToken(token string) *StorefrontClient {
	cp := *c
	cp.token = token
	return &cp
}

func (c *StorefrontClient) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}

	var env Envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		if resp.StatusCode >= 400 {
			return &BackendError{StatusCode: resp.StatusCode}
		}
		return fmt.Errorf("decode response: %w", err)
	}

	if !env.Success {
		log.Printf("[storefront] %s %s failed: %s", method, path, env.Message)
		return &BackendError{Message: env.Message, StatusCode: resp.StatusCode}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode data: %w", err)
		}
	}
	return nil
}

// Orders

type orderPage struct {
	Data  []models.Order `json:"data"`
	Total int            `json:"total"`
}

// ListOrders fetches one page of orders with optional search/status filters.
func (c *StorefrontClient) ListOrders(ctx context.Context, q models.OrderListQuery) ([]models.Order, int, error) {
	query := url.Values{}
	if q.Q != "" {
		query.Set("search", q.Q)
	}
	if q.Status != "" && q.Status != "all" {
		query.Set("status", q.Status)
	}
	if q.Page > 0 {
		query.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		query.Set("per_page", strconv.Itoa(q.Limit))
	}

	var page orderPage
	if err := c.do(ctx, http.MethodGet, "/admin/orders", query, nil, &page); err != nil {
		return nil, 0, err
	}
	return page.Data, page.Total, nil
}

// GetOrder fetches full order details.
func (c *StorefrontClient) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	if err := c.do(ctx, http.MethodGet, "/admin/orders/"+id, nil, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

type statusUpdateBody struct {
	Status     string  `json:"status"`
	AdminNotes *string `json:"admin_notes,omitempty"`
}

// UpdateOrderStatus pushes a status change upstream and returns the
// server-acknowledged order state.
func (c *StorefrontClient) UpdateOrderStatus(ctx context.Context, id, newStatus string, adminNotes *string) (*models.Order, error) {
	var order models.Order
	body := statusUpdateBody{Status: newStatus, AdminNotes: adminNotes}
	if err := c.do(ctx, http.MethodPut, "/admin/orders/"+id, nil, body, &order); err != nil {
		return nil, err
	}
	if order.Status == "" {
		// backend acked without echoing the record
		order.ID = id
		order.Status = newStatus
	}
	return &order, nil
}

// FilterOrders runs the backend date filter: either a named filter
// ("today") or an explicit start/end date pair.
func (c *StorefrontClient) FilterOrders(ctx context.Context, filter, startDate, endDate string) ([]models.Order, error) {
	query := url.Values{}
	if filter != "" {
		query.Set("filter", filter)
	} else {
		query.Set("start_date", startDate)
		query.Set("end_date", endDate)
	}

	var orders []models.Order
	if err := c.do(ctx, http.MethodGet, "/admin/orders/filter", query, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Inventory

// ListInventory fetches products. The backend serves either a bare array or
// a {data: [...]} wrapper depending on pagination; both are accepted.
func (c *StorefrontClient) ListInventory(ctx context.Context, q models.InventoryQuery) ([]models.Product, error) {
	query := url.Values{}
	if q.Q != "" {
		query.Set("search", q.Q)
	}
	if q.StockStatus != "" {
		query.Set("stock_status", q.StockStatus)
	}
	if q.Page > 0 {
		query.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		query.Set("per_page", strconv.Itoa(q.Limit))
	}

	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/admin/inventory", query, nil, &raw); err != nil {
		return nil, err
	}

	var products []models.Product
	if err := json.Unmarshal(raw, &products); err == nil {
		return products, nil
	}
	var wrapped struct {
		Data []models.Product `json:"data"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, fmt.Errorf("decode inventory: %w", err)
	}
	return wrapped.Data, nil
}

// LowStock fetches the backend's low-stock report.
func (c *StorefrontClient) LowStock(ctx context.Context) ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	if err := c.do(ctx, http.MethodGet, "/admin/inventory/low-stock", nil, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// AdjustInventory issues an absolute quantity set for one product.
func (c *StorefrontClient) AdjustInventory(ctx context.Context, productID string, req models.AdjustInventoryRequest) error {
	return c.do(ctx, http.MethodPost, "/admin/inventory/"+productID+"/adjust", nil, req, nil)
}

// Notifications

func (c *StorefrontClient) GetNotifications(ctx context.Context) ([]models.Notification, error) {
	var list []models.Notification
	if err := c.do(ctx, http.MethodGet, "/admin/notifications", nil, nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *StorefrontClient) MarkNotificationRead(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPost, "/admin/notifications/"+id+"/read", nil, nil, nil)
}

func (c *StorefrontClient) MarkAllNotificationsRead(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/admin/notifications/read-all", nil, nil, nil)
}

func (c *StorefrontClient) ClearNotifications(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/admin/notifications", nil, nil, nil)
}

// Settings

func (c *StorefrontClient) GetSettings(ctx context.Context) (models.Settings, error) {
	var s models.Settings
	if err := c.do(ctx, http.MethodGet, "/admin/settings", nil, nil, &s); err != nil {
		return nil, err
	}
	return s, nil
}

// SaveSettings pushes a partial settings map; unknown keys pass through.
func (c *StorefrontClient) SaveSettings(ctx context.Context, partial models.Settings) error {
	return c.do(ctx, http.MethodPost, "/admin/settings", nil, partial, nil)
}

// Reports

func (c *StorefrontClient) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	var stats models.DashboardStats
	if err := c.do(ctx, http.MethodGet, "/admin/reports/dashboard-stats", nil, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *StorefrontClient) SalesReport(ctx context.Context, q models.SalesReportQuery) ([]models.SalesPoint, error) {
	query := url.Values{}
	if q.StartDate != "" {
		query.Set("start_date", q.StartDate)
	}
	if q.EndDate != "" {
		query.Set("end_date", q.EndDate)
	}
	if q.GroupBy != "" {
		query.Set("group_by", q.GroupBy)
	}

	var points []models.SalesPoint
	if err := c.do(ctx, http.MethodGet, "/admin/reports/sales", query, nil, &points); err != nil {
		return nil, err
	}
	return points, nil
}

func (c *StorefrontClient) ProductSales(ctx context.Context, q models.SalesReportQuery) ([]models.ProductSalesRow, error) {
	query := url.Values{}
	if q.StartDate != "" {
		query.Set("start_date", q.StartDate)
	}
	if q.EndDate != "" {
		query.Set("end_date", q.EndDate)
	}

	var rows []models.ProductSalesRow
	if err := c.do(ctx, http.MethodGet, "/admin/reports/product-sales", query, nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
