package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Tazeen604/ZerZabar-sub002/models"
	"github.com/stretchr/testify/assert"
)

func TestListOrdersDecodesEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/orders", r.URL.Path)
		assert.Equal(t, "pending", r.URL.Query().Get("status"))
		assert.Equal(t, "alice", r.URL.Query().Get("search"))
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": map[string]any{
				"data":  []map[string]any{{"id": "1", "order_number": "ORD-1", "status": "pending"}},
				"total": 37,
			},
		})
	}))
	defer srv.Close()

	c := NewStorefrontClientWithBase(srv.URL)
	orders, total, err := c.ListOrders(context.Background(), models.OrderListQuery{Q: "alice", Status: "pending", Page: 1, Limit: 10})
	assert.NoError(t, err)
	assert.Equal(t, 37, total)
	assert.Len(t, orders, 1)
	assert.Equal(t, "ORD-1", orders[0].OrderNumber)
}

func TestEnvelopeFailureBecomesBackendError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"message": "order cannot be modified",
		})
	}))
	defer srv.Close()

	c := NewStorefrontClientWithBase(srv.URL)
	_, err := c.UpdateOrderStatus(context.Background(), "1", "shipped", nil)
	assert.Error(t, err)

	var be *BackendError
	assert.ErrorAs(t, err, &be)
	// message surfaced verbatim
	assert.Equal(t, "order cannot be modified", be.Message)
}

func TestNotFoundMapsToErrNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewStorefrontClientWithBase(srv.URL)
	_, err := c.GetOrder(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateOrderStatusSendsBodyAndToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/admin/orders/42", r.URL.Path)
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))

		var body map[string]any
		json.NewDecoder(r.Body).Decode(&body)
		assert.Equal(t, "processing", body["status"])

		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    map[string]any{"id": "42", "order_number": "ORD-42", "status": "processing"},
		})
	}))
	defer srv.Close()

	c := NewStorefrontClientWithBase(srv.URL).WithToken("tok-123")
	order, err := c.UpdateOrderStatus(context.Background(), "42", "processing", nil)
	assert.NoError(t, err)
	assert.Equal(t, "processing", order.Status)
}

func TestListInventoryAcceptsBothShapes(t *testing.T) {
	// bare array
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    []map[string]any{{"id": "p1", "name": "Shirt"}},
		})
	}))
	c := NewStorefrontClientWithBase(srv.URL)
	products, err := c.ListInventory(context.Background(), models.InventoryQuery{})
	srv.Close()
	assert.NoError(t, err)
	assert.Len(t, products, 1)

	// wrapped page
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    map[string]any{"data": []map[string]any{{"id": "p1"}, {"id": "p2"}}},
		})
	}))
	defer srv.Close()
	c = NewStorefrontClientWithBase(srv.URL)
	products, err = c.ListInventory(context.Background(), models.InventoryQuery{})
	assert.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestTransportErrorIsWrapped(t *testing.T) {
	c := NewStorefrontClientWithBase("http://127.0.0.1:1") // nothing listens here
	_, err := c.GetSettings(context.Background())
	assert.Error(t, err)

	var be *BackendError
	assert.False(t, errors.As(err, &be), "transport failure is not a BackendError")
}
