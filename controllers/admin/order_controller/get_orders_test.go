package order_controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Tazeen604/ZerZabar-sub002/models"
	"github.com/Tazeen604/ZerZabar-sub002/services"
	"github.com/Tazeen604/ZerZabar-sub002/store"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type listResponse struct {
	Success bool               `json:"success"`
	Message string             `json:"message"`
	Data    []models.Order     `json:"data"`
	Meta    *models.Pagination `json:"meta"`
}

func listRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/orders", GetOrders)
	return r
}

func getList(t *testing.T, r *gin.Engine, target string) listResponse {
	t.Helper()
	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodGet, target, nil)
	assert.NoError(t, err)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var out listResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestGetOrdersDifferentPageBypassesDebounce(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page := r.URL.Query().Get("page")
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": map[string]any{
				"data":  []map[string]any{{"id": "order-from-page-" + page, "status": "pending"}},
				"total": 40,
			},
		})
	}))
	defer srv.Close()

	client := services.NewStorefrontClientWithBase(srv.URL)
	Init(client, store.NewOrderStore(), services.NewTransitionService(client, store.NewOrderStore()), time.Minute)
	r := listRouter()

	first := getList(t, r, "/orders?page=1&limit=5")
	assert.Equal(t, "order-from-page-1", first.Data[0].ID)

	// a different page inside the debounce window must refetch, not serve
	// the held page under the new page's meta
	second := getList(t, r, "/orders?page=2&limit=5")
	assert.Equal(t, 2, second.Meta.Page)
	assert.Len(t, second.Data, 1)
	assert.Equal(t, "order-from-page-2", second.Data[0].ID)
}

func TestGetOrdersIdenticalQueryServedFromHeldPage(t *testing.T) {
	fetches := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fetches++
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": map[string]any{
				"data":  []map[string]any{{"id": "o1", "order_number": "ORD-1", "status": "pending", "customer": map[string]any{"name": "Alice Smith"}}},
				"total": 1,
			},
		})
	}))
	defer srv.Close()

	client := services.NewStorefrontClientWithBase(srv.URL)
	Init(client, store.NewOrderStore(), services.NewTransitionService(client, store.NewOrderStore()), time.Minute)
	r := listRouter()

	getList(t, r, "/orders?q=alice&page=1&limit=10")
	got := getList(t, r, "/orders?q=alice&page=1&limit=10")

	assert.Equal(t, 1, fetches)
	assert.Equal(t, "o1", got.Data[0].ID)
}

func TestGetOrdersOfflinePageClampsToHeldRows(t *testing.T) {
	healthy := true
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !healthy {
			json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "down"})
			return
		}
		rows := make([]map[string]any, 3)
		for i := range rows {
			rows[i] = map[string]any{"id": fmt.Sprintf("o%d", i+1), "status": "pending"}
		}
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    map[string]any{"data": rows, "total": 3},
		})
	}))
	defer srv.Close()

	client := services.NewStorefrontClientWithBase(srv.URL)
	Init(client, store.NewOrderStore(), services.NewTransitionService(client, store.NewOrderStore()), time.Minute)
	r := listRouter()

	first := getList(t, r, "/orders?page=1&limit=2")
	assert.Len(t, first.Data, 3)

	// upstream goes away; a request past the held rows clamps to the last
	// held page instead of returning an empty page under a stale message
	healthy = false
	got := getList(t, r, "/orders?page=5&limit=2")
	assert.Equal(t, "Storefront unreachable, showing last fetched orders", got.Message)
	assert.Equal(t, 2, got.Meta.Page)
	assert.Len(t, got.Data, 1)
	assert.Equal(t, "o3", got.Data[0].ID)
}
