package order_controller

import (
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/Tazeen604/ZerZabar-sub002/config"
	"github.com/Tazeen604/ZerZabar-sub002/middleware"
	"github.com/Tazeen604/ZerZabar-sub002/models"
	"github.com/Tazeen604/ZerZabar-sub002/store"
	"github.com/Tazeen604/ZerZabar-sub002/utils"
	"github.com/gin-gonic/gin"
)

// GetOrders godoc
// @Summary List orders
// @Description Retrieve orders with pagination, status/search filters and an optional created-at date range. Serves the last-known-good page when the storefront is unreachable.
// @Tags Admin - Orders
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 50)" default(10)
// @Param status query string false "Filter by order status"
// @Param q query string false "Search by order number, customer name or email"
// @Param created_from query string false "Created from (RFC3339 or YYYY-MM-DD)"
// @Param created_to query string false "Created to (RFC3339 or YYYY-MM-DD)"
// @Router /admin/orders [get]
func GetOrders(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 || limit > 50 {
		limit = 10
	}

	q := strings.TrimSpace(c.Query("q"))
	statusFilter := strings.TrimSpace(c.Query("status"))

	from, err := utils.ParseTimeFlexible(c.Query("created_from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}
	to, err := utils.ParseTimeFlexible(c.Query("created_to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}
	if to != nil {
		eod := utils.EndOfDay(*to)
		to = &eod
	}

	log.Printf("[admin.orders] params page=%d limit=%d status=%q q=%q", page, limit, statusFilter, q)

	// page and limit are part of the key: only a truly identical request
	// may be answered from the held page
	cacheKey := q + "|" + statusFilter + "|" + strconv.Itoa(page) + "|" + strconv.Itoa(limit)
	fetchFailed := false

	if shouldRefetch(cacheKey) {
		ctx, cancel := config.WithTimeout()
		defer cancel()

		list, total, err := client.WithToken(middleware.Token(c)).ListOrders(ctx, models.OrderListQuery{
			Q: q, Status: statusFilter, Page: page, Limit: limit,
		})
		if err != nil {
			log.Printf("[admin.orders] upstream fetch failed, serving held page: %v", err)
			fetchFailed = true
		} else {
			orders.SetOrders(list, total)
			noteFetched(cacheKey)
		}
	} else {
		// serve the held page now, refresh once the burst settles
		query := models.OrderListQuery{Q: q, Status: statusFilter, Page: page, Limit: limit}
		authed := client.WithToken(middleware.Token(c))
		refresher.Trigger(func() {
			ctx, cancel := config.WithTimeout()
			defer cancel()
			if list, total, err := authed.ListOrders(ctx, query); err == nil {
				orders.SetOrders(list, total)
				noteFetched(cacheKey)
			}
		})
	}

	// date range and any residual filtering run over the held page
	filtered := orders.Filter(store.FilterOptions{
		Search: q,
		Status: statusFilter,
		From:   from,
		To:     to,
	})

	var rows []models.Order
	total := orders.Total()
	if fetchFailed || from != nil || to != nil {
		// local pagination over the filtered view
		rows = store.Paginate(filtered, page-1, limit)
		total = len(filtered)
		if fetchFailed && len(rows) == 0 && len(filtered) > 0 {
			// offline we only hold one upstream page; clamp to its last
			// page instead of claiming rows exist beyond it
			page = (len(filtered) + limit - 1) / limit
			rows = store.Paginate(filtered, page-1, limit)
		}
	} else {
		// upstream already paginated this page
		rows = filtered
	}

	totalPages := 0
	if limit > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(limit)))
	}
	meta := &models.Pagination{Page: page, Limit: limit, Total: total, TotalPages: totalPages}

	message := "Orders retrieved successfully"
	if fetchFailed {
		message = "Storefront unreachable, showing last fetched orders"
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, message, rows, meta))
}
