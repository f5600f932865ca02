package store

import (
	"testing"
	"time"

	"github.com/Tazeen604/ZerZabar-sub002/models"
	"github.com/stretchr/testify/assert"
)

func day(d int) time.Time {
	return time.Date(2025, 6, d, 10, 0, 0, 0, time.UTC)
}

func sampleOrders() []models.Order {
	return []models.Order{
		{ID: "1", OrderNumber: "ORD-2025-000001", Status: "pending", Customer: models.Customer{Name: "Alice Smith", Email: "alice@example.com"}, CreatedAt: day(1)},
		{ID: "2", OrderNumber: "ORD-2025-000002", Status: "completed", Customer: models.Customer{Name: "Bob Jones", Email: "bob@example.com"}, CreatedAt: day(2)},
		{ID: "3", OrderNumber: "ORD-2025-000003", Status: "pending", Customer: models.Customer{Name: "Carol White", Email: "carol@shop.test"}, CreatedAt: day(3)},
		{ID: "4", OrderNumber: "ORD-2025-000004", Status: "shipped", Customer: models.Customer{Name: "Dan Brown", Email: "dan@shop.test"}, CreatedAt: day(4)},
	}
}

func TestFilterByStatusRoundTrip(t *testing.T) {
	base := sampleOrders()

	pending := Filter(base, FilterOptions{Status: "pending"})
	assert.Len(t, pending, 2)

	// "all" restores the original list, same order and membership
	back := Filter(base, FilterOptions{Status: "all"})
	assert.Equal(t, base, back)
}

func TestFilterSearchCaseInsensitive(t *testing.T) {
	base := sampleOrders()

	byName := Filter(base, FilterOptions{Search: "aLiCe"})
	assert.Len(t, byName, 1)
	assert.Equal(t, "1", byName[0].ID)

	byEmail := Filter(base, FilterOptions{Search: "SHOP.TEST"})
	assert.Len(t, byEmail, 2)

	byNumber := Filter(base, FilterOptions{Search: "000004"})
	assert.Len(t, byNumber, 1)
	assert.Equal(t, "4", byNumber[0].ID)

	none := Filter(base, FilterOptions{Search: "zzz"})
	assert.Empty(t, none)
}

func TestFilterDateRangeInclusive(t *testing.T) {
	base := sampleOrders()
	from := day(2)
	to := day(3)

	got := Filter(base, FilterOptions{From: &from, To: &to})
	assert.Len(t, got, 2)
	assert.Equal(t, "2", got[0].ID)
	assert.Equal(t, "3", got[1].ID)
}

func TestFilterStatusCanonicalMatch(t *testing.T) {
	base := sampleOrders()
	got := Filter(base, FilterOptions{Status: "  PENDING "})
	assert.Len(t, got, 2)
}

func TestPaginate(t *testing.T) {
	list := make([]models.Order, 12)
	for i := range list {
		list[i].ID = string(rune('a' + i))
	}

	// last partial page
	page := Paginate(list, 2, 5)
	assert.Len(t, page, 2)
	assert.Equal(t, list[10].ID, page[0].ID)
	assert.Equal(t, list[11].ID, page[1].ID)

	// out of range is empty, not an error
	assert.Empty(t, Paginate(list, 3, 5))
	assert.Empty(t, Paginate(list, -1, 5))
	assert.Empty(t, Paginate(list, 0, 0))

	full := Paginate(list, 0, 20)
	assert.Len(t, full, 12)
}

func TestStoreSetGetPatch(t *testing.T) {
	s := NewOrderStore()
	assert.True(t, s.FetchedAt().IsZero())

	s.SetOrders(sampleOrders(), 4)
	assert.Equal(t, 4, s.Total())
	assert.False(t, s.FetchedAt().IsZero())

	o, ok := s.Get("2")
	assert.True(t, ok)
	assert.Equal(t, "completed", o.Status)

	_, ok = s.Get("nope")
	assert.False(t, ok)

	assert.True(t, s.PatchStatus("1", "processing"))
	o, _ = s.Get("1")
	assert.Equal(t, "processing", o.Status)

	// other orders untouched
	o, _ = s.Get("2")
	assert.Equal(t, "completed", o.Status)

	assert.False(t, s.PatchStatus("nope", "shipped"))
}

func TestStoreOrdersReturnsCopy(t *testing.T) {
	s := NewOrderStore()
	s.SetOrders(sampleOrders(), 4)

	got := s.Orders()
	got[0].Status = "mutated"

	fresh, _ := s.Get("1")
	assert.Equal(t, "pending", fresh.Status)
}
