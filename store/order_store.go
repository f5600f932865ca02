package store

import (
	"strings"
	"sync"
	"time"

	"github.com/Tazeen604/ZerZabar-sub002/models"
	"github.com/Tazeen604/ZerZabar-sub002/status"
)

// FilterOptions narrows a held order list without refetching.
type FilterOptions struct {
	Search string
	Status string // "" or "all" means no status filter
	From   *time.Time
	To     *time.Time // inclusive
}

// OrderStore holds the most recently fetched page of orders. It is the
// single owner of that state; controllers read through it and the
// transition orchestrator patches it after a commit settles.
type OrderStore struct {
	mu        sync.RWMutex
	orders    []models.Order
	total     int
	fetchedAt time.Time
}

func NewOrderStore() *OrderStore {
	return &OrderStore{}
}

// SetOrders replaces the held page and resets derived state.
func (s *OrderStore) SetOrders(list []models.Order, total int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = make([]models.Order, len(list))
	copy(s.orders, list)
	s.total = total
	s.fetchedAt = time.Now()
}

// Orders returns a copy of the held page.
func (s *OrderStore) Orders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// Total is the backend-reported total row count for the last fetch.
func (s *OrderStore) Total() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.total
}

// FetchedAt reports when the page was last replaced; zero if never.
func (s *OrderStore) FetchedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fetchedAt
}

// Get looks an order up by id in the held page.
func (s *OrderStore) Get(id string) (models.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.orders {
		if o.ID == id {
			return o, true
		}
	}
	return models.Order{}, false
}

// PatchStatus replaces one order's status with the server-acknowledged
// value. Returns false when the order is not in the held page.
func (s *OrderStore) PatchStatus(id, newStatus string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].Status = newStatus
			return true
		}
	}
	return false
}

// Filter applies opts to the held page.
func (s *OrderStore) Filter(opts FilterOptions) []models.Order {
	return Filter(s.Orders(), opts)
}

// Filter is the pure form: it never mutates list and preserves order.
func Filter(list []models.Order, opts FilterOptions) []models.Order {
	search := strings.ToLower(strings.TrimSpace(opts.Search))
	st := status.Canonical(opts.Status)
	filterStatus := st != "" && st != "all"

	out := make([]models.Order, 0, len(list))
	for _, o := range list {
		if search != "" && !matchesSearch(o, search) {
			continue
		}
		if filterStatus && status.Canonical(o.Status) != st {
			continue
		}
		if opts.From != nil && o.CreatedAt.Before(*opts.From) {
			continue
		}
		if opts.To != nil && o.CreatedAt.After(*opts.To) {
			continue
		}
		out = append(out, o)
	}
	return out
}

func matchesSearch(o models.Order, search string) bool {
	return strings.Contains(strings.ToLower(o.OrderNumber), search) ||
		strings.Contains(strings.ToLower(o.Customer.Name), search) ||
		strings.Contains(strings.ToLower(o.Customer.Email), search)
}

// Paginate slices out page pageIndex (0-based). An out-of-range page yields
// an empty slice, never an error.
func Paginate(list []models.Order, pageIndex, pageSize int) []models.Order {
	if pageIndex < 0 || pageSize <= 0 {
		return []models.Order{}
	}
	start := pageIndex * pageSize
	if start >= len(list) {
		return []models.Order{}
	}
	end := start + pageSize
	if end > len(list) {
		end = len(list)
	}
	return list[start:end]
}
