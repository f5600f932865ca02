package order_controller

import (
	"sync"
	"time"

	"github.com/Tazeen604/ZerZabar-sub002/services"
	"github.com/Tazeen604/ZerZabar-sub002/store"
	"github.com/Tazeen604/ZerZabar-sub002/utils"
)

var (
	client      *services.StorefrontClient
	orders      *store.OrderStore
	transitions *services.TransitionService

	// trailing refresh so the held page converges after a burst of
	// debounced requests
	refresher *utils.Debouncer

	// search debounce: identical queries inside the window are served from
	// the held page instead of refetching upstream
	searchMu       sync.Mutex
	lastQuery      string
	lastFetchedAt  time.Time
	searchDebounce time.Duration
)

// Init wires the controller's dependencies. Called once from main.
func Init(c *services.StorefrontClient, s *store.OrderStore, t *services.TransitionService, debounce time.Duration) {
	client = c
	orders = s
	transitions = t
	searchDebounce = debounce
	refresher = utils.NewDebouncer(debounce)
}

// shouldRefetch reports whether the query warrants a new upstream fetch or
// the debounce window lets the held page answer it.
func shouldRefetch(query string) bool {
	searchMu.Lock()
	defer searchMu.Unlock()
	if query == lastQuery && time.Since(lastFetchedAt) < searchDebounce {
		return false
	}
	return true
}

func noteFetched(query string) {
	searchMu.Lock()
	defer searchMu.Unlock()
	lastQuery = query
	lastFetchedAt = time.Now()
}
