package report_cache

import (
	"sync"
	"time"

	"github.com/Tazeen604/ZerZabar-sub002/models"
)

const TTL = 5 * time.Minute

// Dashboard stats cache: one entry, read between upstream refreshes.

type statsEntry struct {
	stats     *models.DashboardStats
	fetchedAt time.Time
}

var (
	statsMu    sync.RWMutex
	statsCache *statsEntry
)

func GetStats() (*models.DashboardStats, bool) {
	statsMu.RLock()
	defer statsMu.RUnlock()
	if statsCache != nil && time.Since(statsCache.fetchedAt) < TTL {
		return statsCache.stats, true
	}
	return nil, false
}

func SetStats(stats *models.DashboardStats) {
	statsMu.Lock()
	defer statsMu.Unlock()
	statsCache = &statsEntry{stats: stats, fetchedAt: time.Now()}
}

// Sales report cache, keyed by the raw query string so distinct date ranges
// cache independently.

type salesEntry struct {
	points    []models.SalesPoint
	fetchedAt time.Time
}

var (
	salesMu    sync.RWMutex
	salesCache = map[string]*salesEntry{}
)

func GetSales(key string) ([]models.SalesPoint, bool) {
	salesMu.RLock()
	defer salesMu.RUnlock()
	if e, ok := salesCache[key]; ok && time.Since(e.fetchedAt) < TTL {
		return e.points, true
	}
	return nil, false
}

func SetSales(key string, points []models.SalesPoint) {
	salesMu.Lock()
	defer salesMu.Unlock()
	salesCache[key] = &salesEntry{points: points, fetchedAt: time.Now()}
}

// Product sales cache, same keying as the sales report.

type productSalesEntry struct {
	rows      []models.ProductSalesRow
	fetchedAt time.Time
}

var (
	productMu    sync.RWMutex
	productCache = map[string]*productSalesEntry{}
)

func GetProductSales(key string) ([]models.ProductSalesRow, bool) {
	productMu.RLock()
	defer productMu.RUnlock()
	if e, ok := productCache[key]; ok && time.Since(e.fetchedAt) < TTL {
		return e.rows, true
	}
	return nil, false
}

func SetProductSales(key string, rows []models.ProductSalesRow) {
	productMu.Lock()
	defer productMu.Unlock()
	productCache[key] = &productSalesEntry{rows: rows, fetchedAt: time.Now()}
}

// Invalidate drops everything. Called when an order status commit settles,
// since the report numbers may have shifted.
func Invalidate() {
	statsMu.Lock()
	statsCache = nil
	statsMu.Unlock()

	salesMu.Lock()
	salesCache = map[string]*salesEntry{}
	salesMu.Unlock()

	productMu.Lock()
	productCache = map[string]*productSalesEntry{}
	productMu.Unlock()
}
