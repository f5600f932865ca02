package services

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/Tazeen604/ZerZabar-sub002/models"
)

// SettingsFetcher is the slice of the storefront client this provider uses.
type SettingsFetcher interface {
	GetSettings(ctx context.Context) (models.Settings, error)
	SaveSettings(ctx context.Context, partial models.Settings) error
}

const settingsTTL = 5 * time.Minute

// SettingsService is the single source of truth for configuration scalars.
// When the backend is unreachable it serves the fixed default map, so every
// consumer can assume a value is always present for known keys.
type SettingsService struct {
	mu        sync.RWMutex
	settings  models.Settings
	fetchedAt time.Time
	fallback  bool

	client SettingsFetcher
}

func NewSettingsService(client SettingsFetcher) *SettingsService {
	return &SettingsService{client: client}
}

// Load returns the cached settings, refreshing from upstream when the cache
// is stale. A failed fetch falls back to defaults rather than serving an
// empty map.
func (s *SettingsService) Load(ctx context.Context) models.Settings {
	s.mu.RLock()
	if s.settings != nil && time.Since(s.fetchedAt) < settingsTTL {
		defer s.mu.RUnlock()
		return s.settings
	}
	s.mu.RUnlock()

	fetched, err := s.client.GetSettings(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		log.Printf("[settings] fetch failed, serving defaults: %v", err)
		if s.settings == nil {
			s.settings = models.DefaultSettings()
			s.fallback = true
		}
		// keep last-known-good if we had a real fetch before
		return s.settings
	}

	// overlay on defaults so missing keys still resolve
	merged := models.DefaultSettings()
	for k, v := range fetched {
		merged[k] = v
	}
	s.settings = merged
	s.fallback = false
	s.fetchedAt = time.Now()
	return s.settings
}

// UsingFallback reports whether the current map is the hard-coded default.
func (s *SettingsService) UsingFallback() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fallback
}

// Save pushes a partial settings map upstream and invalidates the cache so
// the next Load refetches.
func (s *SettingsService) Save(ctx context.Context, partial models.Settings) error {
	if err := s.client.SaveSettings(ctx, partial); err != nil {
		return err
	}
	s.mu.Lock()
	s.fetchedAt = time.Time{}
	s.mu.Unlock()
	return nil
}

// Int resolves a numeric setting. JSON numbers land as float64; stored
// defaults may be int.
func (s *SettingsService) Int(ctx context.Context, key string, fallback int) int {
	switch v := s.Load(ctx)[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	}
	return fallback
}

// Bool resolves a boolean setting.
func (s *SettingsService) Bool(ctx context.Context, key string, fallback bool) bool {
	if v, ok := s.Load(ctx)[key].(bool); ok {
		return v
	}
	return fallback
}

// String resolves a string setting.
func (s *SettingsService) String(ctx context.Context, key string, fallback string) string {
	if v, ok := s.Load(ctx)[key].(string); ok {
		return v
	}
	return fallback
}

// StockStatus classifies a quantity against the configured thresholds. A
// quantity exactly at the low-stock threshold counts as low stock.
func (s *SettingsService) StockStatus(ctx context.Context, quantity int) string {
	outAt := s.Int(ctx, "out_of_stock_threshold", 0)
	lowAt := s.Int(ctx, "low_stock_threshold", 10)

	switch {
	case quantity <= outAt:
		return models.StockStatusOut
	case quantity <= lowAt:
		return models.StockStatusLow
	default:
		return models.StockStatusIn
	}
}
