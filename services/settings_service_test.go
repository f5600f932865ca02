package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Tazeen604/ZerZabar-sub002/models"
	"github.com/stretchr/testify/assert"
)

type mockSettings struct {
	getFn  func(ctx context.Context) (models.Settings, error)
	saveFn func(ctx context.Context, partial models.Settings) error
}

func (m *mockSettings) GetSettings(ctx context.Context) (models.Settings, error) {
	return m.getFn(ctx)
}
func (m *mockSettings) SaveSettings(ctx context.Context, partial models.Settings) error {
	return m.saveFn(ctx, partial)
}

func failingSettings() *mockSettings {
	return &mockSettings{
		getFn: func(ctx context.Context) (models.Settings, error) {
			return nil, errors.New("connection refused")
		},
	}
}

func TestFallbackOnFetchFailure(t *testing.T) {
	svc := NewSettingsService(failingSettings())
	ctx := context.Background()

	s := svc.Load(ctx)
	assert.True(t, svc.UsingFallback())

	// every documented default key resolves
	for key := range models.DefaultSettings() {
		_, ok := s[key]
		assert.True(t, ok, "missing default for %s", key)
	}
	assert.Equal(t, 10, svc.Int(ctx, "low_stock_threshold", -1))
	assert.Equal(t, "daily", svc.String(ctx, "backup_frequency", ""))
	assert.False(t, svc.Bool(ctx, "maintenance_mode", true))
}

func TestStockStatusBoundaries(t *testing.T) {
	svc := NewSettingsService(failingSettings())
	ctx := context.Background()

	assert.Equal(t, models.StockStatusOut, svc.StockStatus(ctx, 0))
	assert.Equal(t, models.StockStatusLow, svc.StockStatus(ctx, 5))
	// exactly the threshold counts as low stock
	assert.Equal(t, models.StockStatusLow, svc.StockStatus(ctx, 10))
	assert.Equal(t, models.StockStatusIn, svc.StockStatus(ctx, 11))
}

func TestFetchedSettingsOverlayDefaults(t *testing.T) {
	m := &mockSettings{
		getFn: func(ctx context.Context) (models.Settings, error) {
			// JSON numbers decode as float64
			return models.Settings{"low_stock_threshold": float64(3)}, nil
		},
	}
	svc := NewSettingsService(m)
	ctx := context.Background()

	assert.Equal(t, 3, svc.Int(ctx, "low_stock_threshold", -1))
	assert.False(t, svc.UsingFallback())
	// keys missing upstream still resolve from defaults
	assert.Equal(t, 7, svc.Int(ctx, "new_arrivals_days", -1))

	assert.Equal(t, models.StockStatusLow, svc.StockStatus(ctx, 3))
	assert.Equal(t, models.StockStatusIn, svc.StockStatus(ctx, 4))
}

func TestSaveInvalidatesCache(t *testing.T) {
	fetches := 0
	m := &mockSettings{
		getFn: func(ctx context.Context) (models.Settings, error) {
			fetches++
			return models.Settings{}, nil
		},
		saveFn: func(ctx context.Context, partial models.Settings) error { return nil },
	}
	svc := NewSettingsService(m)
	ctx := context.Background()

	svc.Load(ctx)
	svc.Load(ctx) // cached
	assert.Equal(t, 1, fetches)

	assert.NoError(t, svc.Save(ctx, models.Settings{"debug_mode": true}))
	svc.Load(ctx)
	assert.Equal(t, 2, fetches)
}

func TestSaveFailurePropagates(t *testing.T) {
	m := &mockSettings{
		getFn:  func(ctx context.Context) (models.Settings, error) { return models.Settings{}, nil },
		saveFn: func(ctx context.Context, partial models.Settings) error { return errors.New("validation failed") },
	}
	svc := NewSettingsService(m)

	err := svc.Save(context.Background(), models.Settings{"low_stock_threshold": -1})
	assert.EqualError(t, err, "validation failed")
}
