package settings

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fenzolabs/fenzo-backend/pkg/db/models"
	"github.com/fenzolabs/fenzo-backend/pkg/logger"
)

const defaultRefreshInterval = 30 * time.Second

type settingsLoader interface {
	Get(ctx context.Context) (*models.Settings, error)
}

// Snapshot holds the latest settings document for hot read paths. Storefront
// requests read from here instead of hitting the database per request; writes
// from the admin surface publish into it immediately and a background
// refresher re-loads on an interval to pick up out-of-band changes.
type Snapshot struct {
	mu     sync.RWMutex
	latest *models.Settings

	loader   settingsLoader
	logg     *logger.Logger
	interval time.Duration
}

// NewSnapshot builds a snapshot cell over the given loader.
func NewSnapshot(loader settingsLoader, logg *logger.Logger, interval time.Duration) (*Snapshot, error) {
	if loader == nil {
		return nil, fmt.Errorf("settings loader required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	if interval <= 0 {
		interval = defaultRefreshInterval
	}
	return &Snapshot{
		loader:   loader,
		logg:     logg,
		interval: interval,
	}, nil
}

// Current returns the held settings, or nil before the first load.
func (s *Snapshot) Current() *models.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest
}

// Publish replaces the held settings document atomically.
func (s *Snapshot) Publish(latest *models.Settings) {
	s.mu.Lock()
	s.latest = latest
	s.mu.Unlock()
}

// Refresh loads from the backing store and publishes the result.
func (s *Snapshot) Refresh(ctx context.Context) error {
	latest, err := s.loader.Get(ctx)
	if err != nil {
		return err
	}
	s.Publish(latest)
	return nil
}

// Run performs an initial load and then refreshes on the configured interval
// until the context is canceled.
func (s *Snapshot) Run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := s.Refresh(ctx); err != nil {
		s.logg.Error(ctx, "initial settings load failed", err)
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logg.Info(ctx, "settings refresher stopped")
			return ctx.Err()
		case <-ticker.C:
			if err := s.Refresh(ctx); err != nil {
				s.logg.Error(ctx, "settings refresh failed", err)
			}
		}
	}
}
