package sitemap

import (
	"context"
	"log/slog"
	"time"
)

// Refresher periodically rebuilds a Cache so newly published content appears
// without a restart.
type Refresher struct {
	cache    *Cache
	interval time.Duration
}

// NewRefresher creates a new Refresher.
func NewRefresher(cache *Cache, interval time.Duration) *Refresher {
	return &Refresher{
		cache:    cache,
		interval: interval,
	}
}

// Start begins the refresh loop. It blocks until ctx is cancelled.
func (r *Refresher) Start(ctx context.Context) {
	slog.Info("sitemap refresher started", "interval", r.interval.String())
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("sitemap refresher stopped")
			return
		case <-ticker.C:
			r.refresh(ctx)
		}
	}
}

func (r *Refresher) refresh(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	n, err := r.cache.Refresh(ctx)
	if err != nil {
		slog.Error("sitemap refresher: failed to rebuild", "error", err)
		return
	}
	slog.Debug("sitemap refresher: rebuilt", "entries", n)
}
