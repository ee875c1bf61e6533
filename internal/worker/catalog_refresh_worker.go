package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// CatalogRefresher warms the public catalog cache.
type CatalogRefresher interface {
	RefreshCatalogCache(ctx context.Context) error
}

// CatalogRefreshWorker re-warms the Redis catalog snapshot on a fixed
// interval so gallery reads stay off Postgres even across TTL expiry.
type CatalogRefreshWorker struct {
	catalogService CatalogRefresher
	interval       time.Duration
}

// NewCatalogRefreshWorker constructs a CatalogRefreshWorker.
func NewCatalogRefreshWorker(catalogService CatalogRefresher, interval time.Duration) *CatalogRefreshWorker {
	return &CatalogRefreshWorker{
		catalogService: catalogService,
		interval:       interval,
	}
}

// Start begins the refresh loop and listens for context cancellation.
func (w *CatalogRefreshWorker) Start(ctx context.Context) {
	log.Info().Dur("interval", w.interval).Msg("Starting catalog refresh worker")

	// Warm the cache once at startup before the first tick.
	w.run(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.run(ctx)
		case <-ctx.Done():
			log.Info().Msg("Catalog refresh worker stopped")
			return
		}
	}
}

func (w *CatalogRefreshWorker) run(ctx context.Context) {
	if err := w.catalogService.RefreshCatalogCache(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to refresh catalog cache")
	}
}
