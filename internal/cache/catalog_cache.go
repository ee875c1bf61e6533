package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/magnetmantra/magnet_api/internal/models"
)

// catalogKey holds the JSON snapshot of the unlocked public catalog.
const catalogKey = "catalog:products"

// catalogTTL bounds staleness if the refresh worker dies; normal
// refreshes overwrite the key well before expiry.
const catalogTTL = 30 * time.Minute

// CatalogSnapshot is the cached public catalog: the full unlocked set
// plus its exact count, exactly what one gallery window returns.
type CatalogSnapshot struct {
	Products []models.Product `json:"products"`
	Total    int              `json:"total"`
	CachedAt time.Time        `json:"cachedAt"`
}

// CatalogCache stores the public catalog snapshot in Redis so gallery
// reads skip Postgres on the hot path.
type CatalogCache struct {
	redis *RedisClient
}

// NewCatalogCache creates a new CatalogCache.
func NewCatalogCache(redis *RedisClient) *CatalogCache {
	return &CatalogCache{redis: redis}
}

// Set stores the snapshot.
func (c *CatalogCache) Set(ctx context.Context, products []models.Product, total int) error {
	snap := CatalogSnapshot{
		Products: products,
		Total:    total,
		CachedAt: time.Now(),
	}
	jsonData, err := json.Marshal(&snap)
	if err != nil {
		return fmt.Errorf("failed to marshal catalog snapshot: %w", err)
	}
	return c.redis.Set(ctx, catalogKey, string(jsonData), catalogTTL)
}

// Get retrieves the snapshot. A missing key surfaces as the underlying
// redis.Nil error; callers fall through to Postgres on any failure.
func (c *CatalogCache) Get(ctx context.Context) (*CatalogSnapshot, error) {
	jsonData, err := c.redis.Get(ctx, catalogKey)
	if err != nil {
		return nil, err
	}

	var snap CatalogSnapshot
	if err := json.Unmarshal([]byte(jsonData), &snap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog snapshot: %w", err)
	}
	return &snap, nil
}

// Invalidate drops the snapshot. Called after any product or category
// write so the next gallery read repopulates from Postgres.
func (c *CatalogCache) Invalidate(ctx context.Context) error {
	return c.redis.Delete(ctx, catalogKey)
}
