package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Ki2008-vi/tokosigmablackboi/internal/usecase"
)

const snapshotKey = "catalog:snapshot"

// CatalogCache keeps the last upstream catalog payload in Redis so restarts
// and back-to-back refreshes don't hammer the upstream API.
type CatalogCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewCatalogCache(rdb *redis.Client, ttl time.Duration) *CatalogCache {
	return &CatalogCache{rdb: rdb, ttl: ttl}
}

func (c *CatalogCache) Recall(ctx context.Context) (*usecase.CatalogSnapshot, bool, error) {
	raw, err := c.rdb.Get(ctx, snapshotKey).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var snap usecase.CatalogSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, false, err
	}
	return &snap, true, nil
}

func (c *CatalogCache) Remember(ctx context.Context, snap *usecase.CatalogSnapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, snapshotKey, raw, c.ttl).Err()
}

var _ usecase.SnapshotCache = (*CatalogCache)(nil)
