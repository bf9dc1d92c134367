package cache

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Aayush-devops/dark-web-stores-Dashboard-analytics/internal/filter"
)

// SnapshotCache keeps serialized dashboard view models in Redis, keyed
// by dashboard name and a fingerprint of the filter state. A nil cache
// is valid and always misses, so handlers need no redis branch.
type SnapshotCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewSnapshotCache(rdb *redis.Client, ttl time.Duration) *SnapshotCache {
	return &SnapshotCache{rdb: rdb, ttl: ttl}
}

// Key fingerprints the filter state for the given dashboard.
func Key(dashboard string, st *filter.State) string {
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Sprintf("dashboard:%s:nofp", dashboard)
	}
	return fmt.Sprintf("dashboard:%s:%x", dashboard, sha256.Sum256(data))
}

// Get returns the cached payload for key, if any.
func (c *SnapshotCache) Get(ctx context.Context, key string) ([]byte, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

// Set stores payload under key with the cache TTL. Failures are
// ignored: the cache is an optimization, never a source of truth.
func (c *SnapshotCache) Set(ctx context.Context, key string, payload []byte) {
	if c == nil || c.rdb == nil {
		return
	}
	c.rdb.Set(ctx, key, payload, c.ttl)
}

// Invalidate drops every snapshot of the given dashboard, used when a
// refresh tick replaces the record store.
func (c *SnapshotCache) Invalidate(ctx context.Context, dashboard string) {
	if c == nil || c.rdb == nil {
		return
	}
	iter := c.rdb.Scan(ctx, 0, fmt.Sprintf("dashboard:%s:*", dashboard), 0).Iterator()
	for iter.Next(ctx) {
		c.rdb.Del(ctx, iter.Val())
	}
}
