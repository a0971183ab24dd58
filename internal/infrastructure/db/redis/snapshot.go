package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/csecompass/catalog/internal/core/domain"
	"github.com/csecompass/catalog/internal/core/ports"
	"github.com/csecompass/catalog/internal/pkg/metrics"
)

const defaultSnapshotTTL = time.Minute

// SnapshotCache keeps the last successful list fetch of each collection.
// Key format: compass:snapshot:<collection>
//
// Cache errors never fail a fetch: they are logged and the source is read
// instead. Failed fetches are not cached.
type SnapshotCache struct {
	client *redis.Client
	ttl    time.Duration
	log    zerolog.Logger
}

// NewSnapshotCache wraps client. A default TTL is applied when ttl <= 0.
func NewSnapshotCache(client *redis.Client, ttl time.Duration, log zerolog.Logger) *SnapshotCache {
	if ttl <= 0 {
		ttl = defaultSnapshotTTL
	}
	return &SnapshotCache{client: client, ttl: ttl, log: log}
}

// Ping reports Redis reachability for the readiness check.
func (c *SnapshotCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Invalidate drops the snapshots of the given collections.
func (c *SnapshotCache) Invalidate(ctx context.Context, collections ...string) error {
	if len(collections) == 0 {
		return nil
	}
	keys := make([]string, len(collections))
	for i, col := range collections {
		keys[i] = c.key(col)
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("snapshot invalidate: %w", err)
	}
	return nil
}

// Resources decorates src with the snapshot cache.
func (c *SnapshotCache) Resources(src ports.ResourceSource) *CachedResources {
	return &CachedResources{cache: c, src: src}
}

// Roadmaps decorates src with the snapshot cache.
func (c *SnapshotCache) Roadmaps(src ports.RoadmapSource) *CachedRoadmaps {
	return &CachedRoadmaps{cache: c, src: src}
}

func (c *SnapshotCache) key(collection string) string {
	return "compass:snapshot:" + collection
}

func readThrough[T any](ctx context.Context, c *SnapshotCache, collection string, fetch func(context.Context) ([]T, error)) ([]T, error) {
	key := c.key(collection)

	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var items []T
		jerr := json.Unmarshal(raw, &items)
		if jerr == nil {
			metrics.CacheLookupsTotal.WithLabelValues(collection, "hit").Inc()
			return items, nil
		}
		metrics.CacheLookupsTotal.WithLabelValues(collection, "error").Inc()
		c.log.Warn().Err(jerr).Str("key", key).Msg("corrupt snapshot, reading source")
	case errors.Is(err, redis.Nil):
		metrics.CacheLookupsTotal.WithLabelValues(collection, "miss").Inc()
	default:
		metrics.CacheLookupsTotal.WithLabelValues(collection, "error").Inc()
		c.log.Warn().Err(err).Str("key", key).Msg("snapshot lookup failed, reading source")
	}

	items, err := fetch(ctx)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(items)
	if err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("failed to encode snapshot")
		return items, nil
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("failed to store snapshot")
	}
	return items, nil
}

// CachedResources is a ports.ResourceSource backed by the snapshot cache.
type CachedResources struct {
	cache *SnapshotCache
	src   ports.ResourceSource
}

func (r *CachedResources) ListResources(ctx context.Context) ([]domain.Resource, error) {
	return readThrough(ctx, r.cache, domain.CollectionResources, r.src.ListResources)
}

// GetResource is not cached; detail views always read the source.
func (r *CachedResources) GetResource(ctx context.Context, id string) (*domain.Resource, error) {
	return r.src.GetResource(ctx, id)
}

// CachedRoadmaps is a ports.RoadmapSource backed by the snapshot cache.
type CachedRoadmaps struct {
	cache *SnapshotCache
	src   ports.RoadmapSource
}

func (r *CachedRoadmaps) ListRoadmaps(ctx context.Context) ([]domain.Roadmap, error) {
	return readThrough(ctx, r.cache, domain.CollectionRoadmaps, r.src.ListRoadmaps)
}

// GetRoadmap is not cached; detail views always read the source.
func (r *CachedRoadmaps) GetRoadmap(ctx context.Context, id string) (*domain.Roadmap, error) {
	return r.src.GetRoadmap(ctx, id)
}
