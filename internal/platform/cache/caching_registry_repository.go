// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"symbol_backend/internal/feature/resolution/domain/entity"
	"symbol_backend/internal/feature/resolution/usecase"
)

// CachingRegistryRepository decorates a RegistryRepository with Redis
// caching. Gets are read-through; Puts write through to the underlying
// repository and then refresh the cached entry. Only positive lookups are
// cached: a miss must stay a miss so that later confirmations are visible
// immediately.
type CachingRegistryRepository struct {
	inner     usecase.RegistryRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// NewCachingRegistryRepository decorates a RegistryRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "symbolmap".
func NewCachingRegistryRepository(rdb *redis.Client, ttl time.Duration, inner usecase.RegistryRepository, namespace string) *CachingRegistryRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "symbolmap"
	}
	return &CachingRegistryRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Get retrieves a mapping, checking cache first then falling back to the
// underlying repository.
func (c *CachingRegistryRepository) Get(ctx context.Context, rawSymbol string) (*entity.RegistryEntry, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.Get(ctx, rawSymbol)
	}

	key := c.cacheKey(rawSymbol)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var e entity.RegistryEntry
		if err := json.Unmarshal(b, &e); err == nil {
			return &e, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to the underlying repository
	e, err := c.inner.Get(ctx, rawSymbol)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(e); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return e, nil
}

// Put upserts a mapping and refreshes its cache entry.
func (c *CachingRegistryRepository) Put(ctx context.Context, e entity.RegistryEntry) error {
	if err := c.inner.Put(ctx, e); err != nil {
		return err
	}
	if c.rdb == nil {
		return nil
	}

	// Refresh the cached entry so a stale mapping never outlives a
	// confirmation (best effort: fall back to invalidation on marshal failure)
	key := c.cacheKey(e.RawSymbol)
	if b, err := json.Marshal(&e); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	} else {
		_ = c.rdb.Del(ctx, key).Err()
	}
	return nil
}

// ListAll bypasses the cache; full listings always hit the repository.
func (c *CachingRegistryRepository) ListAll(ctx context.Context) ([]entity.RegistryEntry, error) {
	return c.inner.ListAll(ctx)
}

// cacheKey generates the Redis key for one raw symbol.
func (c *CachingRegistryRepository) cacheKey(rawSymbol string) string {
	return fmt.Sprintf("%s:%s", c.namespace, safe(rawSymbol))
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
