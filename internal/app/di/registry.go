// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"symbol_backend/internal/feature/resolution/adapters"
	"symbol_backend/internal/feature/resolution/usecase"
	"symbol_backend/internal/platform/cache"
)

// registryCacheTTL bounds how long a cached mapping can outlive a write
// made by another process sharing the same database.
const registryCacheTTL = 5 * time.Minute

// NewRegistryRepository creates a RegistryRepository implementation.
// With a database it returns the GORM-backed registry, wrapped in a Redis
// cache when a client is available. Without a database it falls back to a
// process-local in-memory registry.
func NewRegistryRepository(rdb *redis.Client, db *gorm.DB) usecase.RegistryRepository {
	if db == nil {
		return adapters.NewRegistryMemory()
	}
	repo := adapters.NewRegistryRepository(db)
	if rdb == nil {
		return repo
	}
	return cache.NewCachingRegistryRepository(rdb, registryCacheTTL, repo, "symbolmap")
}
