// Package bootstrap wires up shared runtime dependencies for the
// server and the maintenance commands.
package bootstrap

import (
	"fmt"

	"recipehub/internal/cache"
	"recipehub/internal/config"
	"recipehub/internal/database"
	"recipehub/internal/seed"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Options control runtime initialization behavior.
type Options struct {
	// SeedBuiltIns installs the baseline ingredient catalog after the
	// schema is migrated. Idempotent, so enabled for the server by
	// default.
	SeedBuiltIns bool
}

// InitRuntime connects to the database and Redis and optionally seeds
// the built-in ingredient catalog. The Redis client may be nil when the
// instance is unreachable; callers degrade gracefully.
func InitRuntime(cfg *config.Config, opts Options) (*gorm.DB, *redis.Client, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)
	r := cache.GetClient()

	if opts.SeedBuiltIns {
		if err := seed.Ingredients(db); err != nil {
			return nil, nil, fmt.Errorf("failed to seed built-in ingredients: %w", err)
		}
	}

	return db, r, nil
}
