// Package bootstrap wires up runtime dependencies shared by the binaries.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/naveenkumar921995-cmd/The-Emerging-Icons/internal/cache"
	"github.com/naveenkumar921995-cmd/The-Emerging-Icons/internal/config"
	"github.com/naveenkumar921995-cmd/The-Emerging-Icons/internal/database"
	"github.com/naveenkumar921995-cmd/The-Emerging-Icons/internal/repository"
	"github.com/naveenkumar921995-cmd/The-Emerging-Icons/internal/service"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// InitRuntime connects to the database and Redis and guarantees the default
// administrator account exists. Every binary goes through here so a fresh
// deployment is moderatable immediately.
func InitRuntime(ctx context.Context, cfg *config.Config) (*gorm.DB, *redis.Client, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}

	// May leave a nil client if Redis is unreachable; the cache degrades to
	// a no-op in that case.
	cache.InitRedis(cfg.RedisURL)
	r := cache.GetClient()

	creds := service.NewCredentialService(repository.NewAdminRepository(db))
	if err := creds.SeedDefault(ctx); err != nil {
		return nil, nil, fmt.Errorf("failed to seed default admin: %w", err)
	}

	return db, r, nil
}
