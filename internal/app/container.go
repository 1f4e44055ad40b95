package app

import (
	"context"
	"time"

	"github.com/placementhub/placement-portal/internal/config"
	"github.com/placementhub/placement-portal/internal/database/migration"
	"github.com/placementhub/placement-portal/internal/database/postgres"
	"github.com/placementhub/placement-portal/internal/infrastructure/cache"

	"github.com/rs/zerolog"
)

type Container struct {
	Config config.Config
	Store  *postgres.Store
	Cache  *cache.Redis
	Logger zerolog.Logger
}

// NewContainer connects storage, applies pending migrations and brings up
// the cache.
func NewContainer(cfg config.Config, logger zerolog.Logger, migrationsDir string) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store, err := postgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	runner := migration.Runner{Dir: migrationsDir}
	if err := runner.Run(ctx, store.SQLDB()); err != nil {
		_ = store.Close()
		return nil, err
	}

	return &Container{
		Config: cfg,
		Store:  store,
		Cache:  cache.NewRedis(cfg.Redis, logger),
		Logger: logger,
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Store == nil {
		return nil
	}
	return c.Store.Close()
}
