package app

import (
	"context"
	"fmt"

	"buildconnect/internal/cache"
	"buildconnect/internal/config"
	"buildconnect/internal/database"
	"buildconnect/internal/repository"
	"buildconnect/internal/repository/mongostore"

	"go.uber.org/zap"
)

// OpenStores connects the backend selected by STORE_DRIVER. The returned
// func releases the connection.
func OpenStores(ctx context.Context, cfg *config.Config, log *zap.Logger) (Stores, func(), error) {
	switch cfg.StoreDriver {
	case config.DriverMongo:
		client, err := database.ConnectMongo(ctx, cfg.MongoURL, log)
		if err != nil {
			return Stores{}, nil, err
		}
		closeFn := func() { _ = client.Disconnect(context.Background()) }

		store, err := mongostore.New(ctx, client, cfg.MongoDB)
		if err != nil {
			closeFn()
			return Stores{}, nil, fmt.Errorf("init mongo store: %w", err)
		}
		return MongoStores(store), closeFn, nil

	default:
		db, err := database.Connect(cfg.DatabaseURL, log)
		if err != nil {
			return Stores{}, nil, err
		}
		closeFn := func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}

		if err := repository.Migrate(db); err != nil {
			closeFn()
			return Stores{}, nil, fmt.Errorf("migrate: %w", err)
		}
		return SQLStores(db), closeFn, nil
	}
}

// OpenCache returns the Redis cache when REDIS_ADDR is set and a no-op cache
// otherwise.
func OpenCache(ctx context.Context, cfg *config.Config, log *zap.Logger) (cache.Cache, func(), error) {
	if cfg.RedisAddr == "" {
		log.Info("REDIS_ADDR not set, vendor listing cache disabled")
		return cache.Noop{}, func() {}, nil
	}

	rc, err := cache.NewRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return nil, nil, err
	}
	log.Info("connected to Redis", zap.String("addr", cfg.RedisAddr))
	return rc, func() { _ = rc.Close() }, nil
}
