package main

import (
	"context"
	"log"

	"buildconnect/internal/app"
	"buildconnect/internal/cache"
	"buildconnect/internal/config"
	"buildconnect/internal/logger"

	"go.uber.org/zap"
)

// Seeds service categories and the bootstrap admin into the configured store.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zl, err := logger.New(cfg.IsProduction(), cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zl.Sync() }()

	ctx := context.Background()
	stores, closeStores, err := app.OpenStores(ctx, cfg, zl)
	if err != nil {
		zl.Fatal("open store", zap.Error(err))
	}
	defer closeStores()

	if err := app.New(cfg, zl, stores, cache.Noop{}).Seed(ctx); err != nil {
		zl.Fatal("seed failed", zap.Error(err))
	}
	zl.Info("seed complete", zap.String("admin", app.BootstrapAdminEmail))
}
