package main

import (
	"context"
	"log"
	"time"

	"talent-pool/internal/app"
	"talent-pool/internal/config"
	"talent-pool/internal/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	lg, err := logger.New(cfg.App)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer func() { _ = lg.Sync() }()

	c, err := app.NewContainer(cfg, lg)
	if err != nil {
		lg.Fatal("failed to init container", zap.Error(err))
	}
	defer func() {
		_ = c.Close()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := c.Migrate(ctx); err != nil {
		lg.Fatal("migration failed", zap.Error(err))
	}

	res, err := c.PopulateUC.Populate(ctx)
	if err != nil {
		lg.Fatal("populate failed", zap.Error(err))
	}
	lg.Info(res.Message, zap.Bool("populated", res.Populated))
}
