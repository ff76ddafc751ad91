package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AnyaAven/jobly/internal/auth/tokens"
	"github.com/AnyaAven/jobly/internal/cache"
	"github.com/AnyaAven/jobly/internal/database/migrations"
	"github.com/AnyaAven/jobly/internal/database/postgres"
	"github.com/AnyaAven/jobly/internal/pkg/log"
	platformconfig "github.com/AnyaAven/jobly/internal/platform/config"
)

func main() {
	cfg, err := platformconfig.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load platform config: %v", err)
	}
	log.SetDebug(cfg.Server.Debug)
	log.InfoStruct(cfg.Redacted())

	ctx := context.Background()

	if cfg.Database.AutoMigrate {
		if err := migrate(ctx, cfg); err != nil {
			log.Fatalf("Failed to apply migrations: %v", err)
		}
	}

	pgClient, err := postgres.NewClient(ctx, &cfg.Database.Postgres)
	if err != nil {
		log.Fatalf("Failed to create postgres client: %v", err)
	}
	defer pgClient.Close()

	cacheBackend, err := cache.New(cfg.Cache)
	if err != nil {
		log.Fatalf("Failed to create cache: %v", err)
	}
	if cacheBackend != nil {
		defer cacheBackend.Close()
	}
	cacheService := cache.NewService(cacheBackend, cfg.Cache.Prefix, cfg.Cache.TTL)

	issuer := tokens.NewIssuer(cfg.Auth.SecretKey, cfg.Auth.TokenTTL)

	app := newApp(cfg, pgClient, cacheService, issuer)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit

		log.Info("Shutting down server...")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Error("Server shutdown failed: %v", err)
		}
	}()

	log.Info("Jobly API listening on %s", cfg.Server.Addr())
	if err := app.Listen(cfg.Server.Addr()); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// migrate applies pending migrations over its own connection, which the
// runner closes when done.
func migrate(ctx context.Context, cfg *platformconfig.Config) error {
	client, err := postgres.NewClient(ctx, &cfg.Database.Postgres)
	if err != nil {
		return err
	}

	runner, err := migrations.New(client.DB().DB)
	if err != nil {
		client.Close()
		return err
	}
	defer runner.Close()

	return runner.Up()
}
