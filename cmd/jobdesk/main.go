package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"jobdesk/internal/board"
	"jobdesk/internal/cli"
	"jobdesk/internal/config"
	"jobdesk/internal/observability"
	"jobdesk/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger := observability.NewLogger(cfg.LogLevel)
	ctx := context.Background()

	snaps, err := openStorage(ctx, cfg)
	if err != nil {
		log.Fatalf("open storage: %v", err)
	}
	defer snaps.Close()

	store, err := board.New(ctx, snaps, board.Options{
		AdminEmail:    cfg.AdminEmail,
		AdminPassword: cfg.AdminPassword,
		Logger:        logger,
	})
	if err != nil {
		log.Fatalf("load store: %v", err)
	}

	root := cli.NewRootCommand(&cli.Env{
		Store:  store,
		Config: cfg,
		Out:    os.Stdout,
	})
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func openStorage(ctx context.Context, cfg *config.Config) (storage.Snapshots, error) {
	switch cfg.StoreBackend {
	case "memory":
		return storage.NewMemory(), nil
	case "redis":
		return storage.OpenRedis(ctx, cfg.RedisAddr)
	case "postgres":
		return storage.OpenPostgres(storage.PostgresConfig{
			DSN:             cfg.PostgresDSN,
			MaxOpenConns:    cfg.DBMaxOpenConns,
			MaxIdleConns:    cfg.DBMaxIdleConns,
			ConnMaxIdle:     cfg.DBConnMaxIdle,
			ConnMaxLifetime: cfg.DBConnMaxLife,
		})
	default:
		return storage.OpenSQLite(cfg.StorePath)
	}
}
