// Package main implements the entry point for the taskboard API server,
// which serves user accounts, tasks, session messages and vehicle
// inspections behind a Redis-backed rate limiter.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/jortega-dev/taskboard-api/internal/config"
	"github.com/jortega-dev/taskboard-api/internal/platform/logger"
)

func main() {
	ctx := context.Background()

	cfg, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	db, err := setupAppDatabase(cfg, slog.Default())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := runMigrations(db); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	app, err := newApplication(ctx, cfg, slog.Default(), db)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}

	if err := app.seedAdminUser(ctx); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration and sets up structured logging.
func initializeApp() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if _, err := logger.Setup(cfg.Server); err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"rate_limit", cfg.RateLimit.Limit,
		"rate_window_seconds", cfg.RateLimit.WindowSeconds,
		"rate_fail_policy", cfg.RateLimit.FailPolicy)

	return cfg, nil
}
