package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jortega-dev/taskboard-api/internal/config"
	"github.com/jortega-dev/taskboard-api/internal/platform/postgres"
	"github.com/jortega-dev/taskboard-api/internal/platform/redis"
	"github.com/jortega-dev/taskboard-api/internal/ratelimit"
	"github.com/jortega-dev/taskboard-api/internal/service/auth"
	"github.com/jortega-dev/taskboard-api/internal/store"
)

// application holds the shared application dependencies so wiring and
// cleanup live in one place.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	redisClient *goredis.Client

	userStore       store.UserStore
	taskStore       store.TaskStore
	messageStore    store.MessageStore
	inspectionStore store.InspectionStore

	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier

	rateLimiter *ratelimit.Limiter
}

// newApplication creates an application instance with all dependencies
// initialized. Core dependencies (config, logger, database) must already be
// established.
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	db *sql.DB,
) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	app.passwordVerifier = auth.NewBcryptHasher(cfg.Auth.BCryptCost)

	app.userStore = postgres.NewUserStore(db, cfg.Auth.BCryptCost)
	app.taskStore = postgres.NewTaskStore(db)
	app.messageStore = postgres.NewMessageStore(db)
	app.inspectionStore = postgres.NewInspectionStore(db)

	app.redisClient, err = redis.NewClient(ctx, cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	logger.Info("Redis connection established", "addr", cfg.Redis.Addr)

	counterStore := redis.NewCounterStore(
		app.redisClient,
		time.Duration(cfg.Redis.TimeoutMS)*time.Millisecond,
	)
	app.rateLimiter, err = ratelimit.NewLimiter(counterStore, ratelimit.Config{
		Limit:     cfg.RateLimit.Limit,
		Window:    time.Duration(cfg.RateLimit.WindowSeconds) * time.Second,
		Policy:    ratelimit.FailPolicy(cfg.RateLimit.FailPolicy),
		KeyPrefix: cfg.RateLimit.KeyPrefix,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build rate limiter: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the HTTP server and blocks until shutdown.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.redisClient != nil {
		if err := app.redisClient.Close(); err != nil {
			app.logger.Error("Error closing redis connection", "error", err)
		}
	}

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
