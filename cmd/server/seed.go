package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/jortega-dev/taskboard-api/internal/domain"
	"github.com/jortega-dev/taskboard-api/internal/store"
)

// seedAdminUser creates the configured admin account when it does not exist
// yet. Seeding is skipped entirely when no admin password is configured.
func (app *application) seedAdminUser(ctx context.Context) error {
	cfg := app.config.Admin
	if cfg.Password == "" {
		app.logger.Debug("admin seeding skipped, no password configured")
		return nil
	}

	_, err := app.userStore.GetByEmail(ctx, cfg.Email)
	if err == nil {
		app.logger.Debug("admin user already exists", "email", cfg.Email)
		return nil
	}
	if !errors.Is(err, store.ErrUserNotFound) {
		return fmt.Errorf("failed to look up admin user: %w", err)
	}

	admin, err := domain.NewUser(cfg.Username, cfg.Email, cfg.Password)
	if err != nil {
		return fmt.Errorf("invalid admin configuration: %w", err)
	}

	if err := app.userStore.Create(ctx, admin); err != nil {
		// A concurrent instance may have seeded first; that is fine.
		if store.IsDuplicate(err) {
			app.logger.Debug("admin user created concurrently", "email", cfg.Email)
			return nil
		}
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	app.logger.Info("Admin user seeded", "username", cfg.Username)
	return nil
}
