package main

import (
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jortega-dev/taskboard-api/internal/config"
	"github.com/jortega-dev/taskboard-api/internal/domain"
	"github.com/jortega-dev/taskboard-api/internal/store"
)

type seedUserStore struct {
	users   map[string]*domain.User
	created int
}

func newSeedUserStore() *seedUserStore {
	return &seedUserStore{users: make(map[string]*domain.User)}
}

func (s *seedUserStore) Create(_ context.Context, user *domain.User) error {
	if _, ok := s.users[user.Email]; ok {
		return store.ErrEmailExists
	}
	user.HashedPassword = "hashed"
	user.Password = ""
	s.users[user.Email] = user
	s.created++
	return nil
}

func (s *seedUserStore) GetByID(_ context.Context, _ uuid.UUID) (*domain.User, error) {
	return nil, store.ErrUserNotFound
}

func (s *seedUserStore) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := s.users[email]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return u, nil
}

func newSeedTestApp(users store.UserStore, admin config.AdminConfig) *application {
	return &application{
		config:    &config.Config{Admin: admin},
		logger:    slog.Default(),
		userStore: users,
	}
}

func TestSeedAdminUser(t *testing.T) {
	t.Parallel()

	admin := config.AdminConfig{
		Username: "admin",
		Email:    "admin@example.com",
		Password: "admin-password-long-enough",
	}

	users := newSeedUserStore()
	app := newSeedTestApp(users, admin)

	require.NoError(t, app.seedAdminUser(context.Background()))
	assert.Equal(t, 1, users.created)

	// Idempotent on restart.
	require.NoError(t, app.seedAdminUser(context.Background()))
	assert.Equal(t, 1, users.created)
}

func TestSeedAdminUserSkippedWithoutPassword(t *testing.T) {
	t.Parallel()

	users := newSeedUserStore()
	app := newSeedTestApp(users, config.AdminConfig{Username: "admin", Email: "admin@example.com"})

	require.NoError(t, app.seedAdminUser(context.Background()))
	assert.Zero(t, users.created)
}
