package api

import (
	"context"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jortega-dev/taskboard-api/internal/api/shared"
	"github.com/jortega-dev/taskboard-api/internal/domain"
	"github.com/jortega-dev/taskboard-api/internal/store"
)

// In-memory store fakes for handler tests. They implement the same error
// contracts as the PostgreSQL implementations.

type mockUserStore struct {
	mu    sync.Mutex
	users map[uuid.UUID]*domain.User
	err   error
}

func newMockUserStore() *mockUserStore {
	return &mockUserStore{users: make(map[uuid.UUID]*domain.User)}
}

func (s *mockUserStore) Create(_ context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return s.err
	}
	for _, u := range s.users {
		if u.Email == user.Email {
			return store.ErrEmailExists
		}
		if u.Username == user.Username {
			return store.ErrUsernameExists
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.MinCost)
	if err != nil {
		return err
	}
	user.HashedPassword = string(hashed)
	user.Password = ""

	stored := *user
	s.users[user.ID] = &stored
	return nil
}

func (s *mockUserStore) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (s *mockUserStore) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, store.ErrUserNotFound
}

type mockTaskStore struct {
	mu    sync.Mutex
	tasks map[uuid.UUID]*domain.Task
	err   error
}

func newMockTaskStore() *mockTaskStore {
	return &mockTaskStore{tasks: make(map[uuid.UUID]*domain.Task)}
}

func (s *mockTaskStore) Create(_ context.Context, task *domain.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return s.err
	}
	stored := *task
	s.tasks[task.ID] = &stored
	return nil
}

func (s *mockTaskStore) Get(_ context.Context, id uuid.UUID, includeDeleted bool) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[id]
	if !ok || (t.IsDeleted && !includeDeleted) {
		return nil, store.ErrTaskNotFound
	}
	copied := *t
	return &copied, nil
}

func (s *mockTaskStore) List(
	_ context.Context,
	userID uuid.UUID,
	_, _ int,
	includeDeleted bool,
) ([]*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return nil, s.err
	}
	tasks := make([]*domain.Task, 0)
	for _, t := range s.tasks {
		if t.UserID != userID || (t.IsDeleted && !includeDeleted) {
			continue
		}
		copied := *t
		tasks = append(tasks, &copied)
	}
	return tasks, nil
}

func (s *mockTaskStore) Update(_ context.Context, task *domain.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[task.ID]
	if !ok || t.IsDeleted {
		return store.ErrTaskNotFound
	}
	t.Title = task.Title
	t.Description = task.Description
	t.Status = task.Status
	return nil
}

func (s *mockTaskStore) SoftDelete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[id]
	if !ok || t.IsDeleted {
		return store.ErrTaskNotFound
	}
	t.IsDeleted = true
	return nil
}

func (s *mockTaskStore) Restore(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[id]
	if !ok {
		return store.ErrTaskNotFound
	}
	t.IsDeleted = false
	return nil
}

type mockMessageStore struct {
	mu       sync.Mutex
	messages []*domain.Message
	err      error
}

func newMockMessageStore() *mockMessageStore {
	return &mockMessageStore{}
}

func (s *mockMessageStore) Create(_ context.Context, msg *domain.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return s.err
	}
	stored := *msg
	s.messages = append(s.messages, &stored)
	return nil
}

func (s *mockMessageStore) ListBySession(
	_ context.Context,
	sessionID string,
	_, _ int,
) ([]*domain.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return nil, s.err
	}
	messages := make([]*domain.Message, 0)
	for _, m := range s.messages {
		if m.SessionID == sessionID {
			copied := *m
			messages = append(messages, &copied)
		}
	}
	return messages, nil
}

// withUserID simulates the authentication middleware by injecting the user
// ID into the request context.
func withUserID(userID uuid.UUID) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), shared.UserIDContextKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
