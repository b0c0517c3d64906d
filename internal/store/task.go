package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/jortega-dev/taskboard-api/internal/domain"
)

// TaskStore defines the interface for task persistence. Deletion is soft:
// deleted rows stay in the table with is_deleted set, and Get/List exclude
// them unless includeDeleted is requested.
type TaskStore interface {
	// Create saves a new task.
	Create(ctx context.Context, task *domain.Task) error

	// Get retrieves a task by ID. Returns ErrTaskNotFound if the task does
	// not exist or is soft-deleted and includeDeleted is false.
	Get(ctx context.Context, id uuid.UUID, includeDeleted bool) (*domain.Task, error)

	// List returns the tasks owned by userID ordered by creation time,
	// honoring offset/limit pagination.
	List(ctx context.Context, userID uuid.UUID, offset, limit int, includeDeleted bool) ([]*domain.Task, error)

	// Update persists the mutable fields (title, description, status) of an
	// existing task. Returns ErrTaskNotFound if the task does not exist.
	Update(ctx context.Context, task *domain.Task) error

	// SoftDelete marks the task as deleted. Returns ErrTaskNotFound if the
	// task does not exist or is already deleted.
	SoftDelete(ctx context.Context, id uuid.UUID) error

	// Restore clears the deleted flag. Restoring a task that is not deleted
	// is a no-op. Returns ErrTaskNotFound if the task does not exist.
	Restore(ctx context.Context, id uuid.UUID) error
}
