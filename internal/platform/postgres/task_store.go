package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jortega-dev/taskboard-api/internal/domain"
	"github.com/jortega-dev/taskboard-api/internal/platform/logger"
	"github.com/jortega-dev/taskboard-api/internal/store"
)

// TaskStore implements store.TaskStore on PostgreSQL.
type TaskStore struct {
	db store.DBTX
}

var _ store.TaskStore = (*TaskStore)(nil)

// NewTaskStore creates a PostgreSQL-backed task store.
func NewTaskStore(db store.DBTX) *TaskStore {
	return &TaskStore{db: db}
}

// Create implements store.TaskStore.Create.
func (s *TaskStore) Create(ctx context.Context, task *domain.Task) error {
	log := logger.FromContext(ctx)

	if err := task.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO tasks (id, user_id, title, description, status, is_deleted, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := s.db.ExecContext(ctx, query,
		task.ID,
		task.UserID,
		task.Title,
		task.Description,
		task.Status,
		task.IsDeleted,
		task.CreatedAt,
		task.UpdatedAt,
	)
	if err != nil {
		log.Error("failed to insert task", "error", err, "task_id", task.ID)
		return fmt.Errorf("failed to insert task: %w", err)
	}

	return nil
}

// Get implements store.TaskStore.Get.
func (s *TaskStore) Get(ctx context.Context, id uuid.UUID, includeDeleted bool) (*domain.Task, error) {
	query := `
		SELECT id, user_id, title, description, status, is_deleted, created_at, updated_at
		FROM tasks
		WHERE id = $1
	`
	if !includeDeleted {
		query += ` AND is_deleted = FALSE`
	}

	var task domain.Task
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&task.ID,
		&task.UserID,
		&task.Title,
		&task.Description,
		&task.Status,
		&task.IsDeleted,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to query task: %w", err)
	}

	return &task, nil
}

// List implements store.TaskStore.List.
func (s *TaskStore) List(
	ctx context.Context,
	userID uuid.UUID,
	offset, limit int,
	includeDeleted bool,
) ([]*domain.Task, error) {
	log := logger.FromContext(ctx)

	query := `
		SELECT id, user_id, title, description, status, is_deleted, created_at, updated_at
		FROM tasks
		WHERE user_id = $1
	`
	if !includeDeleted {
		query += ` AND is_deleted = FALSE`
	}
	query += `
		ORDER BY created_at ASC
		OFFSET $2 LIMIT $3
	`

	rows, err := s.db.QueryContext(ctx, query, userID, offset, limit)
	if err != nil {
		log.Error("failed to query tasks", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	tasks := make([]*domain.Task, 0)
	for rows.Next() {
		var task domain.Task
		if err := rows.Scan(
			&task.ID,
			&task.UserID,
			&task.Title,
			&task.Description,
			&task.Status,
			&task.IsDeleted,
			&task.CreatedAt,
			&task.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan task row: %w", err)
		}
		tasks = append(tasks, &task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate task rows: %w", err)
	}

	return tasks, nil
}

// Update implements store.TaskStore.Update.
func (s *TaskStore) Update(ctx context.Context, task *domain.Task) error {
	if err := task.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	query := `
		UPDATE tasks
		SET title = $1, description = $2, status = $3, updated_at = $4
		WHERE id = $5 AND is_deleted = FALSE
	`

	return s.execExpectingRow(ctx, query,
		task.Title,
		task.Description,
		task.Status,
		time.Now().UTC(),
		task.ID,
	)
}

// SoftDelete implements store.TaskStore.SoftDelete.
func (s *TaskStore) SoftDelete(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE tasks
		SET is_deleted = TRUE, updated_at = $1
		WHERE id = $2 AND is_deleted = FALSE
	`
	return s.execExpectingRow(ctx, query, time.Now().UTC(), id)
}

// Restore implements store.TaskStore.Restore.
func (s *TaskStore) Restore(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE tasks
		SET is_deleted = FALSE, updated_at = $1
		WHERE id = $2
	`
	return s.execExpectingRow(ctx, query, time.Now().UTC(), id)
}

// execExpectingRow runs an UPDATE that must touch exactly one row and maps
// "no rows" to ErrTaskNotFound.
func (s *TaskStore) execExpectingRow(ctx context.Context, query string, args ...any) error {
	log := logger.FromContext(ctx)

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to update task", "error", err)
		return fmt.Errorf("failed to update task: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return store.ErrTaskNotFound
	}

	return nil
}
