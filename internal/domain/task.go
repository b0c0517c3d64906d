package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TaskStatus enumerates the lifecycle states of a task.
type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusCompleted TaskStatus = "completed"
)

// Task validation errors.
var (
	ErrEmptyTaskID      = errors.New("task ID cannot be empty")
	ErrEmptyTaskOwner   = errors.New("task owner cannot be empty")
	ErrInvalidTaskTitle = errors.New("task title must be a non-empty string of at most 255 characters")
	ErrInvalidTaskState = errors.New("task status must be 'pending' or 'completed'")
)

// Task represents a to-do item owned by a single user. Deletion is soft:
// IsDeleted flags the row and Restore clears it again.
type Task struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      TaskStatus `json:"status"`
	IsDeleted   bool       `json:"is_deleted"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// IsValid reports whether the status is one of the known states.
func (s TaskStatus) IsValid() bool {
	return s == TaskStatusPending || s == TaskStatusCompleted
}

// NewTask creates a pending Task owned by the given user and validates it.
func NewTask(userID uuid.UUID, title, description string) (*Task, error) {
	now := time.Now().UTC()
	task := &Task{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       strings.TrimSpace(title),
		Description: description,
		Status:      TaskStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
func (t *Task) Validate() error {
	if t.ID == uuid.Nil {
		return ErrEmptyTaskID
	}

	if t.UserID == uuid.Nil {
		return ErrEmptyTaskOwner
	}

	if !validTaskTitle(t.Title) {
		return ErrInvalidTaskTitle
	}

	if !t.Status.IsValid() {
		return ErrInvalidTaskState
	}

	return nil
}

// validTaskTitle rejects empty and oversized titles. The literal word
// "string" is rejected too: it is the Swagger UI placeholder and only ever
// arrives when a client submits the example payload unchanged.
func validTaskTitle(title string) bool {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" || len(trimmed) > 255 {
		return false
	}
	return !strings.EqualFold(trimmed, "string")
}
