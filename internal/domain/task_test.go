package domain

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	t.Parallel()

	owner := uuid.New()

	t.Run("valid task", func(t *testing.T) {
		t.Parallel()
		task, err := NewTask(owner, "  buy milk  ", "two liters")
		require.NoError(t, err)

		assert.Equal(t, owner, task.UserID)
		assert.Equal(t, "buy milk", task.Title)
		assert.Equal(t, TaskStatusPending, task.Status)
		assert.False(t, task.IsDeleted)
	})

	tests := []struct {
		name    string
		owner   uuid.UUID
		title   string
		wantErr error
	}{
		{"missing owner", uuid.Nil, "buy milk", ErrEmptyTaskOwner},
		{"empty title", owner, "   ", ErrInvalidTaskTitle},
		{"placeholder title", owner, "String", ErrInvalidTaskTitle},
		{"oversized title", owner, strings.Repeat("a", 256), ErrInvalidTaskTitle},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewTask(tc.owner, tc.title, "")
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestTaskValidateStatus(t *testing.T) {
	t.Parallel()

	task, err := NewTask(uuid.New(), "buy milk", "")
	require.NoError(t, err)

	task.Status = TaskStatusCompleted
	assert.NoError(t, task.Validate())

	task.Status = TaskStatus("archived")
	assert.ErrorIs(t, task.Validate(), ErrInvalidTaskState)
}
