package store

import (
	"context"

	"github.com/jortega-dev/taskboard-api/internal/domain"
)

// MessageStore defines the interface for message persistence.
type MessageStore interface {
	// Create saves a new message.
	Create(ctx context.Context, msg *domain.Message) error

	// ListBySession returns the messages of a session in chronological
	// order, honoring offset/limit pagination.
	ListBySession(ctx context.Context, sessionID string, offset, limit int) ([]*domain.Message, error)
}
