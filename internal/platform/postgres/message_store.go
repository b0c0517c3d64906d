package postgres

import (
	"context"
	"fmt"

	"github.com/jortega-dev/taskboard-api/internal/domain"
	"github.com/jortega-dev/taskboard-api/internal/platform/logger"
	"github.com/jortega-dev/taskboard-api/internal/store"
)

// MessageStore implements store.MessageStore on PostgreSQL.
type MessageStore struct {
	db store.DBTX
}

var _ store.MessageStore = (*MessageStore)(nil)

// NewMessageStore creates a PostgreSQL-backed message store.
func NewMessageStore(db store.DBTX) *MessageStore {
	return &MessageStore{db: db}
}

// Create implements store.MessageStore.Create.
func (s *MessageStore) Create(ctx context.Context, msg *domain.Message) error {
	log := logger.FromContext(ctx)

	if err := msg.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO messages (id, session_id, user_id, content, sender, message_length, word_count, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := s.db.ExecContext(ctx, query,
		msg.ID,
		msg.SessionID,
		msg.UserID,
		msg.Content,
		msg.Sender,
		msg.Length,
		msg.WordCount,
		msg.CreatedAt,
	)
	if err != nil {
		log.Error("failed to insert message", "error", err, "message_id", msg.ID)
		return fmt.Errorf("failed to insert message: %w", err)
	}

	return nil
}

// ListBySession implements store.MessageStore.ListBySession.
func (s *MessageStore) ListBySession(
	ctx context.Context,
	sessionID string,
	offset, limit int,
) ([]*domain.Message, error) {
	log := logger.FromContext(ctx)

	query := `
		SELECT id, session_id, user_id, content, sender, message_length, word_count, created_at
		FROM messages
		WHERE session_id = $1
		ORDER BY created_at ASC
		OFFSET $2 LIMIT $3
	`

	rows, err := s.db.QueryContext(ctx, query, sessionID, offset, limit)
	if err != nil {
		log.Error("failed to query messages", "error", err, "session_id", sessionID)
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}
	defer func() { _ = rows.Close() }()

	messages := make([]*domain.Message, 0)
	for rows.Next() {
		var msg domain.Message
		if err := rows.Scan(
			&msg.ID,
			&msg.SessionID,
			&msg.UserID,
			&msg.Content,
			&msg.Sender,
			&msg.Length,
			&msg.WordCount,
			&msg.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan message row: %w", err)
		}
		messages = append(messages, &msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate message rows: %w", err)
	}

	return messages, nil
}
