package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MessageSender discriminates who produced a message in a session.
type MessageSender string

const (
	MessageSenderUser   MessageSender = "user"
	MessageSenderSystem MessageSender = "system"
)

// Message validation errors.
var (
	ErrEmptyMessageID      = errors.New("message ID cannot be empty")
	ErrEmptySessionID      = errors.New("session ID cannot be empty")
	ErrEmptyMessageContent = errors.New("message content cannot be empty")
	ErrInvalidSender       = errors.New("sender must be 'user' or 'system'")
)

// Message is a single utterance inside a conversation session. Length and
// WordCount are derived from the content at construction time and stored
// alongside it so listings do not recompute them.
type Message struct {
	ID        uuid.UUID     `json:"id"`
	SessionID string        `json:"session_id"`
	UserID    uuid.UUID     `json:"user_id"`
	Content   string        `json:"content"`
	Sender    MessageSender `json:"sender"`
	Length    int           `json:"message_length"`
	WordCount int           `json:"word_count"`
	CreatedAt time.Time     `json:"created_at"`
}

// IsValid reports whether the sender is one of the known values.
func (s MessageSender) IsValid() bool {
	return s == MessageSenderUser || s == MessageSenderSystem
}

// NewMessage creates a Message in the given session, computing the content
// metadata, and validates it.
func NewMessage(sessionID string, userID uuid.UUID, content string, sender MessageSender) (*Message, error) {
	msg := &Message{
		ID:        uuid.New(),
		SessionID: strings.TrimSpace(sessionID),
		UserID:    userID,
		Content:   content,
		Sender:    sender,
		Length:    len([]rune(content)),
		WordCount: len(strings.Fields(content)),
		CreatedAt: time.Now().UTC(),
	}

	if err := msg.Validate(); err != nil {
		return nil, err
	}

	return msg, nil
}

// Validate checks if the Message has valid data.
func (m *Message) Validate() error {
	if m.ID == uuid.Nil {
		return ErrEmptyMessageID
	}

	if m.SessionID == "" {
		return ErrEmptySessionID
	}

	if m.UserID == uuid.Nil {
		return ErrEmptyUserID
	}

	if strings.TrimSpace(m.Content) == "" {
		return ErrEmptyMessageContent
	}

	if !m.Sender.IsValid() {
		return ErrInvalidSender
	}

	return nil
}
