package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMessage(t *testing.T) {
	t.Parallel()

	author := uuid.New()

	t.Run("derives content metadata", func(t *testing.T) {
		t.Parallel()
		msg, err := NewMessage("session-1", author, "hola qué tal", MessageSenderUser)
		require.NoError(t, err)

		assert.Equal(t, 12, msg.Length, "length counts runes, not bytes")
		assert.Equal(t, 3, msg.WordCount)
		assert.Equal(t, MessageSenderUser, msg.Sender)
	})

	tests := []struct {
		name    string
		session string
		content string
		sender  MessageSender
		wantErr error
	}{
		{"empty session", "", "hi", MessageSenderUser, ErrEmptySessionID},
		{"blank content", "session-1", "   ", MessageSenderUser, ErrEmptyMessageContent},
		{"unknown sender", "session-1", "hi", MessageSender("bot"), ErrInvalidSender},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewMessage(tc.session, author, tc.content, tc.sender)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}
