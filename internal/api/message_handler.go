package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/jortega-dev/taskboard-api/internal/api/shared"
	"github.com/jortega-dev/taskboard-api/internal/domain"
	"github.com/jortega-dev/taskboard-api/internal/store"
)

// MessageHandler handles session message API requests.
type MessageHandler struct {
	messageStore store.MessageStore
	validator    *validator.Validate
}

// NewMessageHandler creates a new MessageHandler with the given dependencies.
func NewMessageHandler(messageStore store.MessageStore) *MessageHandler {
	return &MessageHandler{
		messageStore: messageStore,
		validator:    validator.New(),
	}
}

// Create handles POST /messages. Content metadata (character and word
// counts) is derived server-side at construction.
func (h *MessageHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "")
		return
	}

	var req CreateMessageRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	sender := domain.MessageSender(req.Sender)
	if req.Sender == "" {
		sender = domain.MessageSenderUser
	}

	msg, err := domain.NewMessage(req.SessionID, userID, req.Content, sender)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.messageStore.Create(r.Context(), msg); err != nil {
		HandleAPIError(w, r, err, "Failed to create message")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, msg)
}

// ListBySession handles GET /messages/{sessionID}, returning the session's
// messages in chronological order.
func (h *MessageHandler) ListBySession(w http.ResponseWriter, r *http.Request) {
	if _, ok := getUserIDFromContext(r); !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "")
		return
	}

	sessionID := chi.URLParam(r, "sessionID")
	if sessionID == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Session ID is required")
		return
	}

	offset, limit := getPagination(r)

	messages, err := h.messageStore.ListBySession(r.Context(), sessionID, offset, limit)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list messages")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, messages)
}
