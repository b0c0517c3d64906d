package api

import (
	"time"

	"github.com/google/uuid"
)

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=12,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	UserID uuid.UUID `json:"user_id"`

	// AccessToken is the JWT used for API authorization.
	AccessToken string `json:"token"`

	// RefreshToken is the JWT used to obtain new access tokens.
	RefreshToken string `json:"refresh_token,omitempty"`
}

// RefreshTokenRequest defines the payload for the token refresh endpoint.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// RefreshTokenResponse defines the successful response for the token refresh
// endpoint. Both tokens are rotated.
type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// CreateTaskRequest defines the payload for creating a task.
type CreateTaskRequest struct {
	Title       string `json:"title"       validate:"required,max=255"`
	Description string `json:"description" validate:"max=2000"`
}

// UpdateTaskRequest defines the payload for updating a task. All fields are
// applied as given; clients send the full desired state.
type UpdateTaskRequest struct {
	Title       string `json:"title"       validate:"required,max=255"`
	Description string `json:"description" validate:"max=2000"`
	Status      string `json:"status"      validate:"required,oneof=pending completed"`
}

// CreateMessageRequest defines the payload for posting a message to a
// session. Sender defaults to "user" when omitted.
type CreateMessageRequest struct {
	SessionID string `json:"session_id" validate:"required,max=100"`
	Content   string `json:"content"    validate:"required"`
	Sender    string `json:"sender"     validate:"omitempty,oneof=user system"`
}

// InspectionContactPayload is a contact person attached to an inspection.
type InspectionContactPayload struct {
	Name  string `json:"name"  validate:"required,max=100"`
	Phone string `json:"phone" validate:"max=30"`
	Email string `json:"email" validate:"omitempty,email"`
	Role  string `json:"role"  validate:"required,max=50"`
}

// CreateInspectionRequest defines the payload for recording an inspection.
type CreateInspectionRequest struct {
	Vehicle     string                     `json:"vehicle"     validate:"required,max=100"`
	Year        int                        `json:"year"        validate:"required"`
	Model       string                     `json:"model"       validate:"required,max=100"`
	Color       string                     `json:"color"       validate:"max=50"`
	InspectedAt time.Time                  `json:"inspected_at" validate:"required"`
	Kind        string                     `json:"kind"        validate:"required,oneof=pickup delivery"`
	City        string                     `json:"city"        validate:"max=100"`
	State       string                     `json:"state"       validate:"max=50"`
	Notes       string                     `json:"notes"       validate:"max=2000"`
	FolderLink  string                     `json:"folder_link" validate:"omitempty,url"`
	Contacts    []InspectionContactPayload `json:"contacts"    validate:"dive"`
}
