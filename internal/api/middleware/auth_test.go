package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jortega-dev/taskboard-api/internal/service/auth"
)

const testSigningSecret = "test-signing-secret-at-least-32-bytes!"

func newAuthTestService(t *testing.T, now func() time.Time) auth.JWTService {
	t.Helper()
	return auth.NewTestJWTService(testSigningSecret, time.Hour, now)
}

// echoUserHandler records the user ID the middleware placed in the context.
func echoUserHandler(captured *uuid.UUID) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id, ok := GetUserID(r); ok {
			*captured = id
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticateValidToken(t *testing.T) {
	t.Parallel()

	svc := newAuthTestService(t, time.Now)
	userID := uuid.New()
	token, err := svc.GenerateToken(context.Background(), userID)
	require.NoError(t, err)

	var captured uuid.UUID
	handler := NewAuthMiddleware(svc).Authenticate(echoUserHandler(&captured))

	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, captured)
}

func TestAuthenticateRejections(t *testing.T) {
	t.Parallel()

	now := time.Now()
	svc := newAuthTestService(t, func() time.Time { return now })

	expired, err := auth.NewTestJWTService(testSigningSecret, time.Hour,
		func() time.Time { return now.Add(-2 * time.Hour) }).
		GenerateToken(context.Background(), uuid.New())
	require.NoError(t, err)

	refresh, err := svc.GenerateRefreshToken(context.Background(), uuid.New())
	require.NoError(t, err)

	tests := []struct {
		name       string
		authHeader string
		wantBody   string
	}{
		{"missing header", "", "Authorization header required"},
		{"not bearer", "Basic abc123", "Invalid authorization format"},
		{"malformed token", "Bearer not-a-jwt", "Invalid token"},
		{"expired token", "Bearer " + expired, "Token expired"},
		{"refresh token used as access token", "Bearer " + refresh, "Invalid token"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			handler := NewAuthMiddleware(svc).Authenticate(okHandler())
			req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.wantBody)
		})
	}
}
