package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-that-is-long-enough-for-hs256"

func TestGenerateToken(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	lifetime := 60 * time.Minute
	userID := uuid.New()

	svc := NewTestJWTService(testSecret, lifetime, func() time.Time { return fixedTime })

	token, err := svc.GenerateToken(context.Background(), userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)

	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.Equal(t, "access", claims.TokenType)
	assert.Equal(t, fixedTime.Unix(), claims.IssuedAt.Unix())
	assert.Equal(t, fixedTime.Add(lifetime).Unix(), claims.ExpiresAt.Unix())
	assert.NotEmpty(t, claims.ID)
}

func TestValidateToken(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	lifetime := 60 * time.Minute
	userID := uuid.New()

	atTime := func(now time.Time) JWTService {
		return NewTestJWTService(testSecret, lifetime, func() time.Time { return now })
	}

	tests := []struct {
		name      string
		setupFunc func() (JWTService, string)
		wantErr   error
	}{
		{
			name: "valid token",
			setupFunc: func() (JWTService, string) {
				svc := atTime(fixedTime)
				token, _ := svc.GenerateToken(context.Background(), userID)
				return svc, token
			},
			wantErr: nil,
		},
		{
			name: "valid just before expiry",
			setupFunc: func() (JWTService, string) {
				token, _ := atTime(fixedTime).GenerateToken(context.Background(), userID)
				return atTime(fixedTime.Add(lifetime - time.Second)), token
			},
			wantErr: nil,
		},
		{
			name: "expired token",
			setupFunc: func() (JWTService, string) {
				token, _ := atTime(fixedTime).GenerateToken(context.Background(), userID)
				return atTime(fixedTime.Add(lifetime + time.Second)), token
			},
			wantErr: ErrExpiredToken,
		},
		{
			name: "tampered signature",
			setupFunc: func() (JWTService, string) {
				svc := atTime(fixedTime)
				token, _ := svc.GenerateToken(context.Background(), userID)
				// Flip the last character of the signature segment.
				last := token[len(token)-1]
				repl := byte('A')
				if last == repl {
					repl = 'B'
				}
				return svc, token[:len(token)-1] + string(repl)
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "tampered and expired still reports invalid",
			setupFunc: func() (JWTService, string) {
				token, _ := atTime(fixedTime).GenerateToken(context.Background(), userID)
				return atTime(fixedTime.Add(lifetime + time.Hour)), token[:len(token)-2] + "xx"
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "wrong secret",
			setupFunc: func() (JWTService, string) {
				token, _ := atTime(fixedTime).GenerateToken(context.Background(), userID)
				other := NewTestJWTService(strings.Repeat("x", 32), lifetime, func() time.Time { return fixedTime })
				return other, token
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "malformed token",
			setupFunc: func() (JWTService, string) {
				return atTime(fixedTime), "not.a.jwt"
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "refresh token rejected as access token",
			setupFunc: func() (JWTService, string) {
				svc := atTime(fixedTime)
				token, _ := svc.GenerateRefreshToken(context.Background(), userID)
				return svc, token
			},
			wantErr: ErrWrongTokenType,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			svc, token := tc.setupFunc()

			claims, err := svc.ValidateToken(context.Background(), token)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, claims)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, userID, claims.UserID)
		})
	}
}

func TestValidateRefreshToken(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	lifetime := 10 * time.Minute
	userID := uuid.New()

	svc := NewTestJWTService(testSecret, lifetime, func() time.Time { return fixedTime })

	refresh, err := svc.GenerateRefreshToken(context.Background(), userID)
	require.NoError(t, err)

	claims, err := svc.ValidateRefreshToken(context.Background(), refresh)
	require.NoError(t, err)
	assert.Equal(t, "refresh", claims.TokenType)
	assert.Equal(t, userID, claims.UserID)

	// An access token must not pass refresh validation.
	access, err := svc.GenerateToken(context.Background(), userID)
	require.NoError(t, err)
	_, err = svc.ValidateRefreshToken(context.Background(), access)
	assert.ErrorIs(t, err, ErrWrongTokenType)

	// Refresh lifetime is 24x the access lifetime in the test service.
	expired := NewTestJWTService(testSecret, lifetime, func() time.Time {
		return fixedTime.Add(lifetime*24 + time.Second)
	})
	_, err = expired.ValidateRefreshToken(context.Background(), refresh)
	assert.ErrorIs(t, err, ErrExpiredRefreshToken)
}

func TestNewJWTServiceRejectsShortSecret(t *testing.T) {
	t.Parallel()

	_, err := NewJWTService(configWithSecret("short"))
	assert.Error(t, err)
}
