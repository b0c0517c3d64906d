package auth

import "time"

// NewTestJWTService creates a JWT service with an injectable clock and no
// clock-skew leeway, for deterministic expiry tests.
func NewTestJWTService(secret string, lifetime time.Duration, timeFunc func() time.Time) JWTService {
	return &hmacJWTService{
		signingKey:           []byte(secret),
		tokenLifetime:        lifetime,
		refreshTokenLifetime: lifetime * 24,
		timeFunc:             timeFunc,
		clockSkew:            0,
	}
}
