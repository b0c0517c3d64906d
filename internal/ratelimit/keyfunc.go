package ratelimit

import (
	"crypto/sha256"
	"encoding/hex"
	"net"
	"net/http"
	"strings"
)

// KeyFunc derives the rate-limit identity for an inbound request. The
// derivation must be deterministic: the same caller yields the same key for
// the whole window.
type KeyFunc func(r *http.Request) string

// DefaultKeyFunc derives the caller identity in order of preference:
//
//  1. the bearer token from the Authorization header, hashed so the raw
//     credential never reaches the shared store;
//  2. the first hop of X-Forwarded-For, set by the fronting proxy;
//  3. the connection's remote address.
//
// The limiter runs before authentication, so the token is used as an opaque
// identifier and never validated here. An unverifiable caller maps to the
// shared "unknown" bucket rather than escaping limiting entirely.
func DefaultKeyFunc(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if token, ok := strings.CutPrefix(auth, "Bearer "); ok && token != "" {
		sum := sha256.Sum256([]byte(token))
		return "token:" + hex.EncodeToString(sum[:8])
	}

	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return "ip:" + ip
		}
	}

	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil && host != "" {
		return "ip:" + host
	}
	if r.RemoteAddr != "" {
		return "ip:" + r.RemoteAddr
	}

	return "unknown"
}

// IPKeyFunc ignores credentials and keys purely on the caller address. It is
// the strategy to plug in when authenticated users should share a per-host
// budget instead of a per-token one.
func IPKeyFunc(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return "ip:" + ip
		}
	}

	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil && host != "" {
		return "ip:" + host
	}
	if r.RemoteAddr != "" {
		return "ip:" + r.RemoteAddr
	}

	return "unknown"
}
