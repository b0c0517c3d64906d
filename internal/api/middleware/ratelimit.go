package middleware

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/jortega-dev/taskboard-api/internal/api/shared"
	"github.com/jortega-dev/taskboard-api/internal/ratelimit"
	"github.com/jortega-dev/taskboard-api/internal/redact"
)

// RateLimitMiddleware enforces a per-caller request budget before any other
// request handling. It holds no mutable state of its own; all counting lives
// in the limiter's store.
type RateLimitMiddleware struct {
	limiter     *ratelimit.Limiter
	keyFunc     ratelimit.KeyFunc
	exemptPaths []string
}

// NewRateLimitMiddleware creates a RateLimitMiddleware over the given
// limiter. Requests whose path starts with one of exemptPaths bypass the
// limiter entirely. A nil keyFunc selects ratelimit.DefaultKeyFunc.
func NewRateLimitMiddleware(
	limiter *ratelimit.Limiter,
	keyFunc ratelimit.KeyFunc,
	exemptPaths []string,
) *RateLimitMiddleware {
	if keyFunc == nil {
		keyFunc = ratelimit.DefaultKeyFunc
	}
	return &RateLimitMiddleware{
		limiter:     limiter,
		keyFunc:     keyFunc,
		exemptPaths: exemptPaths,
	}
}

// Limit charges one request to the caller's budget and either forwards the
// request or rejects it with 429. Rate-limit headers are set on every
// response that consulted the limiter, allowed or not.
//
// When the counter store is unreachable the configured fail policy decides:
// fail-open forwards the request uncounted, fail-closed rejects with 503.
// Either way the outage is logged, never propagated as a crash.
func (m *RateLimitMiddleware) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.isExempt(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		decision, err := m.limiter.Allow(r.Context(), m.keyFunc(r))
		if err != nil {
			slog.Warn("rate limit store unavailable",
				"error", redact.Error(err),
				"fail_open", decision.Allowed,
				"path", r.URL.Path)

			if !decision.Allowed {
				shared.RespondWithErrorAndLog(w, r, http.StatusServiceUnavailable,
					"Service temporarily unavailable", err)
				return
			}
			next.ServeHTTP(w, r)
			return
		}

		setRateLimitHeaders(w, decision)

		if !decision.Allowed {
			shared.RespondWithErrorAndLog(w, r, http.StatusTooManyRequests,
				"Rate limit exceeded", nil)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (m *RateLimitMiddleware) isExempt(path string) bool {
	for _, prefix := range m.exemptPaths {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// setRateLimitHeaders exposes the decision to the caller so well-behaved
// clients can pace themselves. Reset is whole seconds, rounded up so a
// client that waits the advertised time always lands in a fresh window.
func setRateLimitHeaders(w http.ResponseWriter, d ratelimit.Decision) {
	resetSeconds := int(math.Ceil(d.ResetAfter.Seconds()))
	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(d.Limit))
	w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(d.Remaining))
	w.Header().Set("X-RateLimit-Reset", strconv.Itoa(resetSeconds))
}
