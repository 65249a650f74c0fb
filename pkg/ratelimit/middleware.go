package ratelimit

import (
	"math"
	"net/http"
	"strconv"

	"github.com/dmitrymomot/jobportal/pkg/clientip"
)

// KeyFunc extracts the rate limit key from a request. An empty key skips
// limiting for that request.
type KeyFunc func(r *http.Request) string

// ByClientIP keys requests by the client address from clientip. Forwarding
// headers only count when the peer is a trusted proxy.
func ByClientIP(r *http.Request) string {
	return clientip.FromRequest(r)
}

// Middleware rejects requests over the limit with 429 and a Retry-After
// header. onLimit, when non-nil, writes the rejection instead of the default
// plain text body.
func Middleware(l *Limiter, key KeyFunc, onLimit http.HandlerFunc) func(http.Handler) http.Handler {
	if key == nil {
		key = ByClientIP
	}
	if onLimit == nil {
		onLimit = func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			k := key(r)
			if k == "" {
				next.ServeHTTP(w, r)
				return
			}

			ok, wait := l.Allow(k)
			if !ok {
				retry := max(1, int(math.Ceil(wait.Seconds())))
				w.Header().Set("Retry-After", strconv.Itoa(retry))
				onLimit(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
