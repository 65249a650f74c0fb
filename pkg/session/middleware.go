package session

import (
	"net/http"

	"github.com/dmitrymomot/jobportal/pkg/clientip"
	"github.com/dmitrymomot/jobportal/pkg/logger"
)

// Middleware resolves the session cookie on every request. A valid session
// puts the user in the request context; an invalid one clears the cookie and
// the request continues anonymously. Storage failures answer 500.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, ok := m.binder.Get(r)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		user, refreshed, err := m.validate(ctx, raw)
		if err != nil {
			m.logger.ErrorContext(ctx, "failed to validate session", logger.Error(err))
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		if user == nil {
			m.binder.Clear(w)
			next.ServeHTTP(w, r)
			return
		}

		if refreshed {
			// Keep the browser copy alive as long as the record.
			if err := m.binder.Set(w, raw); err != nil {
				m.logger.WarnContext(ctx, "failed to refresh session cookie", logger.Error(err))
			}
		}
		next.ServeHTTP(w, r.WithContext(WithUser(ctx, user)))
	})
}

// RequireAuth answers 401 unless Middleware stored a user in the context.
func (m *Manager) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := UserFromContext(r.Context()); !ok {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Logout invalidates the request's session, if any, and clears the cookie.
// The cookie is cleared even when the delete fails.
func (m *Manager) Logout(w http.ResponseWriter, r *http.Request) error {
	defer m.binder.Clear(w)

	raw, ok := m.binder.Get(r)
	if !ok {
		return nil
	}
	return m.Invalidate(r.Context(), raw)
}

// ClientMetadataFromRequest captures the user agent and client address.
func ClientMetadataFromRequest(r *http.Request) ClientMetadata {
	return ClientMetadata{
		UserAgent: r.UserAgent(),
		IP:        clientip.FromRequest(r),
	}
}
