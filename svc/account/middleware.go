package account

import (
	"net/http"
	"slices"

	"github.com/dmitrymomot/jobportal/pkg/response"
	"github.com/dmitrymomot/jobportal/pkg/session"
)

// RequireRole lets a request through only when the session user has one of
// roles. Anonymous requests get 401; other roles get 403 with forbidden as
// the message.
func RequireRole(forbidden string, roles ...Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, ok := session.UserFromContext(r.Context())
			if !ok {
				response.Fail(w, http.StatusUnauthorized, msgUnauthorized)
				return
			}
			if !slices.Contains(roles, Role(u.Role)) {
				response.Fail(w, http.StatusForbidden, forbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
