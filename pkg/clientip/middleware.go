package clientip

import "net/http"

// Middleware resolves the client address once per request and stores it in
// the request context for FromContext.
func (res *Resolver) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := WithIP(r.Context(), res.IP(r))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Middleware is Resolver.Middleware with no trusted proxies.
func Middleware(next http.Handler) http.Handler {
	return defaultResolver.Middleware(next)
}

// FromRequest returns the address stored by Middleware, resolving it from
// the TCP peer when the middleware did not run.
func FromRequest(r *http.Request) string {
	if ip := FromContext(r.Context()); ip != "" {
		return ip
	}
	return GetIP(r)
}
