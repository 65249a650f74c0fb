package session

import (
	"net/http"
	"time"

	"github.com/dmitrymomot/jobportal/pkg/cookie"
)

// CookieBinder moves the raw session token between the client cookie and
// the server. The cookie is always HttpOnly, Secure, SameSite=Lax and scoped
// to the whole site.
type CookieBinder struct {
	cookies *cookie.Manager
	name    string
	maxAge  int
}

// NewCookieBinder returns a binder writing cookie name with a Max-Age of lifetime.
func NewCookieBinder(cookies *cookie.Manager, name string, lifetime time.Duration) *CookieBinder {
	return &CookieBinder{
		cookies: cookies,
		name:    name,
		maxAge:  int(lifetime / time.Second),
	}
}

// Name returns the cookie name.
func (b *CookieBinder) Name() string {
	return b.name
}

func (b *CookieBinder) attrs(extra ...cookie.Option) []cookie.Option {
	return append([]cookie.Option{
		cookie.WithPath("/"),
		cookie.WithHTTPOnly(true),
		cookie.WithSecure(true),
		cookie.WithSameSite(http.SameSiteLaxMode),
	}, extra...)
}

// Set hands the raw token to the client.
func (b *CookieBinder) Set(w http.ResponseWriter, rawToken string) error {
	return b.cookies.Set(w, b.name, rawToken, b.attrs(cookie.WithMaxAge(b.maxAge))...)
}

// Get returns the raw token carried by the request, if any.
func (b *CookieBinder) Get(r *http.Request) (string, bool) {
	v, err := b.cookies.Get(r, b.name)
	if err != nil || v == "" {
		return "", false
	}
	return v, true
}

// Clear tells the client to drop the session cookie.
func (b *CookieBinder) Clear(w http.ResponseWriter) {
	b.cookies.Delete(w, b.name, b.attrs()...)
}
