// Package cookie is a small HTTP cookie manager with secure defaults.
//
// A Manager carries the attributes every cookie gets (Path=/, HttpOnly,
// Secure, SameSite=Lax unless overridden) and exposes Set, Get and Delete.
// Values are written verbatim; the package never signs or encrypts, so it is
// meant for opaque server-issued values such as session tokens.
//
// # Usage
//
//	import "github.com/dmitrymomot/jobportal/pkg/cookie"
//
//	man := cookie.New(cookie.WithDomain("example.com"))
//
//	_ = man.Set(w, "session", raw, cookie.WithMaxAge(3600))
//	raw, err := man.Get(r, "session")
//	if errors.Is(err, cookie.ErrCookieNotFound) {
//	    // anonymous request
//	}
//	man.Delete(w, "session")
//
// # Configuration
//
// Config is populated from environment variables via github.com/caarlos0/env:
//
//	var cfg cookie.Config
//	_ = env.Parse(&cfg)
//	man := cookie.NewFromConfig(cfg)
//
// Set rejects names that are not valid RFC 6265 tokens with ErrInvalidName.
package cookie
