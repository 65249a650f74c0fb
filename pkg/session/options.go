package session

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/jobportal/pkg/cookie"
)

// Option configures a Manager.
type Option func(*Manager)

// WithConfig replaces the default configuration.
func WithConfig(cfg Config) Option {
	return func(m *Manager) { m.config = cfg }
}

// WithClock overrides the time source used for expiry decisions.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}

// WithLogger sets the logger for store failures and the cleanup loop.
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithCookieManager sets the cookie manager backing the session cookie.
// Without it the manager uses cookie.New().
func WithCookieManager(cm *cookie.Manager) Option {
	return func(m *Manager) { m.cookies = cm }
}
