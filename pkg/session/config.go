package session

import (
	"errors"
	"fmt"
	"time"
)

// Config holds session configuration. Lifetimes are whole seconds.
type Config struct {
	CookieName      string        `env:"SESSION_COOKIE_NAME" envDefault:"session"`
	LifetimeSeconds int           `env:"SESSION_LIFETIME" envDefault:"2592000"`
	RefreshSeconds  int           `env:"SESSION_REFRESH_TIME" envDefault:"86400"`
	CleanupInterval time.Duration `env:"SESSION_CLEANUP_INTERVAL" envDefault:"1h"`
}

// DefaultConfig returns the configuration used when none is supplied:
// 30 day sessions refreshed during their last day.
func DefaultConfig() Config {
	return Config{
		CookieName:      "session",
		LifetimeSeconds: 30 * 24 * 60 * 60,
		RefreshSeconds:  24 * 60 * 60,
		CleanupInterval: time.Hour,
	}
}

// Lifetime is how long a session stays valid after creation or refresh.
func (c Config) Lifetime() time.Duration {
	return time.Duration(c.LifetimeSeconds) * time.Second
}

// RefreshWindow is how close to expiry a validated session gets extended.
func (c Config) RefreshWindow() time.Duration {
	return time.Duration(c.RefreshSeconds) * time.Second
}

func (c Config) Validate() error {
	switch {
	case c.CookieName == "":
		return errors.Join(ErrInvalidConfig, errors.New("cookie name is empty"))
	case c.LifetimeSeconds <= 0:
		return errors.Join(ErrInvalidConfig, fmt.Errorf("lifetime must be positive, got %d", c.LifetimeSeconds))
	case c.RefreshSeconds < 0:
		return errors.Join(ErrInvalidConfig, fmt.Errorf("refresh time must not be negative, got %d", c.RefreshSeconds))
	case c.CleanupInterval < 0:
		return errors.Join(ErrInvalidConfig, fmt.Errorf("cleanup interval must not be negative, got %s", c.CleanupInterval))
	}
	return nil
}
