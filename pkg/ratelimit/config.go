package ratelimit

import "time"

// Config holds the limits applied to the authentication endpoints.
type Config struct {
	RPS     float64       `env:"AUTH_RATE_LIMIT_RPS" envDefault:"1"`
	Burst   int           `env:"AUTH_RATE_LIMIT_BURST" envDefault:"5"`
	IdleTTL time.Duration `env:"AUTH_RATE_LIMIT_IDLE_TTL" envDefault:"5m"`
}
