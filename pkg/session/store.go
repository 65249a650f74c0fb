package session

import (
	"context"
	"time"

	"github.com/dmitrymomot/jobportal/pkg/pg"
)

// Store persists session records. Every method takes an optional transaction
// handle q; nil means the store's own connection with auto-commit.
type Store interface {
	Insert(ctx context.Context, q pg.Querier, s *Session) error

	// FindByLookupKey returns the session joined with its user, or
	// ErrSessionNotFound. A session whose user was soft-deleted is removed
	// and reported as not found.
	FindByLookupKey(ctx context.Context, q pg.Querier, key string) (*AuthenticatedUser, error)

	UpdateExpiry(ctx context.Context, q pg.Querier, key string, expiresAt time.Time) error

	// DeleteByLookupKey removes the record. Deleting an absent key is not an error.
	DeleteByLookupKey(ctx context.Context, q pg.Querier, key string) error
}

// ExpiredDeleter is implemented by stores that can sweep expired records.
type ExpiredDeleter interface {
	// DeleteExpired removes records with expires_at at or before the given
	// instant and returns how many were removed.
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}
