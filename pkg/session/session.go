package session

import (
	"time"

	"github.com/google/uuid"
)

// Session is the persisted record. ID is the lookup key derived from the raw
// token; the raw token itself is never stored.
type Session struct {
	ID        string
	UserID    uuid.UUID
	UserAgent string
	IP        string
	ExpiresAt time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ExpiredAt reports whether the session is no longer valid at now.
func (s *Session) ExpiredAt(now time.Time) bool {
	return expiredAt(s.ExpiresAt, now)
}

// A session is invalid at or after its expiry instant.
func expiredAt(expiresAt, now time.Time) bool {
	return !now.Before(expiresAt)
}

// User is the account row joined to a session.
type User struct {
	ID          uuid.UUID
	Name        string
	Username    string
	Role        string
	PhoneNumber *string
	Email       string
	AvatarURL   *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// AuthenticatedUser is what a successful validation yields: the owning user
// plus the session attributes.
type AuthenticatedUser struct {
	User

	SessionID string
	UserAgent string
	IP        string
	ExpiresAt time.Time
}

// ExpiredAt reports whether the session is no longer valid at now.
func (u *AuthenticatedUser) ExpiredAt(now time.Time) bool {
	return expiredAt(u.ExpiresAt, now)
}

// ClientMetadata describes the client that opened a session. It is
// informational and never used for validation.
type ClientMetadata struct {
	UserAgent string
	IP        string
}
