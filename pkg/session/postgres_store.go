package session

import (
	"context"
	"time"

	"github.com/dmitrymomot/jobportal/pkg/pg"
)

// PostgresStore keeps sessions in the sessions table joined with users.
type PostgresStore struct {
	db      pg.Querier
	timeout time.Duration
}

// NewPostgresStore returns a store running on db unless a call supplies its
// own transaction. A non-positive timeout disables the per-call deadline.
func NewPostgresStore(db pg.Querier, timeout time.Duration) *PostgresStore {
	return &PostgresStore{db: db, timeout: timeout}
}

func (s *PostgresStore) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *PostgresStore) Insert(ctx context.Context, q pg.Querier, sess *Session) error {
	if sess == nil || sess.ID == "" {
		return ErrInvalidSession
	}
	const query = `
	INSERT INTO sessions (id, user_id, user_agent, ip, expires_at, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $6)
	`
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	_, err := pg.Pick(q, s.db).Exec(ctx, query,
		sess.ID,
		sess.UserID,
		sess.UserAgent,
		sess.IP,
		sess.ExpiresAt,
		sess.CreatedAt,
	)
	return err
}

func (s *PostgresStore) FindByLookupKey(ctx context.Context, q pg.Querier, key string) (*AuthenticatedUser, error) {
	const query = `
	SELECT u.id, u.name, u.username, u.role, u.phone_number, u.email, u.avatar_url,
	       u.created_at, u.updated_at,
	       s.id, s.user_agent, s.ip, s.expires_at
	FROM sessions s
	INNER JOIN users u ON u.id = s.user_id
	WHERE s.id = $1 AND u.deleted_at IS NULL
	`
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var au AuthenticatedUser
	err := pg.Pick(q, s.db).QueryRow(ctx, query, key).Scan(
		&au.ID,
		&au.Name,
		&au.Username,
		&au.Role,
		&au.PhoneNumber,
		&au.Email,
		&au.AvatarURL,
		&au.CreatedAt,
		&au.UpdatedAt,
		&au.SessionID,
		&au.UserAgent,
		&au.IP,
		&au.ExpiresAt,
	)
	if err != nil {
		if pg.IsNotFoundError(err) {
			if err := s.deleteOrphan(ctx, q, key); err != nil {
				return nil, err
			}
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return &au, nil
}

// deleteOrphan removes a session whose user was soft-deleted, which the
// lookup join filters out.
func (s *PostgresStore) deleteOrphan(ctx context.Context, q pg.Querier, key string) error {
	const query = `
	DELETE FROM sessions s
	USING users u
	WHERE s.id = $1 AND u.id = s.user_id AND u.deleted_at IS NOT NULL
	`
	_, err := pg.Pick(q, s.db).Exec(ctx, query, key)
	return err
}

func (s *PostgresStore) UpdateExpiry(ctx context.Context, q pg.Querier, key string, expiresAt time.Time) error {
	const query = `UPDATE sessions SET expires_at = $2, updated_at = now() WHERE id = $1`
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	_, err := pg.Pick(q, s.db).Exec(ctx, query, key, expiresAt)
	return err
}

func (s *PostgresStore) DeleteByLookupKey(ctx context.Context, q pg.Querier, key string) error {
	const query = `DELETE FROM sessions WHERE id = $1`
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	_, err := pg.Pick(q, s.db).Exec(ctx, query, key)
	return err
}

func (s *PostgresStore) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	const query = `DELETE FROM sessions WHERE expires_at <= $1`
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	tag, err := s.db.Exec(ctx, query, before)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
