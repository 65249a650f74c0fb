package session

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/jobportal/pkg/cookie"
	"github.com/dmitrymomot/jobportal/pkg/logger"
	"github.com/dmitrymomot/jobportal/pkg/pg"
	"github.com/dmitrymomot/jobportal/pkg/token"
)

// Manager drives the session lifecycle: create, validate with sliding
// refresh, invalidate. It holds no session state of its own.
type Manager struct {
	store   Store
	config  Config
	cookies *cookie.Manager
	binder  *CookieBinder
	now     func() time.Time
	logger  *slog.Logger
}

// New returns a Manager over store. It panics on a nil store or an invalid
// configuration.
func New(store Store, opts ...Option) *Manager {
	if store == nil {
		panic("session: store is required")
	}

	m := &Manager{
		store:  store,
		config: DefaultConfig(),
		now:    time.Now,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(m)
	}

	if err := m.config.Validate(); err != nil {
		panic(err)
	}
	if m.cookies == nil {
		m.cookies = cookie.New()
	}
	m.binder = NewCookieBinder(m.cookies, m.config.CookieName, m.config.Lifetime())
	m.logger = m.logger.With(logger.Component("session"))

	return m
}

// NewFromConfig is New with cfg applied before opts.
func NewFromConfig(store Store, cfg Config, opts ...Option) *Manager {
	return New(store, append([]Option{WithConfig(cfg)}, opts...)...)
}

// Binder returns the cookie binder carrying the raw token.
func (m *Manager) Binder() *CookieBinder {
	return m.binder
}

// Config returns the active configuration.
func (m *Manager) Config() Config {
	return m.config
}

// Create opens a session for userID outside of any caller transaction and
// returns the raw token for the client.
func (m *Manager) Create(ctx context.Context, userID uuid.UUID, meta ClientMetadata) (string, error) {
	return m.CreateTx(ctx, nil, userID, meta)
}

// CreateTx opens a session using the caller's transaction handle q. The
// session exists only if that transaction commits, so the returned token
// must not reach the client before then.
func (m *Manager) CreateTx(ctx context.Context, q pg.Querier, userID uuid.UUID, meta ClientMetadata) (string, error) {
	raw, err := token.Generate()
	if err != nil {
		return "", err
	}

	now := m.now()
	s := &Session{
		ID:        token.LookupKey(raw),
		UserID:    userID,
		UserAgent: meta.UserAgent,
		IP:        meta.IP,
		ExpiresAt: now.Add(m.config.Lifetime()),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := m.store.Insert(ctx, q, s); err != nil {
		return "", errors.Join(ErrStoreFailure, err)
	}
	return raw, nil
}

// Validate resolves a raw token to its user. A missing, unknown or expired
// token yields ok == false with a nil error; expired records are deleted on
// the way. A session inside the refresh window is extended to now + lifetime.
func (m *Manager) Validate(ctx context.Context, rawToken string) (*AuthenticatedUser, bool, error) {
	user, _, err := m.validate(ctx, rawToken)
	if err != nil || user == nil {
		return nil, false, err
	}
	return user, true, nil
}

// validate is Validate that also reports whether the expiry was extended.
func (m *Manager) validate(ctx context.Context, rawToken string) (*AuthenticatedUser, bool, error) {
	if rawToken == "" {
		return nil, false, nil
	}
	key := token.LookupKey(rawToken)

	user, err := m.store.FindByLookupKey(ctx, nil, key)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil, false, nil
		}
		return nil, false, errors.Join(ErrStoreFailure, err)
	}

	now := m.now()
	if user.ExpiredAt(now) {
		if err := m.store.DeleteByLookupKey(ctx, nil, key); err != nil {
			return nil, false, errors.Join(ErrStoreFailure, err)
		}
		return nil, false, nil
	}

	if !now.Before(user.ExpiresAt.Add(-m.config.RefreshWindow())) {
		expiresAt := now.Add(m.config.Lifetime())
		if err := m.store.UpdateExpiry(ctx, nil, key, expiresAt); err != nil {
			return nil, false, errors.Join(ErrStoreFailure, err)
		}
		user.ExpiresAt = expiresAt
		return user, true, nil
	}

	return user, false, nil
}

// Invalidate deletes the session behind rawToken. Unknown or empty tokens
// are a no-op.
func (m *Manager) Invalidate(ctx context.Context, rawToken string) error {
	if rawToken == "" {
		return nil
	}
	return m.InvalidateKey(ctx, token.LookupKey(rawToken))
}

// InvalidateKey deletes the session stored under a lookup key.
func (m *Manager) InvalidateKey(ctx context.Context, key string) error {
	if err := m.store.DeleteByLookupKey(ctx, nil, key); err != nil {
		return errors.Join(ErrStoreFailure, err)
	}
	return nil
}

// DeleteExpired removes every session expired at the current time.
func (m *Manager) DeleteExpired(ctx context.Context) (int64, error) {
	d, ok := m.store.(ExpiredDeleter)
	if !ok {
		return 0, ErrCleanupUnsupported
	}
	n, err := d.DeleteExpired(ctx, m.now())
	if err != nil {
		return 0, errors.Join(ErrStoreFailure, err)
	}
	return n, nil
}

// RunCleanup calls DeleteExpired every interval until ctx is done. It
// returns immediately when interval is not positive or the store cannot
// sweep.
func (m *Manager) RunCleanup(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	if _, ok := m.store.(ExpiredDeleter); !ok {
		m.logger.WarnContext(ctx, "session store does not support cleanup")
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := m.DeleteExpired(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				m.logger.ErrorContext(ctx, "failed to delete expired sessions", logger.Error(err))
				continue
			}
			if n > 0 {
				m.logger.DebugContext(ctx, "deleted expired sessions", logger.Count(n))
			}
		}
	}
}
