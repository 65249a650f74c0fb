package session_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/dmitrymomot/jobportal/pkg/pg"
	"github.com/dmitrymomot/jobportal/pkg/session"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// testConfig is a one hour session refreshed in its last ten minutes.
func testConfig() session.Config {
	return session.Config{
		CookieName:      "session",
		LifetimeSeconds: 3600,
		RefreshSeconds:  600,
	}
}

func setupManager(t *testing.T) (*session.Manager, *session.MemoryStore, *fakeClock, uuid.UUID) {
	t.Helper()

	store := session.NewMemoryStore()
	userID := uuid.New()
	store.PutUser(session.User{
		ID:       userID,
		Name:     "Jane Doe",
		Username: "jane",
		Email:    "jane@example.com",
		Role:     "applicant",
	})

	clock := newFakeClock()
	m := session.New(store, session.WithConfig(testConfig()), session.WithClock(clock.Now))
	return m, store, clock, userID
}

type mockStore struct {
	mock.Mock
}

func (m *mockStore) Insert(ctx context.Context, q pg.Querier, s *session.Session) error {
	return m.Called(ctx, q, s).Error(0)
}

func (m *mockStore) FindByLookupKey(ctx context.Context, q pg.Querier, key string) (*session.AuthenticatedUser, error) {
	args := m.Called(ctx, q, key)
	u, _ := args.Get(0).(*session.AuthenticatedUser)
	return u, args.Error(1)
}

func (m *mockStore) UpdateExpiry(ctx context.Context, q pg.Querier, key string, expiresAt time.Time) error {
	return m.Called(ctx, q, key, expiresAt).Error(0)
}

func (m *mockStore) DeleteByLookupKey(ctx context.Context, q pg.Querier, key string) error {
	return m.Called(ctx, q, key).Error(0)
}
