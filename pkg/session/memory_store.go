package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/jobportal/pkg/pg"
)

// MemoryStore keeps sessions and a small user directory in process memory.
// The transaction handle is ignored.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
	users    map[uuid.UUID]User
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]Session),
		users:    make(map[uuid.UUID]User),
	}
}

// PutUser adds or replaces a user that sessions can be joined with.
func (m *MemoryStore) PutUser(u User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[u.ID] = u
}

// DeleteUser removes the user and, like ON DELETE CASCADE, its sessions.
func (m *MemoryStore) DeleteUser(id uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.users, id)
	for key, s := range m.sessions {
		if s.UserID == id {
			delete(m.sessions, key)
		}
	}
}

func (m *MemoryStore) Insert(_ context.Context, _ pg.Querier, s *Session) error {
	if s == nil || s.ID == "" {
		return ErrInvalidSession
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[s.UserID]; !ok {
		return ErrInvalidSession
	}
	if _, ok := m.sessions[s.ID]; ok {
		return ErrInvalidSession
	}
	m.sessions[s.ID] = *s
	return nil
}

func (m *MemoryStore) FindByLookupKey(_ context.Context, _ pg.Querier, key string) (*AuthenticatedUser, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[key]
	if !ok {
		return nil, ErrSessionNotFound
	}
	u, ok := m.users[s.UserID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return &AuthenticatedUser{
		User:      u,
		SessionID: s.ID,
		UserAgent: s.UserAgent,
		IP:        s.IP,
		ExpiresAt: s.ExpiresAt,
	}, nil
}

func (m *MemoryStore) UpdateExpiry(_ context.Context, _ pg.Querier, key string, expiresAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[key]
	if !ok {
		return nil
	}
	s.ExpiresAt = expiresAt
	s.UpdatedAt = time.Now()
	m.sessions[key] = s
	return nil
}

func (m *MemoryStore) DeleteByLookupKey(_ context.Context, _ pg.Querier, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, key)
	return nil
}

func (m *MemoryStore) DeleteExpired(_ context.Context, before time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var n int64
	for key, s := range m.sessions {
		if s.ExpiredAt(before) {
			delete(m.sessions, key)
			n++
		}
	}
	return n, nil
}

// Get returns a copy of the raw record, mostly for assertions in tests.
func (m *MemoryStore) Get(key string) (Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[key]
	return s, ok
}

// Len returns the number of stored sessions.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
