package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// memoryStore is the test double for the Redis store. It honors the same
// TTL semantics so expiry behavior can be tested without a Redis server.
type memoryStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]memoryEntry
}

type memoryEntry struct {
	session   Session
	expiresAt time.Time
}

// NewMemoryStore returns an in-process Store used by tests.
func NewMemoryStore(ttl time.Duration) Store {
	return &memoryStore{
		ttl:      ttl,
		sessions: make(map[string]memoryEntry),
	}
}

func (s *memoryStore) Create(_ context.Context, userID uint, username string) (*Session, error) {
	sess := Session{
		ID:       uuid.New().String(),
		UserID:   userID,
		Username: username,
		IssuedAt: time.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = memoryEntry{
		session:   sess,
		expiresAt: time.Now().Add(s.ttl),
	}
	return &sess, nil
}

func (s *memoryStore) Get(_ context.Context, id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if time.Now().After(entry.expiresAt) {
		delete(s.sessions, id)
		return nil, ErrSessionNotFound
	}

	sess := entry.session
	return &sess, nil
}

func (s *memoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}
