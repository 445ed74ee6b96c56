package sessions

import (
	"context"
	"sync"
	"time"
)

// Store holds the currently valid admin session tokens.
type Store interface {
	Put(ctx context.Context, token string) error
	Has(ctx context.Context, token string) (bool, error)
	Delete(ctx context.Context, token string) error
}

// MemoryStore is the default single-instance store: TTL-bounded and capped in
// size so an unauthenticated login flood cannot grow it without limit.
type MemoryStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	max     int
	entries map[string]time.Time

	now func() time.Time
}

func NewMemoryStore(ttl time.Duration, max int) *MemoryStore {
	return &MemoryStore{
		ttl:     ttl,
		max:     max,
		entries: make(map[string]time.Time),
		now:     time.Now,
	}
}

func (s *MemoryStore) Put(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pruneLocked()

	if s.max > 0 && len(s.entries) >= s.max {
		s.evictOldestLocked()
	}

	s.entries[token] = s.now().Add(s.ttl)
	return nil
}

func (s *MemoryStore) Has(_ context.Context, token string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	expiry, ok := s.entries[token]
	if !ok {
		return false, nil
	}

	if s.now().After(expiry) {
		delete(s.entries, token)
		return false, nil
	}

	return true, nil
}

func (s *MemoryStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, token)
	return nil
}

func (s *MemoryStore) pruneLocked() {
	now := s.now()
	for token, expiry := range s.entries {
		if now.After(expiry) {
			delete(s.entries, token)
		}
	}
}

func (s *MemoryStore) evictOldestLocked() {
	var oldest string
	var oldestExpiry time.Time

	for token, expiry := range s.entries {
		if oldest == "" || expiry.Before(oldestExpiry) {
			oldest = token
			oldestExpiry = expiry
		}
	}

	if oldest != "" {
		delete(s.entries, oldest)
	}
}
