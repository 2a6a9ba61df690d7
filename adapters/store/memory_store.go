package store

import (
	"context"
	"sync"
	"time"

	"github.com/layer-3/gatecheck/core"
	"github.com/layer-3/gatecheck/ports"
)

// MemoryStore is an in-memory implementation of the ResultStore interface
type MemoryStore struct {
	results map[string]core.Result
	now     func() time.Time
	mu      sync.RWMutex
}

// NewMemoryStore creates a new in-memory store
func NewMemoryStore() *MemoryStore {
	return NewMemoryStoreWithClock(time.Now)
}

// NewMemoryStoreWithClock creates a store with an injectable clock
func NewMemoryStoreWithClock(now func() time.Time) *MemoryStore {
	return &MemoryStore{
		results: make(map[string]core.Result),
		now:     now,
	}
}

var _ ports.ResultStore = (*MemoryStore)(nil)

// Get returns the cached outcome for a token, evicting it lazily when the
// expiry has elapsed. An expired entry must never be read stale.
func (s *MemoryStore) Get(ctx context.Context, token string) (bool, bool, error) {
	s.mu.RLock()
	result, exists := s.results[token]
	s.mu.RUnlock()

	if !exists {
		return false, false, nil
	}

	if result.Expired(s.now()) {
		s.mu.Lock()
		// Re-check under the write lock; a fresh entry may have replaced it
		if current, ok := s.results[token]; ok && current.Expired(s.now()) {
			delete(s.results, token)
		}
		s.mu.Unlock()
		return false, false, nil
	}

	return result.OK, true, nil
}

// Set records a settled outcome with an expiration time
func (s *MemoryStore) Set(ctx context.Context, token string, ok bool, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.results[token] = core.Result{
		OK:         ok,
		VerifiedAt: now,
		ExpiresAt:  now.Add(ttl),
	}
	return nil
}

// Len reports the number of retained entries, expired or not
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.results)
}
