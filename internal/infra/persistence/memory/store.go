// Package memory keeps cart sessions and device registrations in process memory.
// It is used when Redis is disabled and has the same expiry semantics.
package memory

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

type item struct {
	value     []byte
	expiresAt time.Time
}

// Store is a byte store with per-key expiry shared by the memory repositories.
type Store struct {
	mu    sync.Mutex
	items map[string]item
	ttl   time.Duration
	now   func() time.Time
}

// NewStore creates a store whose entries live for ttl after their last write.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		items: make(map[string]item),
		ttl:   ttl,
		now:   time.Now,
	}
}

func (s *Store) get(key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	it, ok := s.items[key]
	if !ok {
		return nil, false
	}
	if s.expired(it) {
		delete(s.items, key)

		return nil, false
	}

	return it.value, true
}

func (s *Store) set(key string, value []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	it := item{value: value}
	if s.ttl > 0 {
		it.expiresAt = s.now().Add(s.ttl)
	}
	s.items[key] = it
}

func (s *Store) delete(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	it, ok := s.items[key]
	delete(s.items, key)

	return ok && !s.expired(it)
}

// Sweep drops expired entries and returns how many were removed.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for key, it := range s.items {
		if s.expired(it) {
			delete(s.items, key)
			removed++
		}
	}

	return removed
}

func (s *Store) expired(it item) bool {
	return !it.expiresAt.IsZero() && !s.now().Before(it.expiresAt)
}

// RunJanitor sweeps expired entries every interval until ctx is done.
func (s *Store) RunJanitor(ctx context.Context, interval time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := s.Sweep(); removed > 0 {
				logger.Debug("Expired in-memory sessions removed", slog.Int("count", removed))
			}
		}
	}
}
