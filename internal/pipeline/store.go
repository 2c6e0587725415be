package pipeline

import (
	"context"
	"sync"
	"time"
)

// ResultStore caches final results by content hash so a repeated
// upload replays its result instead of re-running the pipeline.
// Implementations must be safe for concurrent use.
type ResultStore interface {
	Get(hash string) (*DocumentResult, bool)
	Set(hash string, result *DocumentResult)
	Has(hash string) bool
}

type storeEntry struct {
	result   *DocumentResult
	storedAt time.Time
}

// MemoryStore is an in-memory ResultStore with TTL eviction.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]storeEntry
	ttl     time.Duration
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &MemoryStore{
		entries: make(map[string]storeEntry),
		ttl:     ttl,
	}
}

func (s *MemoryStore) Get(hash string) (*DocumentResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[hash]
	if !ok {
		return nil, false
	}
	if time.Since(e.storedAt) > s.ttl {
		delete(s.entries, hash)
		return nil, false
	}
	return e.result, true
}

func (s *MemoryStore) Set(hash string, result *DocumentResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[hash] = storeEntry{result: result, storedAt: time.Now()}
}

func (s *MemoryStore) Has(hash string) bool {
	_, ok := s.Get(hash)
	return ok
}

// Cleanup removes expired entries.
func (s *MemoryStore) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for hash, e := range s.entries {
		if now.Sub(e.storedAt) > s.ttl {
			delete(s.entries, hash)
		}
	}
}

// Janitor runs periodic cleanup until ctx is done. Run it as a
// goroutine from main.
func (s *MemoryStore) Janitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Cleanup()
		}
	}
}
