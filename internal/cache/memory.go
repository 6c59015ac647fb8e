package cache

import (
	"context"
	"sync"
	"time"

	"pricesuggest/internal/model"
)

type memoryEntry struct {
	result    *model.SuggestionResult
	createdAt time.Time
}

// Memory is the default in-process cache. Entries expire lazily at read
// time; nothing sweeps the map, so it grows for the process lifetime.
// Known limitation, acceptable for the bounded key space of product
// queries.
type Memory struct {
	mu      sync.RWMutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]memoryEntry
}

func NewMemory(ttl time.Duration) *Memory {
	return NewMemoryWithClock(ttl, time.Now)
}

// NewMemoryWithClock lets tests control expiry.
func NewMemoryWithClock(ttl time.Duration, now func() time.Time) *Memory {
	return &Memory{
		ttl:     ttl,
		now:     now,
		entries: make(map[string]memoryEntry),
	}
}

func (m *Memory) Get(ctx context.Context, key string) (*model.SuggestionResult, bool) {
	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if m.now().Sub(e.createdAt) >= m.ttl {
		return nil, false
	}
	return e.result, true
}

func (m *Memory) Put(ctx context.Context, key string, result *model.SuggestionResult) {
	m.mu.Lock()
	m.entries[key] = memoryEntry{result: result, createdAt: m.now()}
	m.mu.Unlock()
}
