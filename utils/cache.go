package utils

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"
)

const (
	defaultCacheTTL = time.Hour
	cacheOpTimeout  = 2 * time.Second

	// IndexStatsKey holds the cached home page aggregate. Every write that
	// changes a count must invalidate it.
	IndexStatsKey = "cache:index:stats"
)

// Store is the key/value cache used for page aggregates and session revocation.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
	InvalidateByPrefix(ctx context.Context, prefix string)
}

// CacheGetJSON decodes a cached JSON value into v.
func CacheGetJSON(ctx context.Context, s Store, key string, v interface{}) bool {
	b, ok := s.Get(ctx, key)
	if !ok {
		return false
	}
	if err := json.Unmarshal(b, v); err != nil {
		Sugar.Warnf("cache decode failed key=%s err=%v", key, err)
		return false
	}
	return true
}

// CacheSetJSON marshals v and stores JSON bytes.
func CacheSetJSON(ctx context.Context, s Store, key string, v interface{}, ttl time.Duration) {
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	s.Set(ctx, key, b, ttl)
}

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// MemoryStore is a single-instance Store used when Redis is not configured.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]memoryEntry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: map[string]memoryEntry{}}
}

func (m *MemoryStore) Get(_ context.Context, key string) ([]byte, bool) {
	m.mu.RLock()
	entry, ok := m.items[key]
	m.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if time.Now().After(entry.expiresAt) {
		m.mu.Lock()
		delete(m.items, key)
		m.mu.Unlock()
		return nil, false
	}
	return entry.value, true
}

func (m *MemoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	m.mu.Lock()
	m.items[key] = memoryEntry{value: value, expiresAt: time.Now().Add(ttl)}
	m.mu.Unlock()
}

func (m *MemoryStore) InvalidateByPrefix(_ context.Context, prefix string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for key := range m.items {
		if strings.HasPrefix(key, prefix) {
			delete(m.items, key)
		}
	}
}
