// Package cache provides content-addressed caches for analysis results,
// keyed by a hash of the normalized input text. Caching is a pure
// performance optimization: callers must tolerate both misses and a nil
// cache.
package cache

import (
	"container/list"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sync"

	"github.com/cvlens/cvlens/internal/domain"
)

// Key returns the content address for a normalized document text.
func Key(normalizedText string) string {
	sum := sha256.Sum256([]byte(normalizedText))
	return hex.EncodeToString(sum[:])
}

// Memory is an in-process LRU cache. A single mutex guards get/put; capacity
// is fixed at construction and eviction is least-recently-used.
type Memory struct {
	mu       sync.Mutex
	capacity int
	order    *list.List
	entries  map[string]*list.Element
}

type memoryEntry struct {
	key string
	rec domain.CVRecord
}

// NewMemory returns an LRU cache bounded to capacity entries. A
// non-positive capacity falls back to a small default.
func NewMemory(capacity int) *Memory {
	if capacity <= 0 {
		capacity = 128
	}
	return &Memory{
		capacity: capacity,
		order:    list.New(),
		entries:  make(map[string]*list.Element),
	}
}

// Get implements domain.AnalysisCache.
func (m *Memory) Get(_ context.Context, key string) (domain.CVRecord, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	el, ok := m.entries[key]
	if !ok {
		return domain.CVRecord{}, false, nil
	}
	m.order.MoveToFront(el)
	return el.Value.(*memoryEntry).rec, true, nil
}

// Put implements domain.AnalysisCache.
func (m *Memory) Put(_ context.Context, key string, rec domain.CVRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if el, ok := m.entries[key]; ok {
		el.Value.(*memoryEntry).rec = rec
		m.order.MoveToFront(el)
		return nil
	}
	m.entries[key] = m.order.PushFront(&memoryEntry{key: key, rec: rec})
	if m.order.Len() > m.capacity {
		oldest := m.order.Back()
		m.order.Remove(oldest)
		delete(m.entries, oldest.Value.(*memoryEntry).key)
	}
	return nil
}

// Len returns the number of cached records.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.order.Len()
}
