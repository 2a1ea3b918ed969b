package cache

import (
	"context"
	"sync"
)

// Memory keeps listings in process. No TTL and no size bound; entries
// live until their kind is evicted.
type Memory struct {
	mu    sync.RWMutex
	kinds map[string]map[string][]byte
	gens  map[string]uint64
}

func NewMemory() *Memory {
	return &Memory{
		kinds: make(map[string]map[string][]byte),
		gens:  make(map[string]uint64),
	}
}

func (m *Memory) Get(_ context.Context, kind, key string) ([]byte, error) {
	m.mu.RLock()
	data, ok := m.kinds[kind][key]
	m.mu.RUnlock()
	if !ok {
		CacheMisses.WithLabelValues(kind).Inc()
		return nil, ErrCacheMiss
	}
	CacheHits.WithLabelValues(kind).Inc()
	return data, nil
}

func (m *Memory) Generation(_ context.Context, kind string) (uint64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.gens[kind], nil
}

func (m *Memory) Put(_ context.Context, kind, key string, gen uint64, data []byte) error {
	stored := make([]byte, len(data))
	copy(stored, data)

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.gens[kind] != gen {
		CacheStalePuts.WithLabelValues(kind).Inc()
		return ErrStaleGeneration
	}
	entries, ok := m.kinds[kind]
	if !ok {
		entries = make(map[string][]byte)
		m.kinds[kind] = entries
	}
	entries[key] = stored
	return nil
}

func (m *Memory) EvictAll(_ context.Context, kind string) error {
	m.mu.Lock()
	delete(m.kinds, kind)
	m.gens[kind]++
	m.mu.Unlock()
	CacheEvictions.WithLabelValues(kind).Inc()
	return nil
}
