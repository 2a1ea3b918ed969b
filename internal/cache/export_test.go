package cache

// Len reports how many entries are cached for kind.
func (m *Memory) Len(kind string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.kinds[kind])
}
