package store

// MemoryBackend keeps slots in a map. It backs tests and the default
// bootstrap when no database is configured.
type MemoryBackend struct {
	slots map[string][]byte
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{slots: make(map[string][]byte)}
}

func (m *MemoryBackend) Get(key string) ([]byte, bool, error) {
	raw, ok := m.slots[key]
	return raw, ok, nil
}

func (m *MemoryBackend) Put(key string, value []byte) error {
	m.slots[key] = append([]byte(nil), value...)
	return nil
}
