package persist

import (
	"context"
	"sync"
)

// Memory is an Adapter that keeps collections in a map. It backs tests and
// any host that does not need durability.
type Memory struct {
	mu   sync.Mutex
	data map[string][]byte

	// SaveErr, when set, is returned by every Save call. Tests use it to
	// verify that a failed flush leaves the record store unchanged.
	SaveErr error
}

// NewMemory returns an empty in-memory adapter.
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

// Load returns the bytes last saved under key, or ok=false if none.
func (m *Memory) Load(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.data[key]
	return data, ok, nil
}

// Save stores a copy of data under key.
func (m *Memory) Save(_ context.Context, key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.data[key] = append([]byte(nil), data...)
	return nil
}
