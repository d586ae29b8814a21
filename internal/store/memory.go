package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// Memory is an in-process Store. Values are kept as encoded JSON so that
// Get/Set round-trip exactly like the durable backends.
type Memory struct {
	mu    sync.Mutex
	items map[string]json.RawMessage
}

func NewMemory() *Memory {
	return &Memory{items: make(map[string]json.RawMessage)}
}

func (m *Memory) Get(_ context.Context, key string, dst any) error {
	m.mu.Lock()
	raw, ok := m.items[key]
	m.mu.Unlock()
	if !ok {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode %q: %w", key, err)
	}
	return nil
}

func (m *Memory) Set(_ context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}
	m.mu.Lock()
	m.items[key] = raw
	m.mu.Unlock()
	return nil
}
