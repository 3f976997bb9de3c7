// Package store is the persistence layer: a flat key-value dictionary with
// JSON-encoded values, mirroring the browser storage the original client
// wrote to. Backends are interchangeable behind the Store interface.
package store

import (
	"context"
	"encoding/json"
	"sync"
)

// Keys used by the storefront. All values under them are JSON.
const (
	KeyUsers     = "girlhub_users"
	KeySession   = "girlhub_user"
	KeyRemember  = "girlhub_remember"
	KeyCart      = "girlhub_cart"
	KeyAddresses = "girlhub_addresses"
	KeySettings  = "girlhub_settings"
	KeyVisited   = "girlhub_visited"
	KeyCurrency  = "girlhub_currency"
)

type Store interface {
	// Get returns the raw value and whether the key exists.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Close() error
}

// GetJSON decodes the value under key into dest. A missing key or a value
// that fails to decode both report found=false: corrupt data is treated as
// absent rather than surfaced, availability wins over strict integrity.
func GetJSON(ctx context.Context, s Store, key string, dest any) (bool, error) {
	raw, ok, err := s.Get(ctx, key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return false, nil
	}
	return true, nil
}

func SetJSON(ctx context.Context, s Store, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.Set(ctx, key, string(data))
}

// Memory is the in-process backend used by tests.
type Memory struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *Memory) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *Memory) Close() error { return nil }
