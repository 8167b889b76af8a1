// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package roster

import (
	"context"
	"sync"
)

// MemoryStore keeps lists in process memory. State is lost on restart, so
// it suits tests and throwaway local runs only.
type MemoryStore struct {
	mu    sync.RWMutex
	lists map[string][]string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{lists: make(map[string][]string)}
}

// Get implements Store.
func (s *MemoryStore) Get(ctx context.Context, key string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := s.lists[key]
	out := make([]string, len(names))
	copy(out, names)
	return out, nil
}

// Set implements Store.
func (s *MemoryStore) Set(ctx context.Context, key string, names []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := make([]string, len(names))
	copy(stored, names)
	s.lists[key] = stored
	return nil
}
