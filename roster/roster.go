// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package roster

import (
	"context"
	"sync"
)

// Roster is one named list over a Store with first-seen ordering and
// exact-match dedup. Appending a name that is already present leaves the
// list unchanged in content and order.
type Roster struct {
	mu    sync.Mutex
	store Store
	key   string
}

// New creates a roster over the given store key.
func New(store Store, key string) *Roster {
	return &Roster{store: store, key: key}
}

// List returns the roster contents in first-seen order.
func (r *Roster) List(ctx context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.store.Get(ctx, r.key)
}

// Append adds name unless it is already present, reporting whether the
// roster changed.
func (r *Roster) Append(ctx context.Context, name string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	names, err := r.store.Get(ctx, r.key)
	if err != nil {
		return false, err
	}
	for _, existing := range names {
		if existing == name {
			return false, nil
		}
	}
	if err := r.store.Set(ctx, r.key, append(names, name)); err != nil {
		return false, err
	}
	return true, nil
}

// Clear empties the roster. Only explicit user action calls this; scan
// re-arms and page reloads never do.
func (r *Roster) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.store.Set(ctx, r.key, nil)
}
