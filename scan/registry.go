// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scan

import "sync"

// Registry manages one Flow per scanner station.
type Registry struct {
	mu      sync.RWMutex
	flows   map[string]*Flow
	newFlow func() *Flow
}

// NewRegistry creates a registry that builds missing flows with newFlow.
func NewRegistry(newFlow func() *Flow) *Registry {
	return &Registry{
		flows:   make(map[string]*Flow),
		newFlow: newFlow,
	}
}

// Get retrieves the flow for a station, creating it on first use.
func (r *Registry) Get(station string) *Flow {
	r.mu.RLock()
	flow, exists := r.flows[station]
	r.mu.RUnlock()
	if exists {
		return flow
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if flow, exists := r.flows[station]; exists {
		return flow
	}
	flow = r.newFlow()
	r.flows[station] = flow
	return flow
}
