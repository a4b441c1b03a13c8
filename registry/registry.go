// Package registry provides process-scoped named counters and flags for
// the simulation: how many heroes and vehicles have been created, which
// one-time events have happened. The registry is owned by the top level
// and incremented explicitly; there is no implicit global.
package registry

import "sync"

// Well-known counter names used by the scenario builder
const (
	CounterVehiclesCreated = "vehicles_created"
	CounterHeroesCreated   = "heroes_created"
)

// Registry holds named counters and flags
type Registry struct {
	mu sync.RWMutex

	counters map[string]int
	flags    map[string]bool
}

// New creates an empty registry
func New() *Registry {
	return &Registry{
		counters: make(map[string]int),
		flags:    make(map[string]bool),
	}
}

// Increment adds one to a counter and returns the new value
func (r *Registry) Increment(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counters[name]++
	return r.counters[name]
}

// Count returns the value of a counter (zero if never incremented)
func (r *Registry) Count(name string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.counters[name]
}

// SetFlag sets a flag to a specific value
func (r *Registry) SetFlag(name string, value bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.flags[name] = value
}

// Flag returns the value of a flag (false if not set)
func (r *Registry) Flag(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.flags[name]
}

// Counters returns a copy of all counters
func (r *Registry) Counters() map[string]int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]int, len(r.counters))
	for name, value := range r.counters {
		out[name] = value
	}
	return out
}
