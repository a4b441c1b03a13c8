// Package resource provides the bounded numeric store backing every entity
// in the simulation: fuel for vehicles, health and energy for heroes.
package resource

import (
	"fmt"

	"chosenoffset.com/dispatch/sim"
)

// Pool is a bounded store. Its current level always stays in [0, capacity].
type Pool struct {
	capacity float64
	current  float64
}

// NewPool creates a full pool with the given capacity.
// A capacity of zero or less is a construction error.
func NewPool(capacity float64) (*Pool, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("pool capacity must be positive, got %v: %w", capacity, sim.ErrInvalidCapacity)
	}
	return &Pool{capacity: capacity, current: capacity}, nil
}

// Capacity returns the maximum level of the pool
func (p *Pool) Capacity() float64 {
	return p.capacity
}

// Current returns the current level of the pool
func (p *Pool) Current() float64 {
	return p.current
}

// Percent returns the current level as a percentage of capacity
func (p *Pool) Percent() float64 {
	return p.current / p.capacity * 100
}

// IsEmpty returns true if the pool is exhausted
func (p *Pool) IsEmpty() bool {
	return p.current <= 0
}

// Consume subtracts amount if the pool holds at least that much and reports
// whether it did. An insufficient level is a normal outcome, not an error:
// the pool is left untouched and false is returned. Negative amounts
// consume nothing.
func (p *Pool) Consume(amount float64) bool {
	if amount < 0 {
		return false
	}
	if p.current < amount {
		return false
	}
	p.current -= amount
	return true
}

// Drain removes up to amount from the pool, clamping at zero, and returns
// how much was actually removed. Unlike Consume it never refuses; it is
// used where depletion past the requested amount is the expected outcome,
// such as damage to health. Negative amounts drain nothing.
func (p *Pool) Drain(amount float64) float64 {
	if amount < 0 {
		return 0
	}
	removed := amount
	if removed > p.current {
		removed = p.current
	}
	p.current -= removed
	return removed
}

// Restore adds amount to the pool, clamping at capacity.
// Negative amounts are ignored.
func (p *Pool) Restore(amount float64) {
	if amount < 0 {
		return
	}
	p.current += amount
	if p.current > p.capacity {
		p.current = p.capacity
	}
}

// Refill restores the pool to full capacity
func (p *Pool) Refill() {
	p.current = p.capacity
}
