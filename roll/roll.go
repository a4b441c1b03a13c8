// Package roll provides the pseudo-random draws used by the simulation.
// Every randomized magnitude in the system goes through a Roller with a
// configurable random source, so outcomes are reproducible under a fixed seed.
package roll

import "math/rand"

// Roller draws values from closed intervals using a configurable random source
type Roller struct {
	rng *rand.Rand
}

// NewRoller creates a new Roller with the given random source
func NewRoller(rng *rand.Rand) *Roller {
	return &Roller{rng: rng}
}

// Between returns an integer in [min, max], both bounds inclusive.
// If max <= min, min is returned.
func (r *Roller) Between(min, max int) int {
	if max <= min {
		return min
	}
	return min + r.rng.Intn(max-min+1)
}

// Uniform returns a float64 in [min, max].
// If max <= min, min is returned.
func (r *Roller) Uniform(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + r.rng.Float64()*(max-min)
}

// Pick returns a random element from items, or "" if items is empty
func (r *Roller) Pick(items []string) string {
	if len(items) == 0 {
		return ""
	}
	return items[r.rng.Intn(len(items))]
}
