package vehicle

import (
	"fmt"

	"chosenoffset.com/dispatch/sim"
)

// Fleet holds an ordered group of vehicles and broadcasts operations across
// them. Membership is by identity; insertion order is iteration and display
// order. One vehicle's failure never blocks the rest of a broadcast.
type Fleet struct {
	name     string
	vehicles []*Vehicle
	resolver *Resolver
}

// Report aggregates the status of every fleet member
type Report struct {
	Fleet         string
	Snapshots     []sim.Snapshot
	MovingCount   int
	TotalDistance float64
}

// NewFleet creates an empty fleet driven by the given resolver
func NewFleet(name string, resolver *Resolver) *Fleet {
	return &Fleet{
		name:     name,
		vehicles: make([]*Vehicle, 0),
		resolver: resolver,
	}
}

// Name returns the fleet's display name
func (f *Fleet) Name() string {
	return f.name
}

// Size returns the number of members
func (f *Fleet) Size() int {
	return len(f.vehicles)
}

// Vehicles returns the members in insertion order.
// The slice is a copy; the membership itself cannot be mutated through it.
func (f *Fleet) Vehicles() []*Vehicle {
	out := make([]*Vehicle, len(f.vehicles))
	copy(out, f.vehicles)
	return out
}

// Add appends a vehicle to the fleet, preserving insertion order.
// Re-adding the same vehicle reports sim.ErrAlreadyMember.
func (f *Fleet) Add(v *Vehicle) error {
	for _, member := range f.vehicles {
		if member == v {
			return fmt.Errorf("%s: %w", v.Name, sim.ErrAlreadyMember)
		}
	}
	f.vehicles = append(f.vehicles, v)
	return nil
}

// Remove takes a vehicle out of the fleet.
// Removing a non-member reports sim.ErrNotMember.
func (f *Fleet) Remove(v *Vehicle) error {
	for i, member := range f.vehicles {
		if member == v {
			f.vehicles = append(f.vehicles[:i], f.vehicles[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%s: %w", v.Name, sim.ErrNotMember)
}

// MoveAll invokes Move on every member in insertion order and collects the
// outcomes. Individual failures do not short-circuit the broadcast.
func (f *Fleet) MoveAll() []sim.Outcome {
	outcomes := make([]sim.Outcome, 0, len(f.vehicles))
	for _, v := range f.vehicles {
		outcomes = append(outcomes, f.resolver.Move(v))
	}
	return outcomes
}

// StopAll invokes Stop on every member in insertion order
func (f *Fleet) StopAll() []sim.Outcome {
	outcomes := make([]sim.Outcome, 0, len(f.vehicles))
	for _, v := range f.vehicles {
		outcomes = append(outcomes, f.resolver.Stop(v))
	}
	return outcomes
}

// RefuelAll refills every member's pool
func (f *Fleet) RefuelAll() {
	for _, v := range f.vehicles {
		v.Refuel()
	}
}

// StatusReport returns a pure read of the whole fleet: per-vehicle
// snapshots plus aggregate counts. Nothing is mutated.
func (f *Fleet) StatusReport() Report {
	report := Report{
		Fleet:     f.name,
		Snapshots: make([]sim.Snapshot, 0, len(f.vehicles)),
	}
	for _, v := range f.vehicles {
		snap := v.Status()
		report.Snapshots = append(report.Snapshots, snap)
		report.TotalDistance += snap.Output
		if snap.Active {
			report.MovingCount++
		}
	}
	return report
}
