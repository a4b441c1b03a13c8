package hero

import (
	"fmt"

	"chosenoffset.com/dispatch/sim"
)

// Team holds an ordered group of heroes and broadcasts operations across
// them. Membership is by identity; insertion order is iteration and display
// order. One hero's failure never blocks the rest of a broadcast.
type Team struct {
	name     string
	members  []*Hero
	resolver *Resolver
	missions int // Shared team mission counter
}

// Report aggregates the status of every team member
type Report struct {
	Team          string
	Snapshots     []sim.Snapshot
	ActiveCount   int // Members currently alive
	TotalMissions int // Sum of individual mission counts
	TeamMissions  int // Shared counter, bumped once per team attack
	TotalHealth   float64
	TotalEnergy   float64
}

// AttackReport is the result of one team attack. Mission is zero when no
// member was alive to participate.
type AttackReport struct {
	Mission      int
	Participants []string
	Outcomes     []sim.Outcome
}

// NewTeam creates an empty team driven by the given resolver
func NewTeam(name string, resolver *Resolver) *Team {
	return &Team{
		name:     name,
		members:  make([]*Hero, 0),
		resolver: resolver,
	}
}

// Name returns the team's display name
func (t *Team) Name() string {
	return t.name
}

// Size returns the number of members
func (t *Team) Size() int {
	return len(t.members)
}

// Missions returns the shared team mission counter
func (t *Team) Missions() int {
	return t.missions
}

// Members returns the members in insertion order.
// The slice is a copy; the membership itself cannot be mutated through it.
func (t *Team) Members() []*Hero {
	out := make([]*Hero, len(t.members))
	copy(out, t.members)
	return out
}

// AliveMembers returns the members eligible to act, in insertion order
func (t *Team) AliveMembers() []*Hero {
	var alive []*Hero
	for _, h := range t.members {
		if h.Alive() {
			alive = append(alive, h)
		}
	}
	return alive
}

// Add appends a hero to the team, preserving insertion order.
// Re-adding the same hero reports sim.ErrAlreadyMember.
func (t *Team) Add(h *Hero) error {
	for _, member := range t.members {
		if member == h {
			return fmt.Errorf("%s: %w", h.Name, sim.ErrAlreadyMember)
		}
	}
	t.members = append(t.members, h)
	return nil
}

// Remove takes a hero off the team.
// Removing a non-member reports sim.ErrNotMember.
func (t *Team) Remove(h *Hero) error {
	for i, member := range t.members {
		if member == h {
			t.members = append(t.members[:i], t.members[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%s: %w", h.Name, sim.ErrNotMember)
}

// PowerAll invokes UsePower on every member in insertion order and
// collects the outcomes. Defeated members produce a failure outcome but do
// not block the rest.
func (t *Team) PowerAll() []sim.Outcome {
	outcomes := make([]sim.Outcome, 0, len(t.members))
	for _, h := range t.members {
		outcomes = append(outcomes, t.resolver.UsePower(h))
	}
	return outcomes
}

// StandDownAll invokes StandDown on every member in insertion order
func (t *Team) StandDownAll() []sim.Outcome {
	outcomes := make([]sim.Outcome, 0, len(t.members))
	for _, h := range t.members {
		outcomes = append(outcomes, t.resolver.StandDown(h))
	}
	return outcomes
}

// RestAll restores every member's energy by the tuned rest amount
func (t *Team) RestAll() {
	for _, h := range t.members {
		t.resolver.Rest(h)
	}
}

// Attack runs a team attack: every currently-alive member uses its power
// and has its mission count marked, and the shared team counter increments
// exactly once. Defeated members neither act nor accrue a mission. With no
// alive members the attack is a no-op and the counter stays put.
func (t *Team) Attack() AttackReport {
	alive := t.AliveMembers()
	if len(alive) == 0 {
		return AttackReport{}
	}

	t.missions++
	report := AttackReport{
		Mission:      t.missions,
		Participants: make([]string, 0, len(alive)),
		Outcomes:     make([]sim.Outcome, 0, len(alive)),
	}
	for _, h := range alive {
		report.Outcomes = append(report.Outcomes, t.resolver.UsePower(h))
		h.CompleteMission()
		report.Participants = append(report.Participants, h.Name)
	}
	return report
}

// StatusReport returns a pure read of the whole team: per-hero snapshots
// plus aggregate totals. Nothing is mutated.
func (t *Team) StatusReport() Report {
	report := Report{
		Team:         t.name,
		Snapshots:    make([]sim.Snapshot, 0, len(t.members)),
		TeamMissions: t.missions,
	}
	for _, h := range t.members {
		snap := h.Status()
		report.Snapshots = append(report.Snapshots, snap)
		report.TotalMissions += snap.Missions
		report.TotalHealth += snap.Health
		report.TotalEnergy += snap.Energy
		if h.Alive() {
			report.ActiveCount++
		}
	}
	return report
}
