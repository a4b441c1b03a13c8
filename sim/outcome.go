// Package sim provides the shared result types of the simulation core:
// action outcomes, status snapshots, and the sentinel errors returned by
// constructors and collections. The presentation layer is responsible for
// turning these values into user-facing text.
package sim

// Code classifies the result of invoking an entity's action
type Code string

const (
	CodeSuccess Code = "success" // Action executed and mutated state
	CodeFailure Code = "failure" // Action rejected by a domain condition, state untouched
	CodeInfo    Code = "info"    // No-op call (already active, already idle)
)

// Reason identifies the domain condition behind a failure or info outcome.
// These are routine branches of the simulation, never errors.
type Reason string

const (
	ReasonNone          Reason = ""
	ReasonExhausted     Reason = "resource_exhausted"
	ReasonAlreadyActive Reason = "already_active"
	ReasonAlreadyIdle   Reason = "already_idle"
	ReasonAnchorDown    Reason = "anchor_down"
	ReasonDefeated      Reason = "defeated"
	ReasonNoGadgets     Reason = "no_gadgets"
)

// Outcome is the result of one entity action. Magnitude fields are only
// populated when relevant to the action that produced the outcome.
type Outcome struct {
	Code   Code   // success / failure / info
	Reason Reason // Set on failure and info outcomes
	Action string // What was attempted (e.g. "start", "continue", "stop", "maneuver")

	Cost     float64 // Resource actually consumed
	Distance float64 // Distance covered (vehicles)
	Speed    int     // Current speed after the action (vehicles, flight)
	Altitude int     // Current altitude after the action (plane)
	Damage   int     // Damage dealt (combatants)
	Gadget   string  // Gadget used (tech heroes)
	Move     string  // Combo move name (hybrid heroes)
	Detail   string  // Variant-specific note (pedaling intensity, propulsion mode)
}

// Succeeded returns true if the action executed
func (o Outcome) Succeeded() bool {
	return o.Code == CodeSuccess
}

// Failed returns true if the action was rejected by a domain condition
func (o Outcome) Failed() bool {
	return o.Code == CodeFailure
}

// Informational returns true if the call was a recognized no-op
func (o Outcome) Informational() bool {
	return o.Code == CodeInfo
}

// Snapshot is a pure read of one entity's state.
// Health, Energy, and Missions are only meaningful for combatants.
type Snapshot struct {
	Name            string
	Kind            string
	Active          bool
	ResourcePercent float64
	Output          float64 // Cumulative distance or equivalent
	Magnitude       float64 // Current speed; zero whenever inactive
	Health          float64
	Energy          float64
	Missions        int
}
