package hero

import (
	"fmt"
	"math/rand"

	"chosenoffset.com/dispatch/policy"
	"chosenoffset.com/dispatch/roll"
	"chosenoffset.com/dispatch/sim"
)

// Resolver executes hero powers against the tuning table. Given a hero's
// kind and state it decides whether the power fires, how much energy it
// costs, and how much damage results. All randomized draws go through the
// injected random source.
type Resolver struct {
	tuning *policy.Table
	roller *roll.Roller
}

// NewResolver creates a resolver. A nil table uses the built-in defaults.
func NewResolver(table *policy.Table, rng *rand.Rand) *Resolver {
	if table == nil {
		table = policy.Default()
	}
	return &Resolver{tuning: table, roller: roll.NewRoller(rng)}
}

// UsePower performs the hero's primary action. The energy check always
// precedes any state mutation; a failed power leaves the hero untouched.
// Defeated heroes reject all powers.
func (r *Resolver) UsePower(h *Hero) sim.Outcome {
	if !h.Alive() {
		return sim.Outcome{Code: sim.CodeFailure, Reason: sim.ReasonDefeated, Action: "use_power"}
	}

	tuning := r.tuning.Hero(string(h.Kind))
	switch h.Kind {
	case KindFlying:
		return r.flyingPower(h, tuning)
	case KindTech:
		return r.techPower(h, tuning)
	case KindHybrid:
		return r.hybridPower(h, tuning)
	}
	return sim.Outcome{Code: sim.CodeFailure, Action: "use_power"}
}

// flyingPower is two-phase: take flight first, aerial maneuver once airborne
func (r *Resolver) flyingPower(h *Hero, tuning policy.HeroTuning) sim.Outcome {
	if tuning.Flight == nil || h.Flight == nil {
		return sim.Outcome{Code: sim.CodeFailure, Action: "use_power"}
	}

	if !h.Flight.Airborne {
		return r.takeFlight(h, tuning.Flight)
	}

	if !h.Energy.Consume(tuning.Flight.ManeuverCost) {
		return sim.Outcome{Code: sim.CodeFailure, Reason: sim.ReasonExhausted, Action: "maneuver"}
	}
	h.Engaged = true
	return sim.Outcome{
		Code:   sim.CodeSuccess,
		Action: "maneuver",
		Cost:   tuning.Flight.ManeuverCost,
		Damage: r.roller.Between(tuning.Flight.ManeuverDamage.Min, tuning.Flight.ManeuverDamage.Max),
		Speed:  h.Flight.Speed,
	}
}

// techPower fires a random gadget, with damage scaled by tech level
func (r *Resolver) techPower(h *Hero, tuning policy.HeroTuning) sim.Outcome {
	if tuning.Tech == nil || h.Tech == nil {
		return sim.Outcome{Code: sim.CodeFailure, Action: "use_power"}
	}
	if !h.Tech.HasGadgets() {
		return sim.Outcome{Code: sim.CodeFailure, Reason: sim.ReasonNoGadgets, Action: "gadget"}
	}
	if !h.Energy.Consume(tuning.Tech.GadgetCost) {
		return sim.Outcome{Code: sim.CodeFailure, Reason: sim.ReasonExhausted, Action: "gadget"}
	}

	h.Engaged = true
	return sim.Outcome{
		Code:   sim.CodeSuccess,
		Action: "gadget",
		Cost:   tuning.Tech.GadgetCost,
		Gadget: r.roller.Pick(h.Tech.Gadgets()),
		Damage: r.roller.Between(tuning.Tech.GadgetDamage.Min, tuning.Tech.GadgetDamage.Max) * h.Tech.Level,
	}
}

// hybridPower fires a combo move: one cost covers base damage plus the
// tech bonus and, while airborne, the flight bonus
func (r *Resolver) hybridPower(h *Hero, tuning policy.HeroTuning) sim.Outcome {
	if tuning.Combo == nil || h.Tech == nil {
		return sim.Outcome{Code: sim.CodeFailure, Action: "use_power"}
	}
	if !h.Energy.Consume(tuning.Combo.Cost) {
		return sim.Outcome{Code: sim.CodeFailure, Reason: sim.ReasonExhausted, Action: "combo"}
	}

	damage := r.roller.Between(tuning.Combo.BaseDamage.Min, tuning.Combo.BaseDamage.Max)
	damage += h.Tech.Level * tuning.Combo.TechBonusPerLevel
	if h.Flight != nil && h.Flight.Airborne {
		damage += tuning.Combo.FlightBonus
	}

	h.Engaged = true
	return sim.Outcome{
		Code:   sim.CodeSuccess,
		Action: "combo",
		Cost:   tuning.Combo.Cost,
		Move:   r.roller.Pick(h.ComboMoves()),
		Damage: damage,
	}
}

// TakeFlight lifts a flight-capable hero off the ground.
// Already airborne is informational; defeated heroes cannot fly.
func (r *Resolver) TakeFlight(h *Hero) sim.Outcome {
	if h.Flight == nil {
		return sim.Outcome{Code: sim.CodeInfo, Action: "take_flight"}
	}
	if !h.Alive() {
		return sim.Outcome{Code: sim.CodeFailure, Reason: sim.ReasonDefeated, Action: "take_flight"}
	}
	if h.Flight.Airborne {
		return sim.Outcome{Code: sim.CodeInfo, Reason: sim.ReasonAlreadyActive, Action: "take_flight"}
	}

	tuning := r.tuning.Hero(string(h.Kind))
	if tuning.Flight == nil {
		return sim.Outcome{Code: sim.CodeInfo, Action: "take_flight"}
	}
	return r.takeFlight(h, tuning.Flight)
}

func (r *Resolver) takeFlight(h *Hero, tuning *policy.FlightPowerTuning) sim.Outcome {
	if !h.Energy.Consume(tuning.TakeFlightCost) {
		return sim.Outcome{Code: sim.CodeFailure, Reason: sim.ReasonExhausted, Action: "take_flight"}
	}
	h.Flight.Airborne = true
	h.Engaged = true
	return sim.Outcome{
		Code:   sim.CodeSuccess,
		Action: "take_flight",
		Cost:   tuning.TakeFlightCost,
		Speed:  h.Flight.Speed,
	}
}

// Land brings an airborne hero back to the ground.
// Landing while grounded is informational.
func (r *Resolver) Land(h *Hero) sim.Outcome {
	if h.Flight == nil || !h.Flight.Airborne {
		return sim.Outcome{Code: sim.CodeInfo, Reason: sim.ReasonAlreadyIdle, Action: "land"}
	}
	h.Flight.Airborne = false
	return sim.Outcome{Code: sim.CodeSuccess, Action: "land"}
}

// StandDown halts the hero's activity: disengages and lands.
// Standing down while idle is informational.
func (r *Resolver) StandDown(h *Hero) sim.Outcome {
	if !h.Engaged {
		return sim.Outcome{Code: sim.CodeInfo, Reason: sim.ReasonAlreadyIdle, Action: "stand_down"}
	}
	h.Engaged = false
	if h.Flight != nil {
		h.Flight.Airborne = false
	}
	return sim.Outcome{Code: sim.CodeSuccess, Action: "stand_down"}
}

// UpgradeTech raises a tech-capable hero's level by one and rebuilds the
// gadget list from the resolver's tuning table.
func (r *Resolver) UpgradeTech(h *Hero) sim.Outcome {
	if h.Tech == nil {
		return sim.Outcome{Code: sim.CodeInfo, Action: "upgrade"}
	}

	tuning := r.tuning.Hero(string(h.Kind))
	if tuning.Tech == nil {
		return sim.Outcome{Code: sim.CodeInfo, Action: "upgrade"}
	}
	if !h.Energy.Consume(tuning.Tech.UpgradeCost) {
		return sim.Outcome{Code: sim.CodeFailure, Reason: sim.ReasonExhausted, Action: "upgrade"}
	}

	h.Tech.Level++
	h.Tech.rebuild(tuning.Tech)
	return sim.Outcome{
		Code:   sim.CodeSuccess,
		Action: "upgrade",
		Cost:   tuning.Tech.UpgradeCost,
		Detail: fmt.Sprintf("tech level %d", h.Tech.Level),
	}
}

// Rest restores energy by the tuned rest amount
func (r *Resolver) Rest(h *Hero) sim.Outcome {
	tuning := r.tuning.Hero(string(h.Kind))
	h.Energy.Restore(tuning.RestAmount)
	return sim.Outcome{Code: sim.CodeSuccess, Action: "rest"}
}
