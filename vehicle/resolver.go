package vehicle

import (
	"math/rand"

	"chosenoffset.com/dispatch/policy"
	"chosenoffset.com/dispatch/roll"
	"chosenoffset.com/dispatch/sim"
)

// Resolver executes vehicle actions against the tuning table. Given a
// vehicle's kind and state it decides whether the action succeeds, how much
// fuel it costs, and what magnitudes result. All randomized draws go
// through the injected random source.
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

// Move performs the vehicle's primary action: start moving when idle,
// continue when already underway. The fuel check always precedes any state
// mutation; a failed move leaves the vehicle untouched.
func (r *Resolver) Move(v *Vehicle) sim.Outcome {
	if v.Kind == KindBoat && v.AnchorDown {
		return sim.Outcome{Code: sim.CodeFailure, Reason: sim.ReasonAnchorDown, Action: "start"}
	}

	tuning := r.tuning.Vehicle(string(v.Kind))
	if v.Moving {
		return r.continueMove(v, tuning)
	}
	return r.startMove(v, tuning)
}

// startMove transitions an idle vehicle to moving
func (r *Resolver) startMove(v *Vehicle, tuning policy.VehicleTuning) sim.Outcome {
	cost := float64(r.roller.Between(startCost(v, tuning).Min, startCost(v, tuning).Max))
	if !v.Fuel.Consume(cost) {
		return sim.Outcome{Code: sim.CodeFailure, Reason: sim.ReasonExhausted, Action: "start"}
	}

	v.Moving = true
	v.Speed = r.roller.Between(tuning.Speed.Min, capSpeed(v, tuning))
	distance := r.roller.Uniform(tuning.StartDistance.Min, tuning.StartDistance.Max)
	v.Distance += distance

	out := sim.Outcome{
		Code:     sim.CodeSuccess,
		Action:   "start",
		Cost:     cost,
		Distance: distance,
		Speed:    v.Speed,
	}

	switch v.Kind {
	case KindPlane:
		if tuning.Flight != nil {
			v.Altitude = r.rollAltitude(v, tuning.Flight.InitialAltitude)
			out.Altitude = v.Altitude
		}
	case KindBoat:
		if v.SailRaised {
			out.Detail = "wind and engine"
		} else {
			out.Detail = "engine power"
		}
	case KindBicycle:
		out.Detail = string(v.Intensity)
	}

	return out
}

// continueMove keeps a moving vehicle underway on the continue cost curve
func (r *Resolver) continueMove(v *Vehicle, tuning policy.VehicleTuning) sim.Outcome {
	cost := float64(r.roller.Between(continueCost(v, tuning).Min, continueCost(v, tuning).Max))
	if !v.Fuel.Consume(cost) {
		return sim.Outcome{Code: sim.CodeFailure, Reason: sim.ReasonExhausted, Action: "continue"}
	}

	distance := r.roller.Uniform(tuning.ContinueDistance.Min, tuning.ContinueDistance.Max)
	v.Distance += distance

	out := sim.Outcome{
		Code:     sim.CodeSuccess,
		Action:   "continue",
		Cost:     cost,
		Distance: distance,
		Speed:    v.Speed,
	}

	// Planes resample their cruising altitude on every leg
	if v.Kind == KindPlane && tuning.Flight != nil {
		v.Altitude = r.rollAltitude(v, tuning.Flight.CruiseAltitude)
		out.Altitude = v.Altitude
	}
	if v.Kind == KindBicycle {
		out.Detail = string(v.Intensity)
	}

	return out
}

// Stop halts the vehicle with kind-specific side effects: cars drop back to
// first gear, planes descend to the ground, boats drop anchor. Stopping an
// idle vehicle is an informational outcome.
func (r *Resolver) Stop(v *Vehicle) sim.Outcome {
	if !v.Moving {
		return sim.Outcome{Code: sim.CodeInfo, Reason: sim.ReasonAlreadyIdle, Action: "stop"}
	}

	v.Moving = false
	v.Speed = 0

	switch v.Kind {
	case KindCar:
		v.Gear = 1
	case KindPlane:
		v.Altitude = 0
	case KindBoat:
		v.AnchorDown = true
	case KindBicycle:
		// Nothing extra; the rider just brakes
	}

	return sim.Outcome{Code: sim.CodeSuccess, Action: "stop"}
}

// ChangeAltitude resamples a flying plane's altitude.
// Fails while on the ground; calls on non-planes are recognized no-ops.
func (r *Resolver) ChangeAltitude(v *Vehicle) sim.Outcome {
	if v.Kind != KindPlane {
		return sim.Outcome{Code: sim.CodeInfo, Action: "change_altitude"}
	}
	if !v.Moving {
		return sim.Outcome{Code: sim.CodeFailure, Reason: sim.ReasonAlreadyIdle, Action: "change_altitude"}
	}

	tuning := r.tuning.Vehicle(string(v.Kind))
	if tuning.Flight == nil {
		return sim.Outcome{Code: sim.CodeInfo, Action: "change_altitude"}
	}

	v.Altitude = r.rollAltitude(v, tuning.Flight.ShiftAltitude)
	return sim.Outcome{Code: sim.CodeSuccess, Action: "change_altitude", Altitude: v.Altitude}
}

// ChangeIntensity randomizes a bicycle rider's pedaling intensity.
// Calls on non-bicycles are recognized no-ops.
func (r *Resolver) ChangeIntensity(v *Vehicle) sim.Outcome {
	if v.Kind != KindBicycle {
		return sim.Outcome{Code: sim.CodeInfo, Action: "change_intensity"}
	}

	v.Intensity = Intensity(r.roller.Pick(Intensities))
	return sim.Outcome{Code: sim.CodeSuccess, Action: "change_intensity", Detail: string(v.Intensity)}
}

// rollAltitude draws an altitude from the range, capped by the plane's ceiling
func (r *Resolver) rollAltitude(v *Vehicle, rng policy.IntRange) int {
	max := rng.Max
	if v.MaxAltitude > 0 && v.MaxAltitude < max {
		max = v.MaxAltitude
	}
	return r.roller.Between(rng.Min, max)
}

// startCost returns the fuel cost range for starting, sail-adjusted for boats
func startCost(v *Vehicle, tuning policy.VehicleTuning) policy.IntRange {
	if v.Kind == KindBoat && v.SailRaised && tuning.Sail != nil {
		return tuning.Sail.StartCost
	}
	return tuning.StartCost
}

// continueCost returns the fuel cost range for continuing, sail-adjusted for boats
func continueCost(v *Vehicle, tuning policy.VehicleTuning) policy.IntRange {
	if v.Kind == KindBoat && v.SailRaised && tuning.Sail != nil {
		return tuning.Sail.ContinueCost
	}
	return tuning.ContinueCost
}

// capSpeed bounds the speed draw by the vehicle's own maximum
func capSpeed(v *Vehicle, tuning policy.VehicleTuning) int {
	if v.MaxSpeed > 0 && v.MaxSpeed < tuning.Speed.Max {
		return v.MaxSpeed
	}
	return tuning.Speed.Max
}
