// Command dispatch runs the simulation from the console: it builds a
// scenario, runs movement rounds and a team attack, and prints the
// resulting reports. All simulation behavior lives in the core packages;
// this binary only turns outcomes into text.
package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/spf13/viper"

	"chosenoffset.com/dispatch/hero"
	"chosenoffset.com/dispatch/policy"
	"chosenoffset.com/dispatch/registry"
	"chosenoffset.com/dispatch/scenario"
	"chosenoffset.com/dispatch/sim"
	"chosenoffset.com/dispatch/vehicle"
)

func main() {
	viper.SetDefault("seed", 0)
	viper.SetDefault("rounds", 2)
	viper.SetDefault("scenario", "data/scenarios/demo.json")
	viper.SetDefault("policies", "")

	viper.SetConfigName("dispatch")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.SetEnvPrefix("dispatch")
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("Failed to read config: %v", err)
		}
	}

	seed := viper.GetInt64("seed")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	table := policy.Default()
	if path := viper.GetString("policies"); path != "" {
		override, err := policy.Load(path)
		if err != nil {
			log.Fatalf("Failed to load policy file: %v", err)
		}
		table.Merge(override)
	}

	file, err := scenario.Load(viper.GetString("scenario"))
	if err != nil {
		log.Fatalf("Failed to load scenario: %v", err)
	}

	reg := registry.New()
	res := vehicle.NewResolver(table, rng)
	fleet, team, err := scenario.Build(file, reg, res, hero.NewResolver(table, rng))
	if err != nil {
		log.Fatalf("Failed to build scenario: %v", err)
	}

	log.Printf("Scenario %q: %d vehicles, %d heroes (seed %d)",
		file.Name, fleet.Size(), team.Size(), seed)

	vehicles := fleet.Vehicles()
	members := team.Members()

	rounds := viper.GetInt("rounds")
	for round := 1; round <= rounds; round++ {
		fmt.Printf("\n--- Round %d ---\n", round)

		fmt.Println("Fleet moves out:")
		for i, out := range fleet.MoveAll() {
			fmt.Printf("  %s\n", describe(vehicles[i].Name, out))
		}

		fmt.Println("Team attack:")
		attack := team.Attack()
		if attack.Mission == 0 {
			fmt.Println("  no members available")
		} else {
			for i, out := range attack.Outcomes {
				fmt.Printf("  %s\n", describe(attack.Participants[i], out))
			}
			fmt.Printf("  mission #%d complete\n", attack.Mission)
		}
	}

	fmt.Println("\nKind-specific maneuvers:")
	for _, v := range vehicles {
		var out sim.Outcome
		switch v.Kind {
		case vehicle.KindCar:
			out = v.ShiftGear()
		case vehicle.KindPlane:
			out = res.ChangeAltitude(v)
		case vehicle.KindBoat:
			out = v.RaiseSail()
		case vehicle.KindBicycle:
			out = res.ChangeIntensity(v)
		}
		fmt.Printf("  %s\n", describe(v.Name, out))
	}

	fmt.Println("\nStopping everything:")
	for i, out := range fleet.StopAll() {
		fmt.Printf("  %s\n", describe(vehicles[i].Name, out))
	}
	for i, out := range team.StandDownAll() {
		fmt.Printf("  %s\n", describe(members[i].Name, out))
	}

	printFleetReport(fleet.StatusReport())
	printTeamReport(team.StatusReport())

	fmt.Printf("\nCreated this run: %d vehicles, %d heroes\n",
		reg.Count(registry.CounterVehiclesCreated),
		reg.Count(registry.CounterHeroesCreated))
}

// verbs maps action identifiers to display verbs
var verbs = map[string]string{
	"start":            "sets off",
	"continue":         "keeps going",
	"stop":             "stops",
	"take_flight":      "takes flight",
	"maneuver":         "performs an aerial assault",
	"gadget":           "deploys a gadget",
	"combo":            "unleashes a combo",
	"land":             "lands",
	"stand_down":       "stands down",
	"upgrade":          "upgrades",
	"rest":             "rests",
	"shift_gear":       "shifts up",
	"change_altitude":  "changes altitude",
	"change_intensity": "changes pace",
	"raise_sail":       "raises the sail",
	"lower_sail":       "lowers the sail",
	"raise_anchor":     "raises the anchor",
}

// describe renders one outcome as a line of text
func describe(name string, out sim.Outcome) string {
	verb := verbs[out.Action]
	if verb == "" {
		verb = out.Action
	}

	switch out.Code {
	case sim.CodeFailure:
		return fmt.Sprintf("%s cannot act: %s (%s)", name, out.Action, out.Reason)
	case sim.CodeInfo:
		if out.Reason != sim.ReasonNone {
			return fmt.Sprintf("%s: %s is a no-op (%s)", name, out.Action, out.Reason)
		}
		return fmt.Sprintf("%s: %s is a no-op", name, out.Action)
	}

	line := fmt.Sprintf("%s %s", name, verb)
	if out.Distance > 0 {
		line += fmt.Sprintf(", covers %.1f km", out.Distance)
	}
	if out.Speed > 0 {
		line += fmt.Sprintf(" at %d km/h", out.Speed)
	}
	if out.Altitude > 0 {
		line += fmt.Sprintf(" (altitude %d m)", out.Altitude)
	}
	if out.Damage > 0 {
		line += fmt.Sprintf(", deals %d damage", out.Damage)
	}
	if out.Gadget != "" {
		line += fmt.Sprintf(" with %s", out.Gadget)
	}
	if out.Move != "" {
		line += fmt.Sprintf(" using %s", out.Move)
	}
	if out.Detail != "" {
		line += fmt.Sprintf(" [%s]", out.Detail)
	}
	return line
}

func printFleetReport(report vehicle.Report) {
	fmt.Printf("\nFleet %q status:\n", report.Fleet)
	for _, snap := range report.Snapshots {
		state := "stopped"
		if snap.Active {
			state = "moving"
		}
		fmt.Printf("  %-16s %-8s %s | fuel %5.1f%% | %.1f km\n",
			snap.Name, snap.Kind, state, snap.ResourcePercent, snap.Output)
	}
	fmt.Printf("  moving: %d/%d, total distance %.1f km\n",
		report.MovingCount, len(report.Snapshots), report.TotalDistance)
}

func printTeamReport(report hero.Report) {
	fmt.Printf("\nTeam %q status:\n", report.Team)
	for _, snap := range report.Snapshots {
		fmt.Printf("  %-16s %-8s health %5.1f | energy %5.1f | missions %d\n",
			snap.Name, snap.Kind, snap.Health, snap.Energy, snap.Missions)
	}
	fmt.Printf("  alive: %d/%d, team missions %d, total missions %d\n",
		report.ActiveCount, len(report.Snapshots), report.TeamMissions, report.TotalMissions)
}
