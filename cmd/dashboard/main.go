// Command dashboard shows the live fleet and team status in a window and
// maps keys to the broadcast operations:
//
//	M  move all vehicles      A  team attack
//	S  stop all / stand down  R  refuel fleet, rest team
//	C  change altitude/intensity, shift gears, raise sails
//
// Like the console binary it is presentation only; every state change goes
// through the core's public operations.
package main

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"chosenoffset.com/dispatch/hero"
	"chosenoffset.com/dispatch/registry"
	"chosenoffset.com/dispatch/scenario"
	"chosenoffset.com/dispatch/sim"
	"chosenoffset.com/dispatch/vehicle"
)

const (
	screenWidth  = 640
	screenHeight = 480
)

// App drives the dashboard: it owns the collections and a small log of
// recent outcomes.
type App struct {
	fleet    *vehicle.Fleet
	team     *hero.Team
	resolver *vehicle.Resolver
	recent   []string
}

func (a *App) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		a.record("move all", a.fleet.MoveAll())
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		a.record("stop all", a.fleet.StopAll())
		a.record("stand down", a.team.StandDownAll())
	case inpututil.IsKeyJustPressed(ebiten.KeyA):
		attack := a.team.Attack()
		if attack.Mission == 0 {
			a.push("team attack: no members available")
		} else {
			a.push(fmt.Sprintf("team attack: mission #%d, %d participants",
				attack.Mission, len(attack.Participants)))
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		a.fleet.RefuelAll()
		a.team.RestAll()
		a.push("refueled fleet, rested team")
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		for _, v := range a.fleet.Vehicles() {
			switch v.Kind {
			case vehicle.KindCar:
				v.ShiftGear()
			case vehicle.KindPlane:
				a.resolver.ChangeAltitude(v)
			case vehicle.KindBoat:
				v.RaiseSail()
			case vehicle.KindBicycle:
				a.resolver.ChangeIntensity(v)
			}
		}
		a.push("kind-specific maneuvers")
	}
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, a.statusText())
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

// record summarizes a batch of outcomes into the recent log
func (a *App) record(label string, outcomes []sim.Outcome) {
	ok, failed := 0, 0
	for _, out := range outcomes {
		if out.Succeeded() {
			ok++
		} else if out.Failed() {
			failed++
		}
	}
	a.push(fmt.Sprintf("%s: %d ok, %d failed", label, ok, failed))
}

func (a *App) push(msg string) {
	a.recent = append(a.recent, msg)
	if len(a.recent) > 6 {
		a.recent = a.recent[len(a.recent)-6:]
	}
}

func (a *App) statusText() string {
	var b strings.Builder

	fleetReport := a.fleet.StatusReport()
	fmt.Fprintf(&b, "Fleet %q  (moving %d, total %.1f km)\n",
		fleetReport.Fleet, fleetReport.MovingCount, fleetReport.TotalDistance)
	for _, snap := range fleetReport.Snapshots {
		state := "stopped"
		if snap.Active {
			state = fmt.Sprintf("moving %d km/h", int(snap.Magnitude))
		}
		fmt.Fprintf(&b, "  %-14s %-8s %-16s fuel %5.1f%%  %.1f km\n",
			snap.Name, snap.Kind, state, snap.ResourcePercent, snap.Output)
	}

	teamReport := a.team.StatusReport()
	fmt.Fprintf(&b, "\nTeam %q  (alive %d, missions %d)\n",
		teamReport.Team, teamReport.ActiveCount, teamReport.TeamMissions)
	for _, snap := range teamReport.Snapshots {
		fmt.Fprintf(&b, "  %-14s %-8s hp %5.1f  energy %5.1f  missions %d\n",
			snap.Name, snap.Kind, snap.Health, snap.Energy, snap.Missions)
	}

	b.WriteString("\n[M]ove  [S]top  [A]ttack  [R]efuel/rest  [C]maneuvers\n\n")
	for _, msg := range a.recent {
		fmt.Fprintf(&b, "> %s\n", msg)
	}

	return b.String()
}

func main() {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	file, err := scenario.Load("data/scenarios/demo.json")
	if err != nil {
		log.Fatalf("Failed to load scenario: %v", err)
	}

	resolver := vehicle.NewResolver(nil, rng)
	fleet, team, err := scenario.Build(file, registry.New(), resolver, hero.NewResolver(nil, rng))
	if err != nil {
		log.Fatalf("Failed to build scenario: %v", err)
	}

	app := &App{fleet: fleet, team: team, resolver: resolver}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Dispatch - Status Dashboard")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
