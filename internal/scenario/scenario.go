// Package scenario builds scripted skirmish games on top of the engine and
// runs them to completion.
package scenario

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/efreeman/hexfleet/pkg/hexfleet"
)

// Config configures a single skirmish run.
type Config struct {
	Name  string
	Turns int   // cap before the skirmish is called off
	Seed  int64 // drives every random choice in the run
	Rules hexfleet.Rules
}

// Result describes the outcome of a completed skirmish.
type Result struct {
	Name        string
	TurnsPlayed int
	Colonized   int // bodies claimed during the run
	Built       int // units finished by constructors
	Credits     map[string]float64
	UnitCounts  map[string]int
	Events      map[string]int
}

// countingSink tallies engine events by name.
type countingSink struct {
	counts map[string]int
}

func (s *countingSink) GameEvent(event string, fields map[string]any) {
	s.counts[event]++
}

// Run plays a scripted two-faction skirmish: each faction loads colonists
// from its homeworld, sends a ship through the wormhole to claim a body in
// the rival's system, and builds a station at home. The run ends when every
// commander is idle and construction has finished, or at the turn cap.
func Run(ctx context.Context, cfg Config, log zerolog.Logger) (*Result, error) {
	if cfg.Turns <= 0 {
		cfg.Turns = 100
	}
	if cfg.Rules == (hexfleet.Rules{}) {
		cfg.Rules = hexfleet.DefaultRules()
	}

	sink := &countingSink{counts: make(map[string]int)}
	g := hexfleet.NewGame(cfg.Rules, log, sink, cfg.Seed)

	fix, err := buildGalaxy(g)
	if err != nil {
		return nil, fmt.Errorf("build galaxy: %w", err)
	}

	concord := g.AddPlayer("Concord", false)
	vanguard := g.AddPlayer("Vanguard", false)
	fix.homeA.Owner = concord
	fix.homeA.Population = 80
	fix.homeB.Owner = vanguard
	fix.homeB.Population = 80

	if err := deployFaction(g, concord, fix.homeA, fix.targetA); err != nil {
		return nil, fmt.Errorf("deploy %s: %w", concord.Name, err)
	}
	if err := deployFaction(g, vanguard, fix.homeB, fix.targetB); err != nil {
		return nil, fmt.Errorf("deploy %s: %w", vanguard.Name, err)
	}

	tp := hexfleet.NewTurnProcessor(g)
	for g.Turn < cfg.Turns {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		tp.EndTurn()
		if allIdle(g) {
			break
		}
	}

	result := &Result{
		Name:        cfg.Name,
		TurnsPlayed: g.Turn,
		Colonized:   sink.counts["body.colonized"],
		Built:       sink.counts["construction.finished"],
		Credits:     make(map[string]float64),
		UnitCounts:  make(map[string]int),
		Events:      sink.counts,
	}
	for _, p := range g.Players {
		result.Credits[p.Name] = p.Credits
	}
	for _, system := range g.Galaxy.Systems {
		for _, u := range system.AllUnits() {
			result.UnitCounts[u.Owner.Name]++
		}
	}
	log.Info().
		Str("skirmish", cfg.Name).
		Int("turns", result.TurnsPlayed).
		Int("colonized", result.Colonized).
		Int("built", result.Built).
		Msg("skirmish finished")
	return result, nil
}

// fixture holds the bodies the script revolves around.
type fixture struct {
	homeA, homeB     *hexfleet.CelestialBody
	targetA, targetB *hexfleet.CelestialBody
}

// buildGalaxy lays out two radius-6 systems joined by one wormhole pair,
// with a homeworld in each and an unclaimed body for the rival to take.
func buildGalaxy(g *hexfleet.Game) (*fixture, error) {
	g.Galaxy.AddSystem(hexfleet.NewStarSystem("Sol", 6, g.Rules.SectorRadius))
	g.Galaxy.AddSystem(hexfleet.NewStarSystem("Alpha", 6, g.Rules.SectorRadius))

	if _, err := g.Galaxy.NewBody(hexfleet.BodyStar, "Sol", "Sol", hexfleet.HexCoord{Q: -3, R: 0}); err != nil {
		return nil, err
	}
	if _, err := g.Galaxy.NewBody(hexfleet.BodyStar, "Alpha", "Alpha", hexfleet.HexCoord{Q: 3, R: -3}); err != nil {
		return nil, err
	}

	fix := &fixture{}
	var err error
	if fix.homeA, err = g.Galaxy.NewBody(hexfleet.BodyPlanet, "Meridian", "Sol", hexfleet.HexCoord{Q: 3, R: -2}); err != nil {
		return nil, err
	}
	if fix.homeB, err = g.Galaxy.NewBody(hexfleet.BodyPlanet, "Farhold", "Alpha", hexfleet.HexCoord{Q: 0, R: 2}); err != nil {
		return nil, err
	}
	// Concord's prize sits in Alpha, Vanguard's in Sol: both scripts cross
	// the wormhole.
	if fix.targetA, err = g.Galaxy.NewBody(hexfleet.BodyAsteroid, "Drift", "Alpha", hexfleet.HexCoord{Q: 2, R: -2}); err != nil {
		return nil, err
	}
	if fix.targetB, err = g.Galaxy.NewBody(hexfleet.BodyMoon, "Threshold", "Sol", hexfleet.HexCoord{Q: 0, R: 3}); err != nil {
		return nil, err
	}

	if _, _, err = g.Galaxy.AddWormholePair("Sol", "Alpha", hexfleet.HexCoord{Q: 2, R: 0}, hexfleet.HexCoord{Q: -2, R: 1}); err != nil {
		return nil, err
	}
	g.Galaxy.BuildSystemGraph()
	return fix, nil
}

// surveyorSpec is the colony ship each faction starts with.
func surveyorSpec() hexfleet.UnitSpec {
	return hexfleet.UnitSpec{
		Name:       "Surveyor",
		Hull:       hexfleet.HullMedium,
		Engines:    &hexfleet.EnginesSpec{Speed: 200, HullCost: 10},
		Hyperdrive: &hexfleet.HyperdriveSpec{Type: hexfleet.HyperdriveAdvanced, HullCost: 15},
		Colony:     &hexfleet.ColonySpec{MaxCargo: 100, HullCost: 10},
	}
}

// deployFaction spawns a faction's starting units near its homeworld and
// queues the standing orders: load colonists, claim the rival-system body,
// and start a station build at home.
func deployFaction(g *hexfleet.Game, owner *hexfleet.Player, home, target *hexfleet.CelestialBody) error {
	// Outside the homeworld's inhibition field so the first jump is legal.
	edge := hexfleet.Position{X: home.Kind.InhibitionRadius() + 50, Y: 0}

	surveyor, err := g.SpawnUnit(owner, surveyorSpec(), home.InSystem, home.InHex, edge)
	if err != nil {
		return err
	}
	builderSpec, ok := hexfleet.TemplateSpec("CONSTRUCTOR_MK1")
	if !ok {
		return fmt.Errorf("constructor template missing")
	}
	builder, err := g.SpawnUnit(owner, builderSpec, home.InSystem, home.InHex, hexfleet.Position{X: -edge.X, Y: 0})
	if err != nil {
		return err
	}

	surveyor.Commander.AddOrder(g.NewOrder(surveyor, hexfleet.OrderLoadColonists, hexfleet.OrderParams{
		TargetBodyID: home.ID,
		Amount:       50,
	}))
	surveyor.Commander.AddOrder(g.NewOrder(surveyor, hexfleet.OrderColonize, hexfleet.OrderParams{
		TargetBodyID: target.ID,
	}))
	builder.Commander.AddOrder(g.NewOrder(builder, hexfleet.OrderConstruct, hexfleet.OrderParams{
		Template: "STATION_MK1",
		BuildPos: hexfleet.Position{X: -edge.X, Y: 200},
	}))
	return nil
}

// allIdle reports whether every unit has run out of orders and construction
// projects.
func allIdle(g *hexfleet.Game) bool {
	for _, system := range g.Galaxy.Systems {
		for _, u := range system.AllUnits() {
			if u.Commander.ActiveOrderCount() > 0 {
				return false
			}
			if u.Constructor != nil {
				if _, building := u.Constructor.Building(); building {
					return false
				}
			}
		}
	}
	return true
}
