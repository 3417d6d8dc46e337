package hexfleet

import (
	"math/rand"

	"github.com/rs/zerolog"
)

// Rules are the engine-level tuning knobs. Callers load them from config
// or use DefaultRules.
type Rules struct {
	RechargeTurns    int
	DefaultJumpRange int
	SectorRadius     float64
	TaxRate          float64
}

// DefaultRules returns the stock rule set.
func DefaultRules() Rules {
	return Rules{
		RechargeTurns:    3,
		DefaultJumpRange: 5,
		SectorRadius:     DefaultSectorRadius,
		TaxRate:          0.1,
	}
}

// Game is the aggregate holding one running game: the galaxy, the players
// and the rotation between them, plus the injected rules, logger, event
// sink, id source and rng.
type Game struct {
	Galaxy  *Galaxy
	Players []*Player
	Current int
	Turn    int
	Rules   Rules

	log    zerolog.Logger
	events EventSink
	ids    *IDSource
	rng    *rand.Rand
}

// NewGame creates an empty game. The seed drives the engine's only random
// choice (escape headings out of inhibited wormhole exits), so runs are
// reproducible.
func NewGame(rules Rules, log zerolog.Logger, events EventSink, seed int64) *Game {
	if events == nil {
		events = NoopSink{}
	}
	ids := NewIDSource()
	return &Game{
		Galaxy: NewGalaxy(ids),
		Rules:  rules,
		log:    log,
		events: events,
		ids:    ids,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// AddPlayer registers a player and returns it. Players start with the
// stock resource pool.
func (g *Game) AddPlayer(name string, human bool) *Player {
	p := &Player{
		ID:      g.ids.Next(),
		Name:    name,
		IsHuman: human,
		Credits: 2000,
		Metal:   1000,
		Crystal: 1000,
	}
	g.Players = append(g.Players, p)
	return p
}

// CurrentPlayer returns the player whose turn it is, or nil with no
// players.
func (g *Game) CurrentPlayer() *Player {
	if len(g.Players) == 0 {
		return nil
	}
	return g.Players[g.Current]
}

// TurnProcessor resolves end-of-turn simulation for a game.
type TurnProcessor struct {
	game *Game
}

func NewTurnProcessor(g *Game) *TurnProcessor {
	return &TurnProcessor{game: g}
}

// EndTurn processes the acting player's turn and rotates to the next
// player. AI players have no decision logic yet, so their turns are
// processed and passed automatically until a human player comes up again
// (or a full rotation completes).
func (tp *TurnProcessor) EndTurn() {
	g := tp.game
	if len(g.Players) == 0 {
		return
	}

	for range g.Players {
		current := g.CurrentPlayer()
		g.log.Info().Str("player", current.Name).Int("turn", g.Turn).Msg("ending turn")
		tp.ProcessTurn()

		g.Current = (g.Current + 1) % len(g.Players)
		if g.Current == 0 {
			g.Turn++
		}

		next := g.CurrentPlayer()
		if next.IsHuman {
			return
		}
		g.log.Info().Str("player", next.Name).Msg("auto-passing AI turn")
	}
}

// ProcessTurn resolves the acting player's turn: sublight movement and
// hyperspace jumps, population growth, tax income, then per-unit
// component and order updates.
func (tp *TurnProcessor) ProcessTurn() {
	g := tp.game
	current := g.CurrentPlayer()
	if current == nil || len(g.Galaxy.Systems) == 0 {
		g.log.Warn().Msg("process turn: no players or empty galaxy")
		return
	}
	g.log.Debug().Str("player", current.Name).Msg("processing turn")

	tp.resolveMovement(current)
	tp.growPopulation()
	tp.collectTaxes(current)
	tp.updateUnits(current)
}

type pendingJump struct {
	unit *Unit
	// Exactly one of the two is meaningful, mirroring the armed target.
	systemJump string
	hexJump    *HexJumpTarget
}

// resolveMovement applies sublight movement immediately and gathers armed
// jumps, then executes them. Jumps are collected first so a jump arrival
// is not processed again in the destination system's pass.
func (tp *TurnProcessor) resolveMovement(current *Player) {
	g := tp.game
	var jumps []pendingJump

	for _, system := range g.Galaxy.Systems {
		for _, unit := range system.AllUnits() {
			if unit.Owner != current {
				continue
			}

			switch {
			case unit.Hyperdrive != nil && unit.Hyperdrive.WormholeJumpTarget != nil:
				wh := unit.Hyperdrive.WormholeJumpTarget
				_, exitKnown := g.Galaxy.Systems[wh.ExitSystemName]
				if wh.ExitSystemName != "" && wh.ExitWormholeID >= 0 && exitKnown {
					jumps = append(jumps, pendingJump{unit: unit, systemJump: wh.ExitSystemName})
				} else {
					g.log.Error().
						Str("unit", unit.Name).
						Str("exit_system", wh.ExitSystemName).
						Msg("wormhole jump not queued: incomplete exit data")
				}

			case unit.Hyperdrive != nil && unit.Hyperdrive.HexJumpTarget != nil:
				target := unit.Hyperdrive.HexJumpTarget
				if target.Hex != unit.InHex {
					if _, ok := system.Hexes[target.Hex]; ok {
						jumps = append(jumps, pendingJump{unit: unit, hexJump: target})
					}
				}

			case unit.Engines != nil && unit.Engines.MoveTarget != nil:
				tp.applySublightMove(system, unit)
			}
		}
	}

	for _, jump := range jumps {
		if jump.systemJump != "" {
			tp.executeSystemJump(jump.unit, jump.systemJump)
		} else {
			tp.executeHexJump(jump.unit, jump.hexJump)
		}
	}
}

// applySublightMove steps a unit towards its engine target, clamped by
// engine speed, and snaps onto the target within the arrival epsilon. An
// active inhibition field travels with the unit.
func (tp *TurnProcessor) applySublightMove(system *StarSystem, unit *Unit) {
	target := *unit.Engines.MoveTarget
	unit.Pos = StepTowards(unit.Pos, target, unit.Engines.Speed)

	if unit.Inhibitor != nil && unit.Inhibitor.Active {
		if hex, ok := system.Hexes[unit.InHex]; ok {
			hex.DynamicZones[unit.ID] = Circle{Center: unit.Pos, Radius: unit.Inhibitor.Radius}
		}
	}

	if Distance(unit.Pos, target) < ArrivalEpsilon {
		unit.Pos = target
		unit.Engines.MoveTarget = nil
		tp.game.log.Debug().
			Str("unit", unit.Name).
			Float64("x", target.X).
			Float64("y", target.Y).
			Msg("sublight arrival")
	}
}

// jumpPrecheck handles the shared status gate for both jump kinds: defer
// while CHARGING, recover a stuck JUMPING status, refuse in ERROR. Reports
// whether the jump may proceed; on true the drive has been moved to
// JUMPING.
func (tp *TurnProcessor) jumpPrecheck(unit *Unit, kind string) bool {
	hd := unit.Hyperdrive
	g := tp.game

	switch hd.Status {
	case JumpCharging:
		g.log.Debug().
			Str("unit", unit.Name).
			Str("kind", kind).
			Int("turns_left", hd.RechargeRemaining).
			Msg("jump deferred: hyperdrive charging")
		g.events.GameEvent("jump.deferred", map[string]any{
			"unit": unit.Name, "kind": kind, "turns_left": hd.RechargeRemaining,
		})
		return false
	case JumpJumping:
		// A leftover JUMPING status means a previous execution aborted
		// mid-flight; recover rather than wedging the unit.
		g.log.Warn().Str("unit", unit.Name).Msg("stale JUMPING status, resetting to ready")
		hd.Status = JumpReady
	case JumpError:
		g.log.Error().Str("unit", unit.Name).Str("kind", kind).Msg("jump blocked: hyperdrive in error state")
		return false
	}
	if hd.Status != JumpReady {
		return false
	}
	hd.Status = JumpJumping
	return true
}

func (tp *TurnProcessor) executeSystemJump(unit *Unit, targetSystem string) {
	g := tp.game
	hd := unit.Hyperdrive
	if !tp.jumpPrecheck(unit, "system") {
		return
	}

	entry := hd.WormholeJumpTarget
	if entry == nil {
		g.log.Error().Str("unit", unit.Name).Msg("system jump aborted: target cleared before execution")
		hd.Status = JumpError
		return
	}
	if _, ok := g.Galaxy.Systems[targetSystem]; !ok {
		g.log.Error().Str("unit", unit.Name).Str("system", targetSystem).Msg("system jump aborted: unknown destination system")
		hd.Status = JumpError
		hd.WormholeJumpTarget = nil
		return
	}
	exit, ok := g.Galaxy.Wormholes[entry.ExitWormholeID]
	if !ok {
		g.log.Error().
			Str("unit", unit.Name).
			Int("exit_id", entry.ExitWormholeID).
			Msg("system jump aborted: exit wormhole not found")
		hd.Status = JumpError
		hd.WormholeJumpTarget = nil
		return
	}
	if exit.InSystem != targetSystem {
		g.log.Error().
			Str("unit", unit.Name).
			Str("exit_system", exit.InSystem).
			Str("target_system", targetSystem).
			Msg("system jump aborted: exit wormhole leads elsewhere")
		hd.Status = JumpError
		hd.WormholeJumpTarget = nil
		return
	}

	origin := unit.InSystem
	unit.Pos = exit.Pos
	if err := g.Galaxy.MoveUnitBetweenSystems(unit, origin, targetSystem, exit.InHex); err != nil {
		g.log.Error().Err(err).Str("unit", unit.Name).Msg("system jump failed")
		hd.Status = JumpError
		hd.WormholeJumpTarget = nil
		return
	}

	g.log.Info().
		Str("unit", unit.Name).
		Str("from", origin).
		Str("to", targetSystem).
		Str("hex", exit.InHex.String()).
		Msg("wormhole jump completed")
	g.events.GameEvent("jump.system", map[string]any{
		"unit": unit.Name, "from": origin, "to": targetSystem,
	})
	hd.StartRecharge()
}

func (tp *TurnProcessor) executeHexJump(unit *Unit, target *HexJumpTarget) {
	g := tp.game
	hd := unit.Hyperdrive
	if !tp.jumpPrecheck(unit, "hex") {
		return
	}

	if hd.HexJumpTarget == nil {
		g.log.Error().Str("unit", unit.Name).Msg("hex jump aborted: target cleared before execution")
		hd.Status = JumpError
		return
	}
	system, ok := g.Galaxy.Systems[unit.InSystem]
	if !ok {
		g.log.Error().Str("unit", unit.Name).Str("system", unit.InSystem).Msg("hex jump aborted: unit system unknown")
		hd.Status = JumpError
		hd.HexJumpTarget = nil
		return
	}
	if _, ok := system.Hexes[target.Hex]; !ok {
		g.log.Error().
			Str("unit", unit.Name).
			Str("hex", target.Hex.String()).
			Msg("hex jump aborted: destination hex not in system")
		hd.Status = JumpError
		hd.HexJumpTarget = nil
		return
	}
	if HexDistance(unit.InHex, target.Hex) > hd.JumpRange {
		g.log.Error().
			Str("unit", unit.Name).
			Str("hex", target.Hex.String()).
			Int("jump_range", hd.JumpRange).
			Msg("hex jump aborted: exceeds jump range")
		hd.Status = JumpError
		hd.HexJumpTarget = nil
		return
	}

	if origin, ok := system.Hexes[unit.InHex]; ok && origin.PositionInhibited(unit.Pos) {
		g.log.Error().Str("unit", unit.Name).Msg("hex jump aborted: origin position inhibited")
		hd.Status = JumpError
		hd.HexJumpTarget = nil
		return
	}
	if dest, ok := system.Hexes[target.Hex]; ok && dest.PositionInhibited(target.Pos) {
		g.log.Error().Str("unit", unit.Name).Msg("hex jump aborted: destination position inhibited")
		hd.Status = JumpError
		hd.HexJumpTarget = nil
		return
	}

	unit.Pos = target.Pos
	if err := system.MoveUnitBetweenHexes(unit, target.Hex); err != nil {
		g.log.Error().Err(err).Str("unit", unit.Name).Msg("hex jump failed")
		hd.Status = JumpError
		hd.HexJumpTarget = nil
		return
	}

	g.log.Info().
		Str("unit", unit.Name).
		Str("system", system.Name).
		Str("hex", target.Hex.String()).
		Msg("hex jump completed")
	g.events.GameEvent("jump.hex", map[string]any{
		"unit": unit.Name, "system": system.Name, "hex": target.Hex.String(),
	})
	hd.StartRecharge()
}

// growPopulation advances every owned colonisable body, regardless of
// whose turn it is: growth is continuous, income is not.
func (tp *TurnProcessor) growPopulation() {
	for _, system := range tp.game.Galaxy.Systems {
		for _, body := range system.AllBodies() {
			if body.Kind.Colonisable() {
				body.GrowPopulation()
			}
		}
	}
}

// collectTaxes credits the acting player with a share of the population on
// each body they own.
func (tp *TurnProcessor) collectTaxes(current *Player) {
	g := tp.game
	total := 0.0
	for _, system := range g.Galaxy.Systems {
		for _, body := range system.AllBodies() {
			if body.Kind.Colonisable() && body.Owner == current {
				income := body.Population * g.Rules.TaxRate
				current.Credits += income
				total += income
			}
		}
	}
	if total > 0 {
		g.log.Debug().
			Str("player", current.Name).
			Float64("credits", total).
			Msg("tax income collected")
	}
}

// updateUnits runs per-unit component and order processing for the acting
// player. The unit list is snapshotted first: updates can destroy units or
// spawn new ones.
func (tp *TurnProcessor) updateUnits(current *Player) {
	var units []*Unit
	for _, system := range tp.game.Galaxy.Systems {
		units = append(units, system.AllUnits()...)
	}
	for _, unit := range units {
		if unit.Owner == current {
			unit.Update()
		}
	}
}
