package hexfleet

import "fmt"

// HullSize classes a unit's frame. Capacity and hit points derive from it.
type HullSize int

const (
	HullTiny HullSize = iota
	HullSmall
	HullMedium
	HullLarge
	HullHuge
)

func (h HullSize) String() string {
	switch h {
	case HullTiny:
		return "tiny"
	case HullSmall:
		return "small"
	case HullMedium:
		return "medium"
	case HullLarge:
		return "large"
	case HullHuge:
		return "huge"
	default:
		return "unknown"
	}
}

// Capacity returns the component hull points a frame of this size can hold.
func (h HullSize) Capacity() int {
	switch h {
	case HullTiny:
		return 10
	case HullSmall:
		return 25
	case HullMedium:
		return 50
	case HullLarge:
		return 100
	case HullHuge:
		return 200
	default:
		return 0
	}
}

// HitPoints returns the maximum hit points for a frame of this size.
func (h HullSize) HitPoints() int {
	switch h {
	case HullTiny:
		return 20
	case HullSmall:
		return 50
	case HullMedium:
		return 100
	case HullLarge:
		return 200
	case HullHuge:
		return 400
	default:
		return 0
	}
}

// Player is one participant in a game.
type Player struct {
	ID      int
	Name    string
	IsHuman bool
	Credits float64
	Metal   float64
	Crystal float64
}

// UnitSpec describes a unit to build. Nil component specs mean the unit
// does not carry that component.
type UnitSpec struct {
	Name        string
	Hull        HullSize
	Engines     *EnginesSpec
	Hyperdrive  *HyperdriveSpec
	Inhibitor   *InhibitorSpec
	Weapons     *WeaponsSpec
	Colony      *ColonySpec
	Constructor *ConstructorSpec
}

type EnginesSpec struct {
	Speed    float64
	HullCost int
}

type HyperdriveSpec struct {
	Type     HyperdriveType
	HullCost int
	// Zero values fall back to the game rules.
	JumpRange     int
	RechargeTurns int
}

type InhibitorSpec struct {
	Radius   float64
	HullCost int
}

type WeaponsSpec struct {
	HullCost int
	Turrets  []TurretSpec
}

type TurretSpec struct {
	Type     TurretType
	Damage   float64
	Range    float64
	Cooldown int
}

type ColonySpec struct {
	MaxCargo int
	HullCost int
}

type ConstructorSpec struct {
	HullCost   int
	BuildRange float64
	Buildable  []BuildableUnit
}

// Unit is a mobile game object composed of optional components. Every unit
// carries a Commander; the rest depend on the spec it was built from.
type Unit struct {
	ID       int
	Name     string
	Owner    *Player
	InSystem string
	InHex    HexCoord
	Pos      Position

	Hull         HullSize
	HullCapacity int
	HullUsage    int
	MaxHP        int
	HP           int

	Engines     *Engines
	Hyperdrive  *Hyperdrive
	Inhibitor   *InhibitorEmitter
	Weapons     *Weapons
	Colony      *ColonyComponent
	Constructor *Constructor
	Commander   *Commander

	game *Game
}

// NewUnit builds a unit from a spec. The unit is not placed into a system;
// callers add it via StarSystem.AddUnit or use Game.SpawnUnit.
func (g *Game) NewUnit(owner *Player, spec UnitSpec, system string, hex HexCoord, pos Position) *Unit {
	u := &Unit{
		ID:           g.ids.Next(),
		Name:         spec.Name,
		Owner:        owner,
		InSystem:     system,
		InHex:        hex,
		Pos:          pos,
		Hull:         spec.Hull,
		HullCapacity: spec.Hull.Capacity(),
		MaxHP:        spec.Hull.HitPoints(),
		game:         g,
	}
	u.HP = u.MaxHP

	if spec.Engines != nil {
		u.Engines = &Engines{unit: u, Speed: spec.Engines.Speed, HullCost: spec.Engines.HullCost}
	}
	if spec.Hyperdrive != nil {
		hd := &Hyperdrive{
			unit:          u,
			Type:          spec.Hyperdrive.Type,
			JumpRange:     spec.Hyperdrive.JumpRange,
			RechargeTurns: spec.Hyperdrive.RechargeTurns,
			Status:        JumpReady,
			HullCost:      spec.Hyperdrive.HullCost,
		}
		if hd.JumpRange <= 0 {
			hd.JumpRange = g.Rules.DefaultJumpRange
		}
		if hd.RechargeTurns <= 0 {
			hd.RechargeTurns = g.Rules.RechargeTurns
		}
		u.Hyperdrive = hd
	}
	if spec.Inhibitor != nil {
		u.Inhibitor = &InhibitorEmitter{unit: u, Radius: spec.Inhibitor.Radius, HullCost: spec.Inhibitor.HullCost}
	}
	if spec.Weapons != nil {
		w := &Weapons{unit: u, HullCost: spec.Weapons.HullCost}
		for _, ts := range spec.Weapons.Turrets {
			w.Turrets = append(w.Turrets, &Turret{
				Type:     ts.Type,
				Damage:   ts.Damage,
				Range:    ts.Range,
				Cooldown: ts.Cooldown,
				unit:     u,
			})
		}
		u.Weapons = w
	}
	if spec.Colony != nil {
		maxCargo := spec.Colony.MaxCargo
		if maxCargo <= 0 {
			maxCargo = 100
		}
		u.Colony = &ColonyComponent{unit: u, MaxCargo: maxCargo, HullCost: spec.Colony.HullCost}
	}
	if spec.Constructor != nil {
		buildRange := spec.Constructor.BuildRange
		if buildRange <= 0 {
			buildRange = 500
		}
		u.Constructor = &Constructor{
			unit:       u,
			BuildRange: buildRange,
			Buildable:  spec.Constructor.Buildable,
			HullCost:   spec.Constructor.HullCost,
		}
	}
	u.Commander = &Commander{unit: u}

	u.refreshHullUsage()
	if u.HullUsage > u.HullCapacity {
		g.log.Warn().
			Str("unit", u.Name).
			Int("usage", u.HullUsage).
			Int("capacity", u.HullCapacity).
			Msg("unit created exceeding hull capacity")
	}
	return u
}

// SpawnUnit builds a unit from a spec and places it into the galaxy.
func (g *Game) SpawnUnit(owner *Player, spec UnitSpec, system string, hex HexCoord, pos Position) (*Unit, error) {
	sys, ok := g.Galaxy.Systems[system]
	if !ok {
		return nil, fmt.Errorf("spawn unit %q: unknown system %s", spec.Name, system)
	}
	u := g.NewUnit(owner, spec, system, hex, pos)
	if err := sys.AddUnit(u); err != nil {
		return nil, err
	}
	return u, nil
}

func (u *Unit) refreshHullUsage() {
	usage := 0
	if u.Engines != nil {
		usage += u.Engines.HullCost
	}
	if u.Hyperdrive != nil {
		usage += u.Hyperdrive.HullCost
	}
	if u.Inhibitor != nil {
		usage += u.Inhibitor.HullCost
	}
	if u.Weapons != nil {
		usage += u.Weapons.HullCost
	}
	if u.Colony != nil {
		usage += u.Colony.HullCost
	}
	if u.Constructor != nil {
		usage += u.Constructor.HullCost
	}
	u.HullUsage = usage
}

// TakeDamage reduces hit points, clamping at zero. A unit at zero hit
// points is destroyed and removed from the galaxy.
func (u *Unit) TakeDamage(amount int) {
	u.HP -= amount
	if u.HP < 0 {
		u.HP = 0
	}
	u.game.log.Debug().
		Str("unit", u.Name).
		Int("damage", amount).
		Int("hp", u.HP).
		Int("max_hp", u.MaxHP).
		Msg("unit took damage")

	if u.HP == 0 {
		u.destroy()
	}
}

func (u *Unit) destroy() {
	u.game.log.Info().Str("unit", u.Name).Int("id", u.ID).Msg("unit destroyed")
	u.game.events.GameEvent("unit.destroyed", map[string]any{
		"unit":   u.Name,
		"id":     u.ID,
		"system": u.InSystem,
	})
	// An active emitter leaves its zone behind otherwise.
	if u.Inhibitor != nil && u.Inhibitor.Active {
		if hex := u.currentHex(); hex != nil {
			delete(hex.DynamicZones, u.ID)
		}
	}
	u.game.Galaxy.RemoveUnit(u)
}

func (u *Unit) currentHex() *Hex {
	sys, ok := u.game.Galaxy.Systems[u.InSystem]
	if !ok {
		return nil
	}
	return sys.Hexes[u.InHex]
}

// Update advances the unit's per-turn component state: hyperdrive
// recharge, weapons, construction progress, then order processing.
func (u *Unit) Update() {
	if u.Hyperdrive != nil {
		u.Hyperdrive.TickRecharge()
	}
	if u.Weapons != nil {
		u.Weapons.Update(u.game.Galaxy)
	}
	if u.Constructor != nil {
		u.Constructor.Update()
	}
	u.Commander.Update()
}
