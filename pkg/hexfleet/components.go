package hexfleet

// HyperdriveType distinguishes inter-sector drives from wormhole-capable
// ones.
type HyperdriveType int

const (
	// HyperdriveBasic jumps between hexes within one system.
	HyperdriveBasic HyperdriveType = iota
	// HyperdriveAdvanced additionally traverses wormholes between systems.
	HyperdriveAdvanced
)

func (t HyperdriveType) String() string {
	switch t {
	case HyperdriveBasic:
		return "basic"
	case HyperdriveAdvanced:
		return "advanced"
	default:
		return "unknown"
	}
}

// JumpStatus is the hyperdrive state machine.
type JumpStatus int

const (
	JumpReady JumpStatus = iota
	JumpCharging
	JumpJumping
	JumpError
)

func (s JumpStatus) String() string {
	switch s {
	case JumpReady:
		return "ready"
	case JumpCharging:
		return "charging"
	case JumpJumping:
		return "jumping"
	case JumpError:
		return "error"
	default:
		return "unknown"
	}
}

// Engines provide sublight movement within a single sector. The move
// target, when set, is consumed by the turn processor's movement phase.
type Engines struct {
	Speed      float64
	MoveTarget *Position
	HullCost   int

	unit *Unit
}

// SetMoveTarget points the engines at a sector position.
func (e *Engines) SetMoveTarget(p Position) {
	target := p
	e.MoveTarget = &target
}

// HexJumpTarget is a pending intra-system jump: the destination hex and
// the landing position inside it.
type HexJumpTarget struct {
	Hex HexCoord
	Pos Position
}

// Hyperdrive performs faster-than-light jumps. At most one of the two
// target kinds is set at a time; the turn processor consumes the target
// during jump execution.
type Hyperdrive struct {
	Type               HyperdriveType
	JumpRange          int
	HexJumpTarget      *HexJumpTarget
	WormholeJumpTarget *CelestialBody
	Status             JumpStatus
	RechargeRemaining  int
	RechargeTurns      int
	HullCost           int

	unit *Unit
}

// SetHexJumpTarget arms an intra-system jump. Any wormhole target is
// cleared: the drive holds one destination at a time.
func (h *Hyperdrive) SetHexJumpTarget(hex HexCoord, pos Position) {
	h.HexJumpTarget = &HexJumpTarget{Hex: hex, Pos: pos}
	h.WormholeJumpTarget = nil
}

// SetWormholeJumpTarget arms a jump through the given entry wormhole.
func (h *Hyperdrive) SetWormholeJumpTarget(wh *CelestialBody) {
	h.WormholeJumpTarget = wh
	h.HexJumpTarget = nil
}

// ClearTargets disarms the drive.
func (h *Hyperdrive) ClearTargets() {
	h.HexJumpTarget = nil
	h.WormholeJumpTarget = nil
}

// StartRecharge puts the drive into CHARGING for its full recharge
// duration and clears any armed target.
func (h *Hyperdrive) StartRecharge() {
	h.Status = JumpCharging
	h.RechargeRemaining = h.RechargeTurns
	h.ClearTargets()
	h.unit.game.log.Debug().
		Str("unit", h.unit.Name).
		Int("turns", h.RechargeTurns).
		Msg("hyperdrive recharging")
}

// TickRecharge advances the recharge countdown by one turn, flipping the
// drive back to READY when it reaches zero.
func (h *Hyperdrive) TickRecharge() {
	if h.Status != JumpCharging || h.RechargeRemaining <= 0 {
		return
	}
	h.RechargeRemaining--
	if h.RechargeRemaining <= 0 {
		h.Status = JumpReady
		h.RechargeRemaining = 0
		h.unit.game.log.Debug().Str("unit", h.unit.Name).Msg("hyperdrive ready")
	}
}

// InhibitorEmitter projects a jump-inhibition field around the unit while
// active. The field registers as a dynamic zone on the unit's hex.
type InhibitorEmitter struct {
	Radius   float64
	Active   bool
	HullCost int

	unit *Unit
}

// Toggle flips the field, validating activation: the proposed field must
// sit fully inside the sector boundary and must not overlap any existing
// zone. Deactivation always succeeds.
func (e *InhibitorEmitter) Toggle(galaxy *Galaxy) error {
	u := e.unit
	sys, ok := galaxy.Systems[u.InSystem]
	if !ok {
		return validationErr("toggle inhibitor", "unit %q is not in a known system", u.Name)
	}
	hex, ok := sys.Hexes[u.InHex]
	if !ok {
		return validationErr("toggle inhibitor", "unit %q is not in a known hex", u.Name)
	}

	if e.Active {
		delete(hex.DynamicZones, u.ID)
		e.Active = false
		u.game.log.Debug().Str("unit", u.Name).Msg("inhibition field deactivated")
		return nil
	}

	proposed := Circle{Center: u.Pos, Radius: e.Radius}
	if !CircleContained(proposed, hex.Boundary) {
		return validationErr("toggle inhibitor", "field would cross the sector boundary")
	}
	for _, zone := range hex.AllInhibitionZones() {
		if CirclesIntersect(proposed, zone) {
			return validationErr("toggle inhibitor", "field would overlap an existing zone")
		}
	}

	e.Active = true
	hex.DynamicZones[u.ID] = proposed
	u.game.log.Debug().Str("unit", u.Name).Float64("radius", e.Radius).Msg("inhibition field activated")
	return nil
}

// TurretType identifies a turret's weapon class.
type TurretType int

const (
	TurretMassDriver TurretType = iota
	TurretBeam
	TurretMissile
)

func (t TurretType) String() string {
	switch t {
	case TurretMassDriver:
		return "mass driver"
	case TurretBeam:
		return "beam"
	case TurretMissile:
		return "missile"
	default:
		return "unknown"
	}
}

// Turret is a single weapon mount. Not a component itself; owned by
// Weapons.
type Turret struct {
	Type         TurretType
	Damage       float64
	Range        float64
	Cooldown     int
	CooldownLeft int
	Target       *Unit

	unit *Unit
}

func (t *Turret) fire() {
	if t.Target != nil {
		t.unit.game.log.Debug().
			Str("turret", t.Type.String()).
			Str("unit", t.unit.Name).
			Str("target", t.Target.Name).
			Msg("turret firing")
		t.Target.TakeDamage(int(t.Damage))
	}
	t.CooldownLeft = t.Cooldown
}

func (t *Turret) tick() {
	if t.CooldownLeft > 0 {
		t.CooldownLeft--
	}
}

// Weapons manages a unit's turrets.
type Weapons struct {
	Turrets  []*Turret
	HullCost int

	unit *Unit
}

// SetTarget points every turret at the given unit.
func (w *Weapons) SetTarget(target *Unit) {
	for _, t := range w.Turrets {
		t.Target = target
	}
}

// ClearTarget stands every turret down.
func (w *Weapons) ClearTarget() {
	for _, t := range w.Turrets {
		t.Target = nil
	}
}

// MinRange returns the shortest turret range, or zero with no turrets.
func (w *Weapons) MinRange() float64 {
	if len(w.Turrets) == 0 {
		return 0
	}
	minR := w.Turrets[0].Range
	for _, t := range w.Turrets[1:] {
		if t.Range < minR {
			minR = t.Range
		}
	}
	return minR
}

// Update ticks cooldowns, drops dead targets, and fires any turret whose
// target shares the unit's hex and is within range. Range is strict:
// a target at exactly turret range is out of reach.
func (w *Weapons) Update(galaxy *Galaxy) {
	for _, t := range w.Turrets {
		t.tick()
	}
	for _, t := range w.Turrets {
		if t.Target == nil {
			continue
		}
		if t.Target.HP <= 0 {
			t.Target = nil
			continue
		}
		sameSystem := w.unit.InSystem == t.Target.InSystem
		sameHex := w.unit.InHex == t.Target.InHex
		inRange := Distance(w.unit.Pos, t.Target.Pos) < t.Range
		if sameSystem && sameHex && inRange && t.CooldownLeft <= 0 {
			t.fire()
		}
	}
}

// ColonyComponent carries population between colonisable bodies.
type ColonyComponent struct {
	Cargo    int
	MaxCargo int
	HullCost int

	unit *Unit
}

// LoadPopulation moves population from an owned body into cargo.
func (c *ColonyComponent) LoadPopulation(body *CelestialBody, amount int) error {
	if !body.Kind.Colonisable() {
		return validationErr("load population", "%s is not colonisable", body.Name)
	}
	if body.Owner != c.unit.Owner {
		return validationErr("load population", "%s is not owned by %s", body.Name, c.unit.Owner.Name)
	}
	if body.Population < float64(amount) {
		return validationErr("load population", "%s has fewer than %d population", body.Name, amount)
	}
	if c.Cargo+amount > c.MaxCargo {
		return validationErr("load population", "not enough cargo space for %d population", amount)
	}
	body.Population -= float64(amount)
	c.Cargo += amount
	return nil
}

// UnloadPopulation moves population from cargo onto a body. Unloading onto
// an unowned body claims it for the unit's owner.
func (c *ColonyComponent) UnloadPopulation(body *CelestialBody, amount int) error {
	if !body.Kind.Colonisable() {
		return validationErr("unload population", "%s is not colonisable", body.Name)
	}
	if c.Cargo < amount {
		return validationErr("unload population", "cargo holds fewer than %d population", amount)
	}
	if body.Owner == nil {
		body.Owner = c.unit.Owner
		c.unit.game.log.Info().
			Str("body", body.Name).
			Str("player", c.unit.Owner.Name).
			Msg("body colonized")
		c.unit.game.events.GameEvent("body.colonized", map[string]any{
			"body":   body.Name,
			"player": c.unit.Owner.Name,
		})
	}
	if body.Owner != c.unit.Owner {
		return validationErr("unload population", "%s is owned by another player", body.Name)
	}
	body.Population += float64(amount)
	c.Cargo -= amount
	return nil
}

// BuildableUnit names a template a constructor can produce, with its build
// time and cost.
type BuildableUnit struct {
	Template    string
	BuildTurns  int
	CostCredits float64
}

type constructionTarget struct {
	template string
	pos      Position
}

// Constructor builds new units from templates over multiple turns.
type Constructor struct {
	Buildable  []BuildableUnit
	BuildRange float64
	Progress   int
	BuildTurns int
	HullCost   int

	target *constructionTarget
	unit   *Unit
}

// CanBuild returns the buildable entry for the named template, or nil.
func (c *Constructor) CanBuild(template string) *BuildableUnit {
	for i := range c.Buildable {
		if c.Buildable[i].Template == template {
			return &c.Buildable[i]
		}
	}
	return nil
}

// Building reports whether a construction project is in progress and, if
// so, which template it produces.
func (c *Constructor) Building() (string, bool) {
	if c.target == nil {
		return "", false
	}
	return c.target.template, true
}

// StartConstruction begins building the named template at the given sector
// position, deducting the credit cost from the owner.
func (c *Constructor) StartConstruction(template string, pos Position) error {
	buildable := c.CanBuild(template)
	if buildable == nil {
		return validationErr("start construction", "%s cannot build %s", c.unit.Name, template)
	}
	owner := c.unit.Owner
	if owner.Credits < buildable.CostCredits {
		return validationErr("start construction", "not enough credits to build %s", template)
	}
	owner.Credits -= buildable.CostCredits

	c.target = &constructionTarget{template: template, pos: pos}
	c.BuildTurns = buildable.BuildTurns
	c.Progress = 0
	c.unit.game.log.Info().
		Str("unit", c.unit.Name).
		Str("template", template).
		Float64("cost", buildable.CostCredits).
		Msg("construction started")
	return nil
}

// CancelConstruction abandons the current project. Spent credits are not
// refunded here; refunds are the cancelling order's concern.
func (c *Constructor) CancelConstruction() {
	if c.target == nil {
		return
	}
	c.unit.game.log.Info().
		Str("unit", c.unit.Name).
		Str("template", c.target.template).
		Msg("construction cancelled")
	c.target = nil
	c.Progress = 0
	c.BuildTurns = 0
}

// Update advances construction by one turn and finishes the project when
// the build time elapses.
func (c *Constructor) Update() {
	if c.target == nil {
		return
	}
	c.Progress++
	if c.Progress >= c.BuildTurns {
		c.finishConstruction()
	}
}

func (c *Constructor) finishConstruction() {
	target := c.target
	c.target = nil
	c.Progress = 0
	c.BuildTurns = 0

	u := c.unit
	created, err := u.game.CreateUnitFromTemplate(target.template, u.Owner, u.InSystem, u.InHex, target.pos)
	if err != nil {
		u.game.log.Error().Err(err).
			Str("unit", u.Name).
			Str("template", target.template).
			Msg("construction finished but unit creation failed")
		return
	}
	u.game.log.Info().
		Str("unit", u.Name).
		Str("built", created.Name).
		Int("built_id", created.ID).
		Msg("construction finished")
	u.game.events.GameEvent("construction.finished", map[string]any{
		"builder": u.Name,
		"unit":    created.Name,
		"id":      created.ID,
	})
}
