package hexfleet

import "fmt"

// DefaultSectorRadius is the radius of the circular sector map every hex
// contains, in logical coordinates.
const DefaultSectorRadius = 1000.0

// Hex is a single cell in a star system's grid. Each hex carries its own
// sector map: a boundary circle plus the inhibition zones active inside it.
type Hex struct {
	Q        int
	R        int
	InSystem string

	Bodies []*CelestialBody
	Units  []*Unit

	Boundary Circle
	// Static zones come from celestial bodies and change only when the
	// body list changes. Dynamic zones come from inhibitor emitters and
	// are keyed by the emitting unit's id.
	StaticZones  []Circle
	DynamicZones map[int]Circle
}

func newHex(q, r int, system string, sectorRadius float64) *Hex {
	return &Hex{
		Q:            q,
		R:            r,
		InSystem:     system,
		Boundary:     Circle{Center: Position{}, Radius: sectorRadius},
		DynamicZones: make(map[int]Circle),
	}
}

func (h *Hex) Coord() HexCoord {
	return HexCoord{Q: h.Q, R: h.R}
}

// AllInhibitionZones returns the static and dynamic zones combined.
func (h *Hex) AllInhibitionZones() []Circle {
	zones := make([]Circle, 0, len(h.StaticZones)+len(h.DynamicZones))
	zones = append(zones, h.StaticZones...)
	for _, z := range h.DynamicZones {
		zones = append(zones, z)
	}
	return zones
}

// PositionInhibited reports whether p lies inside any zone in this hex.
func (h *Hex) PositionInhibited(p Position) bool {
	for _, zone := range h.AllInhibitionZones() {
		if PointInCircle(p, zone) {
			return true
		}
	}
	return false
}

// RefreshStaticZones recomputes the static zone list from the bodies
// currently in the hex. Call after adding or removing a body.
func (h *Hex) RefreshStaticZones() {
	h.StaticZones = h.StaticZones[:0]
	for _, body := range h.Bodies {
		if zone, ok := body.InhibitionZone(); ok {
			h.StaticZones = append(h.StaticZones, zone)
		}
	}
}

func (h *Hex) addUnit(u *Unit) {
	h.Units = append(h.Units, u)
}

func (h *Hex) removeUnit(u *Unit) bool {
	for i, other := range h.Units {
		if other == u {
			h.Units = append(h.Units[:i], h.Units[i+1:]...)
			return true
		}
	}
	return false
}

// IsEmpty reports whether the hex holds no bodies and no units.
func (h *Hex) IsEmpty() bool {
	return len(h.Bodies) == 0 && len(h.Units) == 0
}

// StarSystem is one star system: a hexagonal grid of the given radius
// around (0,0) plus the bodies and units inside it.
type StarSystem struct {
	Name       string
	Radius     int
	Hexes      map[HexCoord]*Hex
	bodiesByID map[int]*CelestialBody
}

// NewStarSystem builds an empty system grid. Bodies are placed by the
// caller; there is no random population here.
func NewStarSystem(name string, radius int, sectorRadius float64) *StarSystem {
	if sectorRadius <= 0 {
		sectorRadius = DefaultSectorRadius
	}
	s := &StarSystem{
		Name:       name,
		Radius:     radius,
		Hexes:      make(map[HexCoord]*Hex),
		bodiesByID: make(map[int]*CelestialBody),
	}
	for q := -radius; q <= radius; q++ {
		r1 := max(-radius, -q-radius)
		r2 := min(radius, -q+radius)
		for r := r1; r <= r2; r++ {
			s.Hexes[HexCoord{q, r}] = newHex(q, r, name, sectorRadius)
		}
	}
	return s
}

// AddBody places a body into its hex and refreshes that hex's static zones.
func (s *StarSystem) AddBody(b *CelestialBody) error {
	hex, ok := s.Hexes[b.InHex]
	if !ok {
		return fmt.Errorf("add body %q: hex %s not in system %s", b.Name, b.InHex, s.Name)
	}
	b.InSystem = s.Name
	hex.Bodies = append(hex.Bodies, b)
	s.bodiesByID[b.ID] = b
	hex.RefreshStaticZones()
	return nil
}

// RemoveBody removes a body from its hex and refreshes the hex's static
// zones.
func (s *StarSystem) RemoveBody(b *CelestialBody) error {
	hex, ok := s.Hexes[b.InHex]
	if !ok {
		return fmt.Errorf("remove body %q: hex %s not in system %s", b.Name, b.InHex, s.Name)
	}
	for i, other := range hex.Bodies {
		if other == b {
			hex.Bodies = append(hex.Bodies[:i], hex.Bodies[i+1:]...)
			delete(s.bodiesByID, b.ID)
			hex.RefreshStaticZones()
			return nil
		}
	}
	return fmt.Errorf("remove body %q: not present in hex %s", b.Name, b.InHex)
}

// AddUnit places a unit into the hex recorded on the unit.
func (s *StarSystem) AddUnit(u *Unit) error {
	hex, ok := s.Hexes[u.InHex]
	if !ok {
		return fmt.Errorf("add unit %q: hex %s not in system %s", u.Name, u.InHex, s.Name)
	}
	u.InSystem = s.Name
	hex.addUnit(u)
	return nil
}

// RemoveUnit takes a unit out of its hex. Reports whether the unit was
// actually present.
func (s *StarSystem) RemoveUnit(u *Unit) bool {
	hex, ok := s.Hexes[u.InHex]
	if !ok {
		return false
	}
	if !hex.removeUnit(u) {
		return false
	}
	u.InSystem = ""
	return true
}

// UnitsInHex returns the units in the given hex, or nil for an unknown hex.
func (s *StarSystem) UnitsInHex(coord HexCoord) []*Unit {
	hex, ok := s.Hexes[coord]
	if !ok {
		return nil
	}
	return hex.Units
}

// BodiesInHex returns the bodies in the given hex, or nil for an unknown hex.
func (s *StarSystem) BodiesInHex(coord HexCoord) []*CelestialBody {
	hex, ok := s.Hexes[coord]
	if !ok {
		return nil
	}
	return hex.Bodies
}

// AllUnits returns every unit in the system.
func (s *StarSystem) AllUnits() []*Unit {
	var units []*Unit
	for _, hex := range s.Hexes {
		units = append(units, hex.Units...)
	}
	return units
}

// AllBodies returns every celestial body in the system.
func (s *StarSystem) AllBodies() []*CelestialBody {
	bodies := make([]*CelestialBody, 0, len(s.bodiesByID))
	for _, b := range s.bodiesByID {
		bodies = append(bodies, b)
	}
	return bodies
}

// MoveUnitBetweenHexes relocates a unit inside this system. Moving to the
// unit's current hex is rejected.
func (s *StarSystem) MoveUnitBetweenHexes(u *Unit, dest HexCoord) error {
	origin := u.InHex
	if origin == dest {
		return fmt.Errorf("move unit %q: already in hex %s", u.Name, origin)
	}
	if _, ok := s.Hexes[dest]; !ok {
		return fmt.Errorf("move unit %q: hex %s not in system %s", u.Name, dest, s.Name)
	}
	if !s.RemoveUnit(u) {
		return fmt.Errorf("move unit %q: not found in origin hex %s", u.Name, origin)
	}
	u.InHex = dest
	return s.AddUnit(u)
}

// Galaxy holds every star system, the wormholes linking them, and the
// derived system adjacency graph.
type Galaxy struct {
	Systems   map[string]*StarSystem
	Wormholes map[int]*CelestialBody
	Graph     SystemGraph

	ids *IDSource
}

func NewGalaxy(ids *IDSource) *Galaxy {
	return &Galaxy{
		Systems:   make(map[string]*StarSystem),
		Wormholes: make(map[int]*CelestialBody),
		Graph:     make(SystemGraph),
		ids:       ids,
	}
}

// AddSystem registers a system by name.
func (g *Galaxy) AddSystem(s *StarSystem) {
	g.Systems[s.Name] = s
}

// NewBody creates a body with a galaxy-assigned id and places it into its
// system. For wormholes use AddWormholePair instead.
func (g *Galaxy) NewBody(kind BodyKind, name, system string, hex HexCoord) (*CelestialBody, error) {
	sys, ok := g.Systems[system]
	if !ok {
		return nil, fmt.Errorf("new body %q: unknown system %s", name, system)
	}
	b := newBody(g.ids.Next(), kind, name, system, hex)
	if err := sys.AddBody(b); err != nil {
		return nil, err
	}
	return b, nil
}

// AddWormholePair creates two linked wormholes in the given hexes and
// rebuilds nothing: call BuildSystemGraph once all pairs are placed.
func (g *Galaxy) AddWormholePair(sysA, sysB string, hexA, hexB HexCoord) (*CelestialBody, *CelestialBody, error) {
	systemA, ok := g.Systems[sysA]
	if !ok {
		return nil, nil, fmt.Errorf("wormhole pair: unknown system %s", sysA)
	}
	systemB, ok := g.Systems[sysB]
	if !ok {
		return nil, nil, fmt.Errorf("wormhole pair: unknown system %s", sysB)
	}

	whA := newBody(g.ids.Next(), BodyWormhole, "", sysA, hexA)
	whA.Name = fmt.Sprintf("Wormhole %d", whA.ID)
	whA.ExitSystemName = sysB

	whB := newBody(g.ids.Next(), BodyWormhole, "", sysB, hexB)
	whB.Name = fmt.Sprintf("Wormhole %d", whB.ID)
	whB.ExitSystemName = sysA

	whA.ExitWormholeID = whB.ID
	whB.ExitWormholeID = whA.ID

	if err := systemA.AddBody(whA); err != nil {
		return nil, nil, err
	}
	if err := systemB.AddBody(whB); err != nil {
		return nil, nil, err
	}

	g.Wormholes[whA.ID] = whA
	g.Wormholes[whB.ID] = whB
	return whA, whB, nil
}

// BuildSystemGraph derives the adjacency graph from the placed wormholes.
// Wormholes pointing at systems the galaxy does not contain are skipped.
func (g *Galaxy) BuildSystemGraph() {
	graph := make(SystemGraph, len(g.Systems))
	for name := range g.Systems {
		graph[name] = nil
	}
	for _, wh := range g.Wormholes {
		if _, ok := g.Systems[wh.ExitSystemName]; !ok {
			continue
		}
		if !containsString(graph[wh.InSystem], wh.ExitSystemName) {
			graph[wh.InSystem] = append(graph[wh.InSystem], wh.ExitSystemName)
		}
	}
	g.Graph = graph
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// WormholeConnecting returns a wormhole in fromSystem whose exit leads to
// toSystem, or nil when none exists.
func (g *Galaxy) WormholeConnecting(fromSystem, toSystem string) *CelestialBody {
	sys, ok := g.Systems[fromSystem]
	if !ok {
		return nil
	}
	for _, b := range sys.bodiesByID {
		if b.Kind == BodyWormhole && b.ExitSystemName == toSystem {
			return b
		}
	}
	return nil
}

// WormholesIn returns every wormhole located in the named system.
func (g *Galaxy) WormholesIn(system string) []*CelestialBody {
	var out []*CelestialBody
	for _, wh := range g.Wormholes {
		if wh.InSystem == system {
			out = append(out, wh)
		}
	}
	return out
}

// UnitByID finds a unit anywhere in the galaxy.
func (g *Galaxy) UnitByID(id int) *Unit {
	for _, sys := range g.Systems {
		for _, hex := range sys.Hexes {
			for _, u := range hex.Units {
				if u.ID == id {
					return u
				}
			}
		}
	}
	return nil
}

// BodyByID finds a celestial body anywhere in the galaxy.
func (g *Galaxy) BodyByID(id int) *CelestialBody {
	for _, sys := range g.Systems {
		if b, ok := sys.bodiesByID[id]; ok {
			return b
		}
	}
	return nil
}

// RemoveUnit takes a unit out of whatever system it is in.
func (g *Galaxy) RemoveUnit(u *Unit) {
	sys, ok := g.Systems[u.InSystem]
	if !ok {
		return
	}
	sys.RemoveUnit(u)
}

// MoveUnitBetweenSystems transfers a unit from one system to a hex in
// another.
func (g *Galaxy) MoveUnitBetweenSystems(u *Unit, origin, dest string, destHex HexCoord) error {
	originSys, ok := g.Systems[origin]
	if !ok {
		return fmt.Errorf("system transfer: unknown origin system %s", origin)
	}
	destSys, ok := g.Systems[dest]
	if !ok {
		return fmt.Errorf("system transfer: unknown destination system %s", dest)
	}
	if _, ok := destSys.Hexes[destHex]; !ok {
		return fmt.Errorf("system transfer: hex %s not in system %s", destHex, dest)
	}
	if !originSys.RemoveUnit(u) {
		return fmt.Errorf("system transfer: unit %q not found in system %s", u.Name, origin)
	}
	u.InSystem = dest
	u.InHex = destHex
	return destSys.AddUnit(u)
}
