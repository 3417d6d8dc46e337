package hexfleet

import "fmt"

// BodyKind identifies the type of a celestial body.
type BodyKind int

const (
	BodyStar BodyKind = iota
	BodyPlanet
	BodyMoon
	BodyAsteroid
	BodyWormhole
	BodyAsteroidField
	BodyIceField
	BodyNebula
	BodyStorm
	BodyComet
	BodyDebrisField
)

func (k BodyKind) String() string {
	switch k {
	case BodyStar:
		return "star"
	case BodyPlanet:
		return "planet"
	case BodyMoon:
		return "moon"
	case BodyAsteroid:
		return "asteroid"
	case BodyWormhole:
		return "wormhole"
	case BodyAsteroidField:
		return "asteroid field"
	case BodyIceField:
		return "ice field"
	case BodyNebula:
		return "nebula"
	case BodyStorm:
		return "storm"
	case BodyComet:
		return "comet"
	case BodyDebrisField:
		return "debris field"
	default:
		return "unknown"
	}
}

// InhibitionRadius returns the jump-inhibition field radius every body of
// this kind projects around its position. Zero means no field.
func (k BodyKind) InhibitionRadius() float64 {
	switch k {
	case BodyStar:
		return 900
	case BodyPlanet:
		return 800
	case BodyMoon:
		return 600
	case BodyWormhole:
		return 500
	case BodyAsteroid:
		return 400
	case BodyAsteroidField:
		return 300
	case BodyComet:
		return 200
	case BodyIceField:
		return 150
	default:
		return 0
	}
}

// Colonisable reports whether bodies of this kind can hold population.
func (k BodyKind) Colonisable() bool {
	switch k {
	case BodyPlanet, BodyMoon, BodyAsteroid:
		return true
	default:
		return false
	}
}

// CelestialBody is a fixed object in a hex: stars, planets, wormholes and
// the various hazards. Wormhole and colony fields are only meaningful for
// the corresponding kinds.
type CelestialBody struct {
	ID       int
	Name     string
	Kind     BodyKind
	InSystem string
	InHex    HexCoord
	Pos      Position

	// Colonisable bodies only.
	Owner         *Player
	Population    float64
	MaxPopulation float64
	GrowthRate    float64

	// Wormholes only.
	ExitSystemName string
	ExitWormholeID int
	Stability      int
}

func (b *CelestialBody) String() string {
	return fmt.Sprintf("%s %q (id %d, %s %s)", b.Kind, b.Name, b.ID, b.InSystem, b.InHex)
}

// InhibitionZone returns the body's inhibition field, or false when the
// body projects none.
func (b *CelestialBody) InhibitionZone() (Circle, bool) {
	r := b.Kind.InhibitionRadius()
	if r <= 0 {
		return Circle{}, false
	}
	return Circle{Center: b.Pos, Radius: r}, true
}

// GrowPopulation applies one turn of exponential growth, capped at the
// body's maximum. Unowned bodies do not grow.
func (b *CelestialBody) GrowPopulation() {
	if b.Owner == nil || b.Population >= b.MaxPopulation {
		return
	}
	b.Population += b.Population * b.GrowthRate
	if b.Population > b.MaxPopulation {
		b.Population = b.MaxPopulation
	}
}

func newBody(id int, kind BodyKind, name, system string, hex HexCoord) *CelestialBody {
	b := &CelestialBody{
		ID:             id,
		Name:           name,
		Kind:           kind,
		InSystem:       system,
		InHex:          hex,
		ExitWormholeID: -1,
	}
	switch kind {
	case BodyPlanet:
		b.MaxPopulation = 100
		b.GrowthRate = 0.02
	case BodyMoon:
		b.MaxPopulation = 50
		b.GrowthRate = 0.01
	case BodyAsteroid:
		b.MaxPopulation = 20
		b.GrowthRate = 0.005
	case BodyWormhole:
		b.Stability = 100
	}
	return b
}
