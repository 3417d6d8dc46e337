package hexfleet

import "fmt"

// unitTemplates are the stock unit designs constructors can produce.
var unitTemplates = map[string]UnitSpec{
	"CONSTRUCTOR_MK1": {
		Name: "Constructor Mk.I",
		Hull: HullMedium,
		Engines: &EnginesSpec{
			Speed:    150,
			HullCost: 10,
		},
		Hyperdrive: &HyperdriveSpec{
			Type:     HyperdriveAdvanced,
			HullCost: 20,
		},
		Constructor: &ConstructorSpec{
			HullCost: 15,
			Buildable: []BuildableUnit{
				{Template: "STATION_MK1", BuildTurns: 10, CostCredits: 500},
			},
		},
	},
	"STATION_MK1": {
		Name: "Station Mk.I",
		Hull: HullLarge,
		Weapons: &WeaponsSpec{
			HullCost: 20,
			Turrets: []TurretSpec{
				{Type: TurretMassDriver, Damage: 10, Range: 300, Cooldown: 2},
			},
		},
	},
}

// TemplateSpec returns the unit spec for a named template.
func TemplateSpec(name string) (UnitSpec, bool) {
	spec, ok := unitTemplates[name]
	return spec, ok
}

// CreateUnitFromTemplate builds a unit from a named template and places it
// into the galaxy.
func (g *Game) CreateUnitFromTemplate(template string, owner *Player, system string, hex HexCoord, pos Position) (*Unit, error) {
	spec, ok := TemplateSpec(template)
	if !ok {
		return nil, fmt.Errorf("create unit: unknown template %q", template)
	}
	u, err := g.SpawnUnit(owner, spec, system, hex, pos)
	if err != nil {
		return nil, fmt.Errorf("create unit from template %q: %w", template, err)
	}
	g.log.Info().
		Str("template", template).
		Str("unit", u.Name).
		Int("id", u.ID).
		Str("system", system).
		Msg("unit created from template")
	return u, nil
}
