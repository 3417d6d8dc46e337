package hexfleet

// executeReachWaypoint arms the right movement component for one waypoint:
// hyperdrive hex jump for another hex in the same system, sublight engines
// inside the current hex, wormhole jump for another system. Arming one
// kind of movement disarms the others.
func (o *Order) executeReachWaypoint(galaxy *Galaxy) {
	u := o.unit
	dsys, dhex, dpos := o.Params.DestSystem, o.Params.DestHex, o.Params.DestPos

	if dsys == "" {
		o.fail("incomplete destination parameters")
		return
	}

	switch {
	case u.InSystem == dsys && u.InHex != dhex:
		if u.Hyperdrive == nil {
			o.fail("no hyperdrive for hex jump")
			return
		}
		u.Hyperdrive.SetHexJumpTarget(dhex, dpos)
		if u.Engines != nil {
			u.Engines.MoveTarget = nil
		}
		u.game.log.Debug().
			Str("unit", u.Name).
			Str("hex", dhex.String()).
			Msg("hex jump armed")

	case u.InSystem == dsys:
		if u.Engines == nil {
			o.fail("no engines for sublight move")
			return
		}
		if Distance(u.Pos, dpos) < ArrivalEpsilon {
			u.Engines.MoveTarget = nil
			if u.Hyperdrive != nil {
				u.Hyperdrive.ClearTargets()
			}
			o.complete()
			return
		}
		u.Engines.SetMoveTarget(dpos)
		if u.Hyperdrive != nil {
			u.Hyperdrive.ClearTargets()
		}
		u.game.log.Debug().
			Str("unit", u.Name).
			Float64("x", dpos.X).
			Float64("y", dpos.Y).
			Msg("sublight move armed")

	default:
		if u.Hyperdrive == nil {
			o.fail("no hyperdrive for system jump")
			return
		}
		wormhole := galaxy.WormholeConnecting(u.InSystem, dsys)
		if wormhole == nil {
			o.fail("no wormhole from " + u.InSystem + " to " + dsys)
			return
		}
		u.Hyperdrive.SetWormholeJumpTarget(wormhole)
		if u.Engines != nil {
			u.Engines.MoveTarget = nil
		}
		u.game.log.Debug().
			Str("unit", u.Name).
			Str("wormhole", wormhole.Name).
			Str("system", dsys).
			Msg("system jump armed")
	}
}

// executeAttack points the unit's weapons at the target and, when the
// target is outside turret range or in another hex, spawns a MOVE
// sub-order to a standoff position near it. Completion is checked each
// turn: the order finishes when the target is destroyed or gone.
func (o *Order) executeAttack(galaxy *Galaxy) {
	u := o.unit
	target := galaxy.UnitByID(o.Params.TargetUnitID)
	if target == nil {
		o.fail("attack target not found")
		return
	}
	if u.Weapons == nil || len(u.Weapons.Turrets) == 0 {
		o.fail("no weapons")
		return
	}

	u.Weapons.SetTarget(target)

	colocated := u.InSystem == target.InSystem && u.InHex == target.InHex
	inRange := false
	for _, t := range u.Weapons.Turrets {
		if Distance(u.Pos, target.Pos) < t.Range {
			inRange = true
			break
		}
	}

	if !colocated || !inRange {
		// Close to just inside the shortest turret's reach.
		standoff := u.Weapons.MinRange() - 5.0
		dest := StandoffPoint(u.Pos, target.Pos, standoff)
		o.newSub(OrderMove, OrderParams{
			DestSystem: target.InSystem,
			DestHex:    target.InHex,
			DestPos:    dest,
		})
	}
}

// executeToggleInhibitor switches the emitter per the TurnOn parameter.
// Activation validates that the field stays inside the sector boundary and
// overlaps no existing zone. The order is atomic: it completes or fails
// right here.
func (o *Order) executeToggleInhibitor(galaxy *Galaxy) {
	u := o.unit
	if u.Inhibitor == nil {
		o.fail("no inhibitor emitter")
		return
	}
	sys, ok := galaxy.Systems[u.InSystem]
	if !ok {
		o.fail("unit is not in a known system")
		return
	}
	hex, ok := sys.Hexes[u.InHex]
	if !ok {
		o.fail("unit is not in a known hex")
		return
	}

	if o.Params.TurnOn {
		proposed := Circle{Center: u.Pos, Radius: u.Inhibitor.Radius}
		if !CircleContained(proposed, hex.Boundary) {
			o.fail("field would cross the sector boundary")
			return
		}
		for _, zone := range hex.AllInhibitionZones() {
			if CirclesIntersect(proposed, zone) {
				o.fail("field would overlap an existing zone")
				return
			}
		}
		u.Inhibitor.Active = true
		hex.DynamicZones[u.ID] = proposed
		u.game.events.GameEvent("inhibitor.on", map[string]any{
			"unit": u.Name, "system": u.InSystem, "hex": u.InHex.String(),
		})
		o.complete()
		return
	}

	delete(hex.DynamicZones, u.ID)
	u.Inhibitor.Active = false
	u.game.events.GameEvent("inhibitor.off", map[string]any{
		"unit": u.Name, "system": u.InSystem, "hex": u.InHex.String(),
	})
	o.complete()
}

// executeColonize unloads the unit's whole population cargo onto the
// target body, travelling there first when necessary.
func (o *Order) executeColonize(galaxy *Galaxy) {
	u := o.unit
	target := galaxy.BodyByID(o.Params.TargetBodyID)
	if target == nil {
		o.fail("colonize target not found")
		return
	}
	if u.Colony == nil {
		o.fail("no colony component")
		return
	}

	atLocation := u.InSystem == target.InSystem && u.InHex == target.InHex
	if !atLocation {
		if !o.HasActiveSubOrders() {
			o.newSub(OrderMove, OrderParams{
				DestSystem: target.InSystem,
				DestHex:    target.InHex,
				DestPos:    target.Pos,
			})
			// Re-run the colonize once the unit arrives.
			o.newSub(OrderColonize, o.Params)
		}
		return
	}

	cargo := u.Colony.Cargo
	if cargo <= 0 {
		o.fail("no population in cargo")
		return
	}
	if err := u.Colony.UnloadPopulation(target, cargo); err != nil {
		o.fail(err.Error())
		return
	}
	o.complete()
}

// executeLoadColonists loads population from the target body, travelling
// there first when necessary.
func (o *Order) executeLoadColonists(galaxy *Galaxy) {
	u := o.unit
	amount := o.Params.Amount
	if amount <= 0 {
		amount = 50
	}
	target := galaxy.BodyByID(o.Params.TargetBodyID)
	if target == nil {
		o.fail("load target not found")
		return
	}
	if u.Colony == nil {
		o.fail("no colony component")
		return
	}

	atLocation := u.InSystem == target.InSystem && u.InHex == target.InHex
	if !atLocation {
		if !o.HasActiveSubOrders() {
			o.newSub(OrderMove, OrderParams{
				DestSystem: target.InSystem,
				DestHex:    target.InHex,
				DestPos:    target.Pos,
			})
			o.newSub(OrderLoadColonists, OrderParams{
				TargetBodyID: target.ID,
				Amount:       amount,
			})
		}
		return
	}

	if err := u.Colony.LoadPopulation(target, amount); err != nil {
		o.fail(err.Error())
		return
	}
}

// executeConstruct validates build eligibility and delegates to the
// constructor, which deducts the cost. The order is to start construction;
// it completes immediately while the build runs on the component.
func (o *Order) executeConstruct(galaxy *Galaxy) {
	u := o.unit
	if u.Constructor == nil {
		o.fail("no constructor component")
		return
	}
	if o.Params.Template == "" {
		o.fail("no template given")
		return
	}
	if err := u.Constructor.StartConstruction(o.Params.Template, o.Params.BuildPos); err != nil {
		o.fail(err.Error())
		return
	}
	o.complete()
}
