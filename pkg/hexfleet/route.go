package hexfleet

import (
	"math"
)

// failPlanning aborts MOVE planning: every sub-order enqueued for earlier
// legs is cancelled and dropped so no partial route survives, then the
// order fails.
func (o *Order) failPlanning(reason string) {
	for _, sub := range o.SubOrders {
		sub.Cancel()
	}
	o.SubOrders = nil
	o.fail(reason)
}

// handleInhibitedWaypoint enqueues the REACH_WAYPOINT sub-order(s) for a
// single jump landing. A landing position covered by an inhibition zone is
// redirected to the nearest point on the zone's edge; when the waypoint is
// the final destination a follow-up sublight move from the edge back to
// the original position is added.
func (o *Order) handleInhibitedWaypoint(galaxy *Galaxy, system string, targetHex HexCoord, targetPos Position, finalDestination bool) {
	sys, ok := galaxy.Systems[system]
	if !ok {
		o.unit.game.log.Error().Str("system", system).Msg("inhibited waypoint check: unknown system")
		return
	}
	hex, ok := sys.Hexes[targetHex]
	if !ok {
		o.unit.game.log.Error().
			Str("system", system).
			Str("hex", targetHex.String()).
			Msg("inhibited waypoint check: unknown hex")
		return
	}

	for _, zone := range hex.AllInhibitionZones() {
		if !PointInCircle(targetPos, zone) {
			continue
		}
		adjusted := ClosestPointOutsideCircle(targetPos, zone)
		o.unit.game.log.Debug().
			Str("unit", o.unit.Name).
			Str("hex", targetHex.String()).
			Msg("waypoint inhibited, adjusting landing to zone edge")

		o.newSub(OrderReachWaypoint, OrderParams{
			DestSystem: system,
			DestHex:    targetHex,
			DestPos:    adjusted,
		})
		if finalDestination {
			// Close the gap under sublight power.
			o.newSub(OrderReachWaypoint, OrderParams{
				DestSystem: system,
				DestHex:    targetHex,
				DestPos:    targetPos,
			})
		}
		return
	}

	o.newSub(OrderReachWaypoint, OrderParams{
		DestSystem: system,
		DestHex:    targetHex,
		DestPos:    targetPos,
	})
}

// planHexJumpSequence enqueues REACH_WAYPOINT sub-orders to get from
// startHex to endHex within one system, splitting the trip into several
// jumps when it exceeds the drive's range. Intermediate waypoints land at
// the sector origin; the final one lands at endPos.
func (o *Order) planHexJumpSequence(galaxy *Galaxy, system string, startHex, endHex HexCoord, endPos Position) {
	if o.unit.Hyperdrive == nil {
		o.failPlanning("no hyperdrive for hex jump")
		return
	}

	jumpRange := o.unit.Hyperdrive.JumpRange
	dist := HexDistance(startHex, endHex)

	if dist <= jumpRange {
		o.handleInhibitedWaypoint(galaxy, system, endHex, endPos, true)
		return
	}

	waypoints := FindHexJumpPath(startHex, endHex, jumpRange)
	o.unit.game.log.Debug().
		Str("unit", o.unit.Name).
		Int("distance", dist).
		Int("jump_range", jumpRange).
		Int("waypoints", len(waypoints)).
		Msg("planning multi-stage hex jump")

	for i, wp := range waypoints {
		final := i == len(waypoints)-1
		pos := Position{}
		if final {
			pos = endPos
		}
		o.handleInhibitedWaypoint(galaxy, system, wp, pos, final)
	}
}

// planRoute turns a MOVE order into REACH_WAYPOINT sub-orders. Routes may
// span systems (through wormholes, chained with the system graph when no
// direct wormhole exists), hexes (single or multi-stage jumps) or just a
// sublight move within the current hex.
func (o *Order) planRoute(galaxy *Galaxy) {
	u := o.unit
	csys, chex, cpos := u.InSystem, u.InHex, u.Pos
	dsys, dhex, dpos := o.Params.DestSystem, o.Params.DestHex, o.Params.DestPos

	log := u.game.log.With().
		Str("unit", u.Name).
		Int("order_id", o.ID).
		Logger()
	log.Debug().
		Str("from", csys+":"+chex.String()).
		Str("to", dsys+":"+dhex.String()).
		Msg("planning route")

	if dsys == "" {
		o.fail("incomplete destination parameters")
		return
	}

	if csys == dsys && chex == dhex && Distance(cpos, dpos) < ArrivalEpsilon {
		o.complete()
		return
	}

	// A jump from an inhibited position cannot start; plan a sublight
	// escape to the zone edge first.
	if csys != dsys || chex != dhex {
		if sys, ok := galaxy.Systems[csys]; ok {
			if hex, ok := sys.Hexes[chex]; ok {
				for _, zone := range hex.AllInhibitionZones() {
					if PointInCircle(cpos, zone) {
						escape := ClosestPointOutsideCircle(cpos, zone)
						log.Debug().Msg("start position inhibited, planning escape maneuver")
						o.newSub(OrderReachWaypoint, OrderParams{
							DestSystem: csys,
							DestHex:    chex,
							DestPos:    escape,
						})
						break
					}
				}
			}
		}
	}

	switch {
	case csys != dsys:
		o.planIntersystemRoute(galaxy, csys, chex, dsys, dhex, dpos)

	case chex != dhex:
		o.planHexJumpSequence(galaxy, csys, chex, dhex, dpos)

	default:
		if u.Engines == nil {
			o.failPlanning("no engines for sublight move")
			return
		}
		o.newSub(OrderReachWaypoint, OrderParams{
			DestSystem: dsys,
			DestHex:    dhex,
			DestPos:    dpos,
		})
	}
}

func (o *Order) planIntersystemRoute(galaxy *Galaxy, csys string, chex HexCoord, dsys string, dhex HexCoord, dpos Position) {
	u := o.unit
	if u.Hyperdrive == nil {
		o.failPlanning("no hyperdrive for system jump")
		return
	}

	if direct := galaxy.WormholeConnecting(csys, dsys); direct != nil {
		exit, ok := galaxy.Wormholes[direct.ExitWormholeID]
		if !ok {
			o.failPlanning("direct wormhole has no exit")
			return
		}
		if !o.planWormholeTransit(galaxy, csys, chex, direct, exit) {
			return
		}
		// Always plan the final leg, even when the exit already sits in
		// the destination hex: the destination position can still differ
		// from the wormhole's.
		o.planHexJumpSequence(galaxy, dsys, exit.InHex, dhex, dpos)
		return
	}

	path := FindIntersystemPath(galaxy.Graph, csys, dsys)
	if len(path) < 2 {
		o.failPlanning("no wormhole route to destination system")
		return
	}
	u.game.log.Debug().
		Str("unit", u.Name).
		Strs("path", path).
		Msg("route found over system graph")

	legArrivalHex := chex
	for i := 0; i < len(path)-1; i++ {
		from, to := path[i], path[i+1]

		entry := galaxy.WormholeConnecting(from, to)
		if entry == nil {
			o.failPlanning("no wormhole for route leg " + from + " -> " + to)
			return
		}
		exit, ok := galaxy.Wormholes[entry.ExitWormholeID]
		if !ok {
			o.failPlanning("wormhole for route leg " + from + " -> " + to + " has no exit")
			return
		}
		if !o.planWormholeTransit(galaxy, from, legArrivalHex, entry, exit) {
			return
		}
		legArrivalHex = exit.InHex
	}

	o.planHexJumpSequence(galaxy, dsys, legArrivalHex, dhex, dpos)
}

// planWormholeTransit enqueues the sub-orders for one wormhole leg: reach
// the entry wormhole, jump through it, and escape the exit's zone if the
// arrival point is inhibited. Reports false when planning failed.
func (o *Order) planWormholeTransit(galaxy *Galaxy, system string, fromHex HexCoord, entry, exit *CelestialBody) bool {
	if fromHex != entry.InHex {
		o.planHexJumpSequence(galaxy, system, fromHex, entry.InHex, entry.Pos)
		if o.Status.Terminal() {
			return false
		}
	} else {
		o.newSub(OrderReachWaypoint, OrderParams{
			DestSystem: system,
			DestHex:    entry.InHex,
			DestPos:    entry.Pos,
		})
	}

	o.newSub(OrderReachWaypoint, OrderParams{
		DestSystem: exit.InSystem,
		DestHex:    exit.InHex,
		DestPos:    exit.Pos,
	})

	// Wormhole exits sit inside their own inhibition field; plan a
	// sublight move out before the next jump can start.
	if sys, ok := galaxy.Systems[exit.InSystem]; ok {
		if hex, ok := sys.Hexes[exit.InHex]; ok {
			for _, zone := range hex.AllInhibitionZones() {
				if !PointInCircle(exit.Pos, zone) {
					continue
				}
				angle := o.unit.game.rng.Float64() * 2 * math.Pi
				safeDist := zone.Radius + 1.0
				safe := Position{
					X: exit.Pos.X + safeDist*math.Cos(angle),
					Y: exit.Pos.Y + safeDist*math.Sin(angle),
				}
				o.newSub(OrderReachWaypoint, OrderParams{
					DestSystem: exit.InSystem,
					DestHex:    exit.InHex,
					DestPos:    safe,
				})
				o.unit.game.log.Debug().
					Str("unit", o.unit.Name).
					Str("system", exit.InSystem).
					Msg("wormhole exit inhibited, adding escape move")
				break
			}
		}
	}
	return true
}
