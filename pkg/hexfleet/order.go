package hexfleet

import "fmt"

// OrderStatus is the lifecycle state of an order.
type OrderStatus int

const (
	OrderPending OrderStatus = iota
	OrderInProgress
	OrderCompleted
	OrderFailed
	OrderCancelled
)

func (s OrderStatus) String() string {
	switch s {
	case OrderPending:
		return "pending"
	case OrderInProgress:
		return "in progress"
	case OrderCompleted:
		return "completed"
	case OrderFailed:
		return "failed"
	case OrderCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Terminal reports whether the status is final. Updating a terminal order
// is a no-op.
func (s OrderStatus) Terminal() bool {
	return s == OrderCompleted || s == OrderFailed || s == OrderCancelled
}

// OrderType identifies what an order does.
type OrderType int

const (
	// OrderReachWaypoint moves to a single waypoint (system, hex,
	// position) with no further planning. Spawned as sub-orders of MOVE.
	OrderReachWaypoint OrderType = iota
	// OrderMove plans a possibly multi-leg route to a destination and
	// spawns REACH_WAYPOINT sub-orders for each leg.
	OrderMove
	// OrderAttack engages a target unit, moving into weapons range first.
	OrderAttack
	// OrderToggleInhibitor turns the inhibition field emitter on or off.
	OrderToggleInhibitor
	// OrderColonize unloads population onto a colonisable body.
	OrderColonize
	// OrderLoadColonists loads population from an owned body.
	OrderLoadColonists
	// OrderConstruct starts a construction project.
	OrderConstruct
)

func (t OrderType) String() string {
	switch t {
	case OrderReachWaypoint:
		return "REACH_WAYPOINT"
	case OrderMove:
		return "MOVE"
	case OrderAttack:
		return "ATTACK"
	case OrderToggleInhibitor:
		return "TOGGLE_INHIBITOR"
	case OrderColonize:
		return "COLONIZE"
	case OrderLoadColonists:
		return "LOAD_COLONISTS"
	case OrderConstruct:
		return "CONSTRUCT"
	default:
		return "UNKNOWN"
	}
}

// OrderParams carries the per-type parameters of an order. Which fields
// are read depends on the order type: destination fields for MOVE and
// REACH_WAYPOINT, target ids for ATTACK/COLONIZE/LOAD_COLONISTS, template
// and build position for CONSTRUCT, TurnOn for TOGGLE_INHIBITOR.
type OrderParams struct {
	DestSystem string
	DestHex    HexCoord
	DestPos    Position

	TargetUnitID int
	TargetBodyID int
	Amount       int
	TurnOn       bool
	Template     string
	BuildPos     Position
}

// Order is a command issued to a unit. Orders may spawn sub-orders that
// must finish before the parent completes, forming a recursive tree with
// the leaves doing the actual work.
type Order struct {
	ID        int
	Type      OrderType
	Status    OrderStatus
	Params    OrderParams
	SubOrders []*Order

	unit   *Unit
	parent *Order
}

// NewOrder creates a pending order for the given unit.
func (g *Game) NewOrder(u *Unit, t OrderType, p OrderParams) *Order {
	return &Order{
		ID:     g.ids.Next(),
		Type:   t,
		Status: OrderPending,
		Params: p,
		unit:   u,
	}
}

func (o *Order) String() string {
	return fmt.Sprintf("%s (id %d, %s)", o.Type, o.ID, o.Status)
}

// AddSubOrder appends a sub-order to this order's queue.
func (o *Order) AddSubOrder(sub *Order) {
	sub.parent = o
	sub.unit = o.unit
	o.SubOrders = append(o.SubOrders, sub)
	o.unit.game.log.Debug().
		Str("unit", o.unit.Name).
		Str("order", o.Type.String()).
		Int("order_id", o.ID).
		Str("sub_order", sub.Type.String()).
		Int("sub_order_id", sub.ID).
		Msg("sub-order added")
}

func (o *Order) newSub(t OrderType, p OrderParams) {
	o.AddSubOrder(o.unit.game.NewOrder(o.unit, t, p))
}

// Completed reports whether this order and its whole subtree are done.
func (o *Order) Completed() bool {
	if o.Status != OrderCompleted {
		return false
	}
	for _, sub := range o.SubOrders {
		if !sub.Completed() {
			return false
		}
	}
	return true
}

// HasActiveSubOrders reports whether any descendant is still pending or in
// progress.
func (o *Order) HasActiveSubOrders() bool {
	for _, sub := range o.SubOrders {
		if sub.Status == OrderPending || sub.Status == OrderInProgress || sub.HasActiveSubOrders() {
			return true
		}
	}
	return false
}

// Cancel marks this order and its whole subtree cancelled. An order that
// was in progress also disarms the engine and hyperdrive targets it
// configured so no stale movement target outlives it.
func (o *Order) Cancel() {
	active := o.Status == OrderInProgress
	o.Status = OrderCancelled
	for _, sub := range o.SubOrders {
		sub.Cancel()
	}
	if !active {
		return
	}
	if o.unit.Engines != nil {
		o.unit.Engines.MoveTarget = nil
	}
	if o.unit.Hyperdrive != nil {
		o.unit.Hyperdrive.ClearTargets()
	}
}

// Update advances the order by one step: drain finished sub-orders from
// the front of the queue, start the next pending one, and stop at the
// first sub-order that remains in progress. With no sub-orders left the
// order checks its own completion conditions. Updating a terminal order
// does nothing.
func (o *Order) Update(galaxy *Galaxy) {
	if o.Status.Terminal() {
		return
	}

	for len(o.SubOrders) > 0 {
		front := o.SubOrders[0]

		if front.Status == OrderPending {
			front.Execute(galaxy)
		}
		if front.Status == OrderInProgress {
			front.Update(galaxy)
		}

		if front.Status.Terminal() {
			o.SubOrders = o.SubOrders[1:]
			continue
		}
		// The front sub-order needs more turns; the parent waits.
		return
	}

	if o.Status == OrderInProgress {
		o.checkCompletion(galaxy)
	}
}

// Execute transitions a pending order to in-progress and dispatches its
// type-specific start logic.
func (o *Order) Execute(galaxy *Galaxy) {
	if o.Status != OrderPending {
		return
	}
	o.Status = OrderInProgress

	o.unit.game.log.Debug().
		Str("unit", o.unit.Name).
		Str("order", o.Type.String()).
		Int("order_id", o.ID).
		Msg("executing order")

	switch o.Type {
	case OrderMove:
		o.planRoute(galaxy)
	case OrderReachWaypoint:
		o.executeReachWaypoint(galaxy)
	case OrderToggleInhibitor:
		o.executeToggleInhibitor(galaxy)
	case OrderAttack:
		o.executeAttack(galaxy)
	case OrderColonize:
		o.executeColonize(galaxy)
	case OrderLoadColonists:
		o.executeLoadColonists(galaxy)
	case OrderConstruct:
		o.executeConstruct(galaxy)
	}
}

func (o *Order) checkCompletion(galaxy *Galaxy) {
	if o.Status != OrderInProgress {
		return
	}

	u := o.unit

	switch o.Type {
	case OrderMove:
		// Complete once every leg finished and the unit actually stands at
		// the destination.
		atDest := u.InSystem == o.Params.DestSystem &&
			u.InHex == o.Params.DestHex &&
			Distance(u.Pos, o.Params.DestPos) < ArrivalEpsilon
		if len(o.SubOrders) == 0 && atDest {
			o.complete()
		}

	case OrderReachWaypoint:
		atDest := u.InSystem == o.Params.DestSystem &&
			u.InHex == o.Params.DestHex &&
			Distance(u.Pos, o.Params.DestPos) < ArrivalEpsilon
		if atDest {
			// Arrival disarms movement so no stale target survives.
			if u.Engines != nil {
				u.Engines.MoveTarget = nil
			}
			if u.Hyperdrive != nil {
				u.Hyperdrive.ClearTargets()
			}
			o.complete()
		}

	case OrderAttack:
		target := galaxy.UnitByID(o.Params.TargetUnitID)
		if target == nil || target.HP <= 0 {
			if u.Weapons != nil {
				u.Weapons.ClearTarget()
			}
			o.complete()
		}

	case OrderColonize:
		target := galaxy.BodyByID(o.Params.TargetBodyID)
		if target != nil && target.Owner == u.Owner {
			o.complete()
		}

	case OrderLoadColonists:
		// The load happens in execute, either immediately or via spawned
		// sub-orders. No sub-orders left means the load went through.
		if len(o.SubOrders) == 0 {
			o.complete()
		}
	}
}

func (o *Order) complete() {
	o.Status = OrderCompleted
	o.unit.game.log.Debug().
		Str("unit", o.unit.Name).
		Str("order", o.Type.String()).
		Int("order_id", o.ID).
		Msg("order completed")
	o.unit.game.events.GameEvent("order.completed", map[string]any{
		"unit":     o.unit.Name,
		"order":    o.Type.String(),
		"order_id": o.ID,
	})
}

func (o *Order) fail(reason string) {
	o.Status = OrderFailed
	o.unit.game.log.Info().
		Str("unit", o.unit.Name).
		Str("order", o.Type.String()).
		Int("order_id", o.ID).
		Str("reason", reason).
		Msg("order failed")
	o.unit.game.events.GameEvent("order.failed", map[string]any{
		"unit":     o.unit.Name,
		"order":    o.Type.String(),
		"order_id": o.ID,
		"reason":   reason,
	})
}
