package hexfleet

import "testing"

func TestCommanderPromotesQueuedOrders(t *testing.T) {
	g, _ := newTestGame(t)
	g.Galaxy.AddSystem(NewStarSystem("Sol", 3, 0))
	p := g.AddPlayer("Ada", true)
	u, _ := g.SpawnUnit(p, scoutSpec(), "Sol", HexCoord{0, 0}, Position{})

	first := g.NewOrder(u, OrderMove, OrderParams{
		DestSystem: "Sol", DestHex: HexCoord{0, 0}, DestPos: Position{100, 0},
	})
	second := g.NewOrder(u, OrderMove, OrderParams{
		DestSystem: "Sol", DestHex: HexCoord{0, 0}, DestPos: Position{200, 0},
	})
	u.Commander.AddOrder(first)
	u.Commander.AddOrder(second)

	if u.Commander.Current != first {
		t.Fatal("first order should start immediately")
	}
	if u.Commander.ActiveOrderCount() != 2 {
		t.Errorf("active orders = %d, want 2", u.Commander.ActiveOrderCount())
	}

	// Engines cover 100 units in one turn: first order finishes, second
	// gets promoted on the following commander update.
	tp := NewTurnProcessor(g)
	tp.ProcessTurn()
	if first.Status != OrderCompleted {
		t.Fatalf("first order = %v, want completed", first.Status)
	}
	if u.Commander.Current != second {
		t.Errorf("second order should be current, got %v", u.Commander.Current)
	}
}

func TestCommanderCancelOrder(t *testing.T) {
	g, _ := newTestGame(t)
	g.Galaxy.AddSystem(NewStarSystem("Sol", 3, 0))
	p := g.AddPlayer("Ada", true)
	u, _ := g.SpawnUnit(p, scoutSpec(), "Sol", HexCoord{0, 0}, Position{})

	first := g.NewOrder(u, OrderMove, OrderParams{
		DestSystem: "Sol", DestHex: HexCoord{0, 0}, DestPos: Position{500, 0},
	})
	second := g.NewOrder(u, OrderMove, OrderParams{
		DestSystem: "Sol", DestHex: HexCoord{0, 0}, DestPos: Position{600, 0},
	})
	u.Commander.AddOrder(first)
	u.Commander.AddOrder(second)

	// Cancelling a queued order leaves the current one running.
	if !u.Commander.CancelOrder(second.ID) {
		t.Fatal("queued order not found for cancel")
	}
	if second.Status != OrderCancelled {
		t.Errorf("queued order status = %v, want cancelled", second.Status)
	}
	if u.Commander.Current != first {
		t.Error("current order should be untouched")
	}

	// Cancelling the current order cascades into its sub-orders and
	// promotes the next (here: none).
	if !u.Commander.CancelOrder(first.ID) {
		t.Fatal("current order not found for cancel")
	}
	if first.Status != OrderCancelled {
		t.Errorf("current order status = %v, want cancelled", first.Status)
	}
	for _, sub := range first.SubOrders {
		if sub.Status != OrderCancelled {
			t.Errorf("sub-order %v not cancelled", sub)
		}
	}
	if u.Commander.Current != nil {
		t.Error("no order should be current after cancelling everything")
	}

	if u.Commander.CancelOrder(99999) {
		t.Error("cancelling an unknown id should report false")
	}
}

func TestCancelOrderDisarmsMovement(t *testing.T) {
	g, _ := newTestGame(t)
	g.Galaxy.AddSystem(NewStarSystem("Sol", 3, 0))
	p := g.AddPlayer("Ada", true)
	u, _ := g.SpawnUnit(p, scoutSpec(), "Sol", HexCoord{0, 0}, Position{})

	order := g.NewOrder(u, OrderMove, OrderParams{
		DestSystem: "Sol", DestHex: HexCoord{3, 0}, DestPos: Position{50, 50},
	})
	u.Commander.AddOrder(order)
	if u.Hyperdrive.HexJumpTarget == nil {
		t.Fatal("expected an armed hex jump target")
	}

	if !u.Commander.CancelOrder(order.ID) {
		t.Fatal("order not found for cancel")
	}
	if u.Hyperdrive.HexJumpTarget != nil || u.Hyperdrive.WormholeJumpTarget != nil {
		t.Error("hyperdrive targets should be disarmed")
	}
	if u.Engines.MoveTarget != nil {
		t.Error("engine target should be disarmed")
	}

	// The cancelled jump must not execute on the following turn.
	NewTurnProcessor(g).ProcessTurn()
	if u.InHex != (HexCoord{0, 0}) {
		t.Errorf("unit jumped to %v after its order was cancelled", u.InHex)
	}
}

func TestClearOrdersDisarmsMovement(t *testing.T) {
	g, _ := newTestGame(t)
	g.Galaxy.AddSystem(NewStarSystem("Sol", 3, 0))
	p := g.AddPlayer("Ada", true)
	u, _ := g.SpawnUnit(p, scoutSpec(), "Sol", HexCoord{0, 0}, Position{})

	// A MOVE to another hex arms the hyperdrive via its first waypoint.
	order := g.NewOrder(u, OrderMove, OrderParams{
		DestSystem: "Sol", DestHex: HexCoord{2, 0}, DestPos: Position{50, 50},
	})
	u.Commander.AddOrder(order)
	if u.Hyperdrive.HexJumpTarget == nil {
		t.Fatal("expected an armed hex jump target")
	}

	u.Commander.ClearOrders()
	if u.Commander.ActiveOrderCount() != 0 {
		t.Error("orders should be gone")
	}
	if order.Status != OrderCancelled {
		t.Errorf("order status = %v, want cancelled", order.Status)
	}
	if u.Hyperdrive.HexJumpTarget != nil || u.Hyperdrive.WormholeJumpTarget != nil {
		t.Error("hyperdrive targets should be disarmed")
	}
	if u.Engines.MoveTarget != nil {
		t.Error("engine target should be disarmed")
	}
}
