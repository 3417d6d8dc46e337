package hexfleet

// Commander owns a unit's order queue: one current order plus a FIFO
// backlog. Orders start in queue order; a finished current order promotes
// the next one.
type Commander struct {
	Current *Order
	Backlog []*Order

	unit *Unit
}

// AddOrder enqueues an order. With no current order it starts immediately.
func (c *Commander) AddOrder(o *Order) {
	c.Backlog = append(c.Backlog, o)
	if c.Current == nil {
		c.startNext()
	}
}

// CancelOrder cancels the order with the given id, whether current or
// queued. Cancelling the current order promotes the next one. Reports
// whether the order was found.
func (c *Commander) CancelOrder(id int) bool {
	if c.Current != nil && c.Current.ID == id {
		c.Current.Cancel()
		c.Current = nil
		c.startNext()
		return true
	}
	for i, o := range c.Backlog {
		if o.ID == id {
			o.Cancel()
			c.Backlog = append(c.Backlog[:i], c.Backlog[i+1:]...)
			return true
		}
	}
	return false
}

// ClearOrders cancels everything, the current order included. Cancelling
// the running order disarms any movement targets it had set.
func (c *Commander) ClearOrders() {
	if c.Current != nil {
		c.Current.Cancel()
		c.Current = nil
	}
	for _, o := range c.Backlog {
		o.Cancel()
	}
	c.Backlog = c.Backlog[:0]
}

// ActiveOrderCount returns the number of live orders, current included.
func (c *Commander) ActiveOrderCount() int {
	n := len(c.Backlog)
	if c.Current != nil {
		n++
	}
	return n
}

// Update advances the current order by one step and promotes the next
// order when the current one reaches a terminal status.
func (c *Commander) Update() {
	if c.Current == nil {
		c.startNext()
		if c.Current == nil {
			return
		}
	}

	c.Current.Update(c.unit.game.Galaxy)

	if c.Current.Completed() || c.Current.Status.Terminal() {
		c.Current = nil
		c.startNext()
	}
}

func (c *Commander) startNext() {
	if c.Current != nil || len(c.Backlog) == 0 {
		return
	}
	c.Current = c.Backlog[0]
	c.Backlog = c.Backlog[1:]

	galaxy := c.unit.game.Galaxy
	c.Current.Execute(galaxy)
	if c.Current.Status == OrderInProgress {
		c.Current.Update(galaxy)
	}
}
