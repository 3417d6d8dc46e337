package hexfleet

// EventSink receives notable simulation events (order lifecycle, jump
// resolution, zone toggles). The engine calls it synchronously from the
// turn loop; implementations must not block.
type EventSink interface {
	GameEvent(event string, fields map[string]any)
}

// NoopSink discards all events. Used when no observer is attached.
type NoopSink struct{}

func (NoopSink) GameEvent(string, map[string]any) {}
