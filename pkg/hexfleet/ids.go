package hexfleet

// IDSource hands out monotonically increasing ids for units, bodies,
// orders and players within one game. Not safe for concurrent use.
type IDSource struct {
	next int
}

func NewIDSource() *IDSource {
	return &IDSource{next: 1}
}

func (s *IDSource) Next() int {
	id := s.next
	s.next++
	return id
}
