package hexfleet

import (
	"math"
	"testing"
)

func TestPointInCircleBoundaryInclusive(t *testing.T) {
	c := Circle{Center: Position{}, Radius: 100}

	tests := []struct {
		name string
		p    Position
		want bool
	}{
		{"center", Position{0, 0}, true},
		{"inside", Position{50, 0}, true},
		{"exactly on boundary", Position{100, 0}, true},
		{"just outside", Position{100.01, 0}, false},
		{"diagonal inside", Position{70, 70}, true},
		{"diagonal outside", Position{71, 71}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PointInCircle(tt.p, c); got != tt.want {
				t.Errorf("PointInCircle(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestCirclesIntersectTouchingIsOpen(t *testing.T) {
	a := Circle{Center: Position{}, Radius: 50}

	tests := []struct {
		name string
		b    Circle
		want bool
	}{
		{"overlapping", Circle{Position{60, 0}, 50}, true},
		{"exactly touching", Circle{Position{100, 0}, 50}, false},
		{"separate", Circle{Position{150, 0}, 50}, false},
		{"concentric", Circle{Position{0, 0}, 10}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CirclesIntersect(a, tt.b); got != tt.want {
				t.Errorf("CirclesIntersect = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCircleContained(t *testing.T) {
	outer := Circle{Center: Position{}, Radius: 1000}

	tests := []struct {
		name  string
		inner Circle
		want  bool
	}{
		{"well inside", Circle{Position{100, 0}, 100}, true},
		{"touching from inside", Circle{Position{900, 0}, 100}, true},
		{"crossing boundary", Circle{Position{950, 0}, 100}, false},
		{"same circle", Circle{Position{}, 1000}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CircleContained(tt.inner, outer); got != tt.want {
				t.Errorf("CircleContained = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClosestPointOutsideCircle(t *testing.T) {
	c := Circle{Center: Position{}, Radius: 500}

	p := ClosestPointOutsideCircle(Position{250, 0}, c)
	if PointInCircle(p, c) {
		t.Errorf("edge point %v should be outside the zone", p)
	}
	want := 500 * 1.0001
	if math.Abs(p.X-want) > 1e-9 || math.Abs(p.Y) > 1e-9 {
		t.Errorf("edge point = %v, want (%v, 0)", p, want)
	}

	// A point at the exact center has no direction to the edge; the
	// fallback heads along the positive X axis.
	p = ClosestPointOutsideCircle(Position{0, 0}, c)
	if PointInCircle(p, c) {
		t.Errorf("degenerate edge point %v should be outside the zone", p)
	}
	if p.Y != 0 || p.X <= 500 {
		t.Errorf("degenerate edge point = %v, want along +X past the radius", p)
	}
}

func TestStepTowards(t *testing.T) {
	tests := []struct {
		name    string
		from    Position
		to      Position
		maxStep float64
		want    Position
	}{
		{"clamped", Position{0, 0}, Position{100, 0}, 30, Position{30, 0}},
		{"reaches target", Position{0, 0}, Position{10, 0}, 30, Position{10, 0}},
		{"exact distance", Position{0, 0}, Position{30, 0}, 30, Position{30, 0}},
		{"already there", Position{5, 5}, Position{5, 5}, 30, Position{5, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StepTowards(tt.from, tt.to, tt.maxStep)
			if Distance(got, tt.want) > 1e-9 {
				t.Errorf("StepTowards = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStandoffPoint(t *testing.T) {
	got := StandoffPoint(Position{200, 0}, Position{0, 0}, 45)
	if Distance(got, Position{45, 0}) > 1e-9 {
		t.Errorf("StandoffPoint = %v, want (45, 0)", got)
	}

	// Attacker on top of the target: the standoff falls back to +X.
	got = StandoffPoint(Position{0, 0}, Position{0, 0}, 45)
	if Distance(got, Position{45, 0}) > 1e-9 {
		t.Errorf("degenerate StandoffPoint = %v, want (45, 0)", got)
	}
}
