package hexfleet

import "math"

// ArrivalEpsilon is the distance below which a unit counts as having
// arrived at a target position. Position equality is exact; arrival is not.
const ArrivalEpsilon = 0.01

// Position is a point in logical sector coordinates. Each hex has its own
// sector space centred on the origin.
type Position struct {
	X float64
	Y float64
}

// Add returns the component-wise sum of two positions.
func (p Position) Add(o Position) Position {
	return Position{p.X + o.X, p.Y + o.Y}
}

// Sub returns the component-wise difference of two positions.
func (p Position) Sub(o Position) Position {
	return Position{p.X - o.X, p.Y - o.Y}
}

// Scale returns the position scaled by s.
func (p Position) Scale(s float64) Position {
	return Position{p.X * s, p.Y * s}
}

func (p Position) magnitudeSq() float64 {
	return p.X*p.X + p.Y*p.Y
}

func (p Position) magnitude() float64 {
	return math.Sqrt(p.magnitudeSq())
}

// normalize returns the unit vector in the direction of p,
// or the zero vector when p is the origin.
func (p Position) normalize() Position {
	mag := p.magnitude()
	if mag == 0 {
		return Position{}
	}
	return Position{p.X / mag, p.Y / mag}
}

// DistanceSq returns the squared Euclidean distance between two positions.
func DistanceSq(a, b Position) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

// Distance returns the Euclidean distance between two positions.
func Distance(a, b Position) float64 {
	return math.Sqrt(DistanceSq(a, b))
}

// Circle is a circular region in sector coordinates. Inhibition zones and
// hex boundaries are both circles.
type Circle struct {
	Center Position
	Radius float64
}

// PointInCircle reports whether p lies inside c. The boundary is inclusive:
// a point at exactly the radius is inside.
func PointInCircle(p Position, c Circle) bool {
	return DistanceSq(p, c.Center) <= c.Radius*c.Radius
}

// CirclesIntersect reports whether two circles overlap. Touching circles
// (centre distance exactly equal to the radii sum) do not count.
func CirclesIntersect(a, b Circle) bool {
	distSq := DistanceSq(a.Center, b.Center)
	radiiSum := a.Radius + b.Radius
	return distSq < radiiSum*radiiSum
}

// CircleContained reports whether inner lies fully within outer,
// boundary inclusive.
func CircleContained(inner, outer Circle) bool {
	return Distance(inner.Center, outer.Center)+inner.Radius <= outer.Radius
}

// ClosestPointOutsideCircle returns the point on the edge of c nearest to p,
// pushed fractionally past the radius so the result tests as outside the
// zone. When p coincides with the centre the direction is degenerate and the
// point along the positive X axis is used.
func ClosestPointOutsideCircle(p Position, c Circle) Position {
	edgeRadius := c.Radius * 1.0001

	if p == c.Center {
		return Position{c.Center.X + edgeRadius, c.Center.Y}
	}

	dir := p.Sub(c.Center).normalize()
	return c.Center.Add(dir.Scale(edgeRadius))
}

// StepTowards moves from current towards target by at most maxStep,
// clamping to the target so the move never overshoots.
func StepTowards(current, target Position, maxStep float64) Position {
	dist := Distance(current, target)
	if dist <= maxStep {
		return target
	}
	scale := maxStep / dist
	return Position{
		X: current.X + (target.X-current.X)*scale,
		Y: current.Y + (target.Y-current.Y)*scale,
	}
}

// StandoffPoint returns a position at standoff distance from target along
// the line from target towards current. When the two coincide the point is
// taken along the positive X axis from target.
func StandoffPoint(current, target Position, standoff float64) Position {
	fromTarget := current.Sub(target)
	if fromTarget.magnitudeSq() < 1e-9 {
		return target.Add(Position{standoff, 0})
	}
	return target.Add(fromTarget.normalize().Scale(standoff))
}
