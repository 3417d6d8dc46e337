package hexfleet

import (
	"fmt"
	"math"
)

// HexCoord is an axial coordinate on a pointy-top hex grid.
type HexCoord struct {
	Q int
	R int
}

func (h HexCoord) String() string {
	return fmt.Sprintf("(%d,%d)", h.Q, h.R)
}

// HexDistance returns the grid distance between two hexes in axial
// coordinates.
func HexDistance(a, b HexCoord) int {
	dq := a.Q - b.Q
	dr := a.R - b.R
	ds := (-a.Q - a.R) - (-b.Q - b.R)
	return (abs(dq) + abs(dr) + abs(ds)) / 2
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

type cubeCoord struct {
	x, y, z float64
}

func axialToCube(h HexCoord) cubeCoord {
	x := float64(h.Q)
	z := float64(h.R)
	return cubeCoord{x: x, y: -x - z, z: z}
}

func cubeLerp(a, b cubeCoord, t float64) cubeCoord {
	return cubeCoord{
		x: a.x + (b.x-a.x)*t,
		y: a.y + (b.y-a.y)*t,
		z: a.z + (b.z-a.z)*t,
	}
}

// cubeRound rounds fractional cube coordinates to the nearest hex,
// re-deriving the component with the largest rounding error so the
// cube constraint x+y+z=0 holds.
func cubeRound(c cubeCoord) HexCoord {
	rx := math.Round(c.x)
	ry := math.Round(c.y)
	rz := math.Round(c.z)

	dx := math.Abs(rx - c.x)
	dy := math.Abs(ry - c.y)
	dz := math.Abs(rz - c.z)

	switch {
	case dx > dy && dx > dz:
		rx = -ry - rz
	case dy > dz:
		ry = -rx - rz
	default:
		rz = -rx - ry
	}

	return HexCoord{Q: int(rx), R: int(rz)}
}
