package hexfleet

import (
	"reflect"
	"testing"
)

func TestFindIntersystemPath(t *testing.T) {
	graph := SystemGraph{
		"Sol":    {"Alpha"},
		"Alpha":  {"Sol", "Vega"},
		"Vega":   {"Alpha", "Rigel"},
		"Rigel":  {"Vega"},
		"Island": nil,
	}

	tests := []struct {
		name       string
		start, end string
		want       []string
	}{
		{"direct neighbor", "Sol", "Alpha", []string{"Sol", "Alpha"}},
		{"two hops", "Sol", "Vega", []string{"Sol", "Alpha", "Vega"}},
		{"three hops", "Sol", "Rigel", []string{"Sol", "Alpha", "Vega", "Rigel"}},
		{"same system", "Sol", "Sol", []string{"Sol"}},
		{"unreachable", "Sol", "Island", nil},
		{"unknown start", "Nowhere", "Sol", nil},
		{"unknown end", "Sol", "Nowhere", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindIntersystemPath(graph, tt.start, tt.end)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FindIntersystemPath(%q, %q) = %v, want %v", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestFindHexJumpPathWithinRange(t *testing.T) {
	got := FindHexJumpPath(HexCoord{0, 0}, HexCoord{3, 0}, 5)
	want := []HexCoord{{3, 0}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("within-range path = %v, want %v", got, want)
	}
}

func TestFindHexJumpPathStraightLine(t *testing.T) {
	// 12 hexes at range 5 needs ceil(12/5) = 3 segments of 4.
	got := FindHexJumpPath(HexCoord{0, 0}, HexCoord{12, 0}, 5)
	want := []HexCoord{{4, 0}, {8, 0}, {12, 0}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("straight-line path = %v, want %v", got, want)
	}
}

func TestFindHexJumpPathProperties(t *testing.T) {
	tests := []struct {
		name     string
		start    HexCoord
		end      HexCoord
		maxRange int
	}{
		{"long straight", HexCoord{0, 0}, HexCoord{23, 0}, 5},
		{"diagonal", HexCoord{0, 0}, HexCoord{7, -13}, 4},
		{"negative quadrant", HexCoord{5, 5}, HexCoord{-11, -2}, 3},
		{"range one", HexCoord{0, 0}, HexCoord{6, 1}, 1},
		{"just over range", HexCoord{0, 0}, HexCoord{6, 0}, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertJumpPathValid(t, tt.start, tt.end, tt.maxRange)
		})
	}
}

// assertJumpPathValid checks the two planning requirements: every leg stays
// within max range and the path ends at exactly the destination.
func assertJumpPathValid(t *testing.T, start, end HexCoord, maxRange int) {
	t.Helper()
	path := FindHexJumpPath(start, end, maxRange)
	if len(path) == 0 {
		t.Fatalf("no path from %v to %v at range %d", start, end, maxRange)
	}
	if path[len(path)-1] != end {
		t.Fatalf("path %v does not end at %v", path, end)
	}
	prev := start
	for i, wp := range path {
		if d := HexDistance(prev, wp); d > maxRange {
			t.Fatalf("leg %d (%v -> %v) has distance %d > range %d in path %v", i, prev, wp, d, maxRange, path)
		}
		if wp == prev {
			t.Fatalf("duplicate consecutive waypoint %v in path %v", wp, path)
		}
		prev = wp
	}
}

func TestFindHexJumpPathDegenerate(t *testing.T) {
	// Zero distance is a trip within range: the path is the destination.
	want := []HexCoord{{2, 2}}
	if got := FindHexJumpPath(HexCoord{2, 2}, HexCoord{2, 2}, 5); !reflect.DeepEqual(got, want) {
		t.Errorf("zero-distance path = %v, want %v", got, want)
	}
	if got := FindHexJumpPath(HexCoord{0, 0}, HexCoord{4, 0}, 0); got != nil {
		t.Errorf("non-positive range path = %v, want nil", got)
	}
}
