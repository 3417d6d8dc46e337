package hexfleet

import (
	"math/rand"
	"testing"
)

// FuzzFindHexJumpPath verifies the waypoint splitter's requirements hold
// for random endpoints and ranges: no leg ever exceeds the range and the
// path always terminates at the destination.
func FuzzFindHexJumpPath(f *testing.F) {
	f.Add(int64(42))
	f.Add(int64(123456))
	f.Add(int64(0))

	f.Fuzz(func(t *testing.T, seed int64) {
		rng := rand.New(rand.NewSource(seed))

		for i := 0; i < 50; i++ {
			start := HexCoord{Q: rng.Intn(41) - 20, R: rng.Intn(41) - 20}
			end := HexCoord{Q: rng.Intn(41) - 20, R: rng.Intn(41) - 20}
			maxRange := 1 + rng.Intn(8)

			path := FindHexJumpPath(start, end, maxRange)
			if start == end {
				if len(path) != 1 || path[0] != end {
					t.Fatalf("zero-distance path = %v, want [%v]", path, end)
				}
				continue
			}
			if len(path) == 0 {
				t.Fatalf("empty path from %v to %v at range %d", start, end, maxRange)
			}
			if path[len(path)-1] != end {
				t.Fatalf("path %v from %v does not end at %v", path, start, end)
			}

			prev := start
			for _, wp := range path {
				if d := HexDistance(prev, wp); d > maxRange {
					t.Fatalf("leg %v -> %v distance %d exceeds range %d (path %v, start %v)",
						prev, wp, d, maxRange, path, start)
				}
				prev = wp
			}
		}
	})
}
