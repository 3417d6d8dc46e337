package hexfleet

import "math"

// SystemGraph is the wormhole adjacency between star systems, keyed by
// system name.
type SystemGraph map[string][]string

// FindIntersystemPath returns the shortest sequence of system names from
// start to end over the wormhole graph, inclusive of both endpoints. All
// wormhole traversals cost the same, so breadth-first search finds the
// shortest route. Returns nil when either endpoint is unknown or no route
// exists.
func FindIntersystemPath(graph SystemGraph, start, end string) []string {
	if _, ok := graph[start]; !ok {
		return nil
	}
	if _, ok := graph[end]; !ok {
		return nil
	}
	if start == end {
		return []string{start}
	}

	prev := map[string]string{start: ""}
	queue := []string{start}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if current == end {
			break
		}
		for _, next := range graph[current] {
			if _, seen := prev[next]; seen {
				continue
			}
			prev[next] = current
			queue = append(queue, next)
		}
	}

	if _, ok := prev[end]; !ok {
		return nil
	}

	var path []string
	for at := end; at != ""; at = prev[at] {
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// FindHexJumpPath splits the straight line from start to end into waypoint
// hexes so that no leg exceeds maxRange. The result ends at exactly end;
// intermediate waypoints exclude start. A trip already within range, the
// zero-distance one included, yields just the destination.
func FindHexJumpPath(start, end HexCoord, maxRange int) []HexCoord {
	if maxRange <= 0 {
		return nil
	}
	dist := HexDistance(start, end)
	if dist <= maxRange {
		return []HexCoord{end}
	}

	segments := int(math.Ceil(float64(dist) / float64(maxRange)))
	startCube := axialToCube(start)
	endCube := axialToCube(end)

	var path []HexCoord
	for i := 1; i <= segments; i++ {
		t := float64(i) / float64(segments)
		waypoint := cubeRound(cubeLerp(startCube, endCube, t))
		// Rounding can land two samples on the same hex.
		if len(path) > 0 && path[len(path)-1] == waypoint {
			continue
		}
		if waypoint == start {
			continue
		}
		path = append(path, waypoint)
	}

	// Rounding of the final sample must not drift off the destination.
	if len(path) == 0 || path[len(path)-1] != end {
		path = append(path, end)
	}
	return path
}
