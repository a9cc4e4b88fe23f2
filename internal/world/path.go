package world

// FindPath returns a shortest start-to-exit route by breadth-first search.
// The route includes both endpoints. ok is false when exit is unreachable.
func FindPath(l *Layout, start, exit Point) (path []Point, ok bool) {
	if !l.IsFloor(start) || !l.IsFloor(exit) {
		return nil, false
	}

	cameFrom := make(map[Point]Point)
	visited := map[Point]bool{start: true}
	queue := []Point{start}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		if curr == exit {
			var reversed []Point
			for curr != start {
				reversed = append(reversed, curr)
				curr = cameFrom[curr]
			}
			reversed = append(reversed, start)

			path = make([]Point, len(reversed))
			for i, p := range reversed {
				path[len(reversed)-1-i] = p
			}
			return path, true
		}

		for _, d := range orthogonal {
			next := curr.Add(d)
			if l.IsFloor(next) && !visited[next] {
				visited[next] = true
				cameFrom[next] = curr
				queue = append(queue, next)
			}
		}
	}
	return nil, false
}

// ShortestPath is FindPath with a fallback: an unreachable exit yields the
// two-point route [start, exit]. Carved mazes never take the fallback; it
// guards hand-authored or corrupted layouts.
func ShortestPath(l *Layout, start, exit Point) []Point {
	if path, ok := FindPath(l, start, exit); ok {
		return path
	}
	return []Point{start, exit}
}

// Reachable returns every floor cell reachable from origin, in BFS order.
func Reachable(l *Layout, origin Point) []Point {
	if !l.IsFloor(origin) {
		return nil
	}
	visited := map[Point]bool{origin: true}
	order := []Point{origin}
	for i := 0; i < len(order); i++ {
		for _, d := range orthogonal {
			next := order[i].Add(d)
			if l.IsFloor(next) && !visited[next] {
				visited[next] = true
				order = append(order, next)
			}
		}
	}
	return order
}

// DeadEnds returns every non-border floor cell with at most one open
// neighbor, scanning rows top to bottom.
func DeadEnds(l *Layout) []Point {
	var ends []Point
	for y := 1; y < l.height-1; y++ {
		for x := 1; x < l.width-1; x++ {
			p := Pt(x, y)
			if l.IsFloor(p) && l.OpenNeighbors(p) <= 1 {
				ends = append(ends, p)
			}
		}
	}
	return ends
}

// NearestFloor returns p when it is floor, otherwise the closest floor cell by
// breadth-first ring search over the whole grid. It returns p unchanged if
// the grid has no floor.
func NearestFloor(l *Layout, p Point) Point {
	if l.IsFloor(p) {
		return p
	}
	if !l.InBounds(p) {
		p = Pt(clamp(p.X, 0, l.width-1), clamp(p.Y, 0, l.height-1))
		if l.IsFloor(p) {
			return p
		}
	}
	visited := map[Point]bool{p: true}
	queue := []Point{p}
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		for _, d := range orthogonal {
			next := curr.Add(d)
			if !l.InBounds(next) || visited[next] {
				continue
			}
			if l.IsFloor(next) {
				return next
			}
			visited[next] = true
			queue = append(queue, next)
		}
	}
	return p
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Waypoint returns the path cell at the given fraction of its length, with
// fraction clamped to [0,1]. It returns the zero Point for an empty path.
func Waypoint(path []Point, fraction float64) Point {
	if len(path) == 0 {
		return Point{}
	}
	i := int(fraction * float64(len(path)-1))
	return path[clamp(i, 0, len(path)-1)]
}
