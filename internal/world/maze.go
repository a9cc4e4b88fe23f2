package world

import "github.com/samdwyer/runevault/internal/rng"

// Two-cell stride offsets used by the carver, same order as orthogonal.
var strides = [4]Point{{0, -2}, {0, 2}, {-2, 0}, {2, 0}}

// Carve generates a perfect maze with an iterative randomized depth-first
// backtracker and returns the resulting layout.
//
// Width and height are normalized with NormalizeDimension. Carving starts at
// start and walks two-cell strides, leaving a one-cell wall border. The floor
// set is a single connected component. Start and exit are forced open after
// carving in case either lands on an uncarved cell.
func Carve(width, height int, start, exit Point, src *rng.Source) *Layout {
	width = NormalizeDimension(width)
	height = NormalizeDimension(height)
	l := newLayout(width, height)

	origin := start
	if !isInterior(l, origin) || origin.X%2 == 0 || origin.Y%2 == 0 {
		origin = Pt(1, 1)
	}

	stack := []Point{origin}
	l.set(origin, TileFloor)

	candidates := make([]Point, 0, len(strides))
	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		candidates = candidates[:0]

		for _, d := range strides {
			next := curr.Add(d)
			if isInterior(l, next) && l.At(next) == TileWall {
				candidates = append(candidates, d)
			}
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		d := candidates[src.Intn(len(candidates))]
		wall := Pt(curr.X+d.X/2, curr.Y+d.Y/2)
		next := curr.Add(d)
		l.set(wall, TileFloor)
		l.set(next, TileFloor)
		stack = append(stack, next)
	}

	forceOpen(l, start)
	forceOpen(l, exit)
	return l
}

// isInterior reports whether p is inside the one-cell wall border.
func isInterior(l *Layout, p Point) bool {
	return p.X > 0 && p.X < l.width-1 && p.Y > 0 && p.Y < l.height-1
}

// forceOpen opens p and, if it has no open neighbor, links it to the first
// interior neighbor so it joins the carved component. A corner has no
// interior neighbor and is bridged through the adjacent border cell.
func forceOpen(l *Layout, p Point) {
	if !l.InBounds(p) {
		return
	}
	l.set(p, TileFloor)
	if l.OpenNeighbors(p) > 0 {
		return
	}
	for _, d := range orthogonal {
		n := p.Add(d)
		if isInterior(l, n) {
			l.set(n, TileFloor)
			return
		}
	}
	for _, d := range orthogonal {
		n := p.Add(d)
		if !l.InBounds(n) {
			continue
		}
		for _, d2 := range orthogonal {
			if m := n.Add(d2); isInterior(l, m) {
				l.set(n, TileFloor)
				l.set(m, TileFloor)
				return
			}
		}
	}
}
