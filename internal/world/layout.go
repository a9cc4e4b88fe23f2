package world

import (
	"errors"
	"fmt"
)

// MinDimension is the smallest width or height a generated maze may have.
const MinDimension = 11

// ErrEmptyLayout is returned when parsing a layout with no rows or columns.
var ErrEmptyLayout = errors.New("world: layout must have at least one row and one column")

// Layout is a rectangular grid of wall and floor tiles. It is immutable once
// built; all accessors return copies.
type Layout struct {
	width  int
	height int
	cells  []Tile
}

// NormalizeDimension corrects a requested width or height to a valid maze
// size: at least MinDimension and odd. Even values round up.
func NormalizeDimension(n int) int {
	if n < MinDimension {
		return MinDimension
	}
	if n%2 == 0 {
		return n + 1
	}
	return n
}

// newLayout creates a layout filled with walls.
func newLayout(width, height int) *Layout {
	cells := make([]Tile, width*height)
	for i := range cells {
		cells[i] = TileWall
	}
	return &Layout{width: width, height: height, cells: cells}
}

// ParseLayout builds a layout from serialized rows ('#' wall, '.' floor).
func ParseLayout(rows []string) (*Layout, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyLayout
	}
	width := len([]rune(rows[0]))
	l := newLayout(width, len(rows))
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != width {
			return nil, fmt.Errorf("world: row %d has width %d, want %d", y, len(runes), width)
		}
		for x, r := range runes {
			tile, ok := ParseTile(r)
			if !ok {
				return nil, fmt.Errorf("world: unknown tile %q at (%d,%d)", r, x, y)
			}
			l.cells[y*width+x] = tile
		}
	}
	return l, nil
}

// Width returns the number of columns.
func (l *Layout) Width() int { return l.width }

// Height returns the number of rows.
func (l *Layout) Height() int { return l.height }

// InBounds reports whether p lies inside the grid.
func (l *Layout) InBounds(p Point) bool {
	return p.X >= 0 && p.X < l.width && p.Y >= 0 && p.Y < l.height
}

// IsBorder reports whether p lies on the outermost ring of the grid.
func (l *Layout) IsBorder(p Point) bool {
	return p.X == 0 || p.Y == 0 || p.X == l.width-1 || p.Y == l.height-1
}

// At returns the tile at p. Out-of-bounds positions read as wall.
func (l *Layout) At(p Point) Tile {
	if !l.InBounds(p) {
		return TileWall
	}
	return l.cells[p.Y*l.width+p.X]
}

// IsFloor reports whether p is an in-bounds floor tile.
func (l *Layout) IsFloor(p Point) bool {
	return l.At(p).IsPassable()
}

// OpenNeighbors counts orthogonal floor neighbors of p.
func (l *Layout) OpenNeighbors(p Point) int {
	n := 0
	for _, d := range orthogonal {
		if l.IsFloor(p.Add(d)) {
			n++
		}
	}
	return n
}

// FloorCount returns the number of floor tiles.
func (l *Layout) FloorCount() int {
	n := 0
	for _, t := range l.cells {
		if t.IsPassable() {
			n++
		}
	}
	return n
}

// Serialize returns the grid as one string per row.
func (l *Layout) Serialize() []string {
	rows := make([]string, l.height)
	buf := make([]rune, l.width)
	for y := 0; y < l.height; y++ {
		for x := 0; x < l.width; x++ {
			buf[x] = l.cells[y*l.width+x].Rune()
		}
		rows[y] = string(buf)
	}
	return rows
}

func (l *Layout) set(p Point, t Tile) {
	if l.InBounds(p) {
		l.cells[p.Y*l.width+p.X] = t
	}
}
