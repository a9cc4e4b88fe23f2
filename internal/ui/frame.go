package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/runevault/internal/gamedata"
	"github.com/samdwyer/runevault/internal/level"
	"github.com/samdwyer/runevault/internal/world"
)

// Cell is one composed screen cell.
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// Glyphs drawn over the grid.
const (
	GlyphStart    = 'S'
	GlyphExit     = 'E'
	GlyphPath     = ':'
	GlyphArtifact = '*'
)

var nodeGlyphs = map[gamedata.NodeKind]rune{
	gamedata.KindKey:              'k',
	gamedata.KindLock:             'L',
	gamedata.KindSwitch:           's',
	gamedata.KindPressurePlate:    'p',
	gamedata.KindRuneGate:         'R',
	gamedata.KindArtifactPedestal: 'P',
	gamedata.KindSecretWall:       'W',
}

// NodeGlyph returns the glyph for a puzzle node kind, '?' if unknown.
func NodeGlyph(kind gamedata.NodeKind) rune {
	if r, ok := nodeGlyphs[kind]; ok {
		return r
	}
	return '?'
}

// Frame composes def into rows of cells. Layers, bottom to top: tiles,
// critical path, artifacts, puzzle nodes, start and exit.
func Frame(def *level.Definition) ([][]Cell, error) {
	grid, err := def.Grid()
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	pal := def.Theme.Palette
	wall := tcell.StyleDefault.Foreground(pal.Color(pal.Wall, tcell.ColorDarkGray))
	floor := tcell.StyleDefault.Foreground(pal.Color(pal.Floor, tcell.ColorGray))
	path := tcell.StyleDefault.Foreground(pal.Color(pal.Path, tcell.ColorTeal))
	node := tcell.StyleDefault.Foreground(pal.Color(pal.Node, tcell.ColorFuchsia)).Bold(true)

	rows := make([][]Cell, grid.Height())
	for y := range rows {
		rows[y] = make([]Cell, grid.Width())
		for x := range rows[y] {
			tile := grid.At(world.Pt(x, y))
			style := floor
			if tile == world.TileWall {
				style = wall
			}
			rows[y][x] = Cell{Rune: tile.Rune(), Style: style}
		}
	}

	set := func(p world.Point, r rune, style tcell.Style) {
		if grid.InBounds(p) {
			rows[p.Y][p.X] = Cell{Rune: r, Style: style}
		}
	}

	for _, p := range def.CriticalPath {
		set(p, GlyphPath, path)
	}
	for _, a := range def.Artifacts {
		style := tcell.StyleDefault.Foreground(def.Theme.PantheonColor(a.Theme, tcell.ColorYellow)).Bold(true)
		set(a.Position, GlyphArtifact, style)
	}
	for _, n := range def.Nodes {
		set(n.Position, NodeGlyph(n.Kind), node)
	}
	set(def.Start, GlyphStart, tcell.StyleDefault.Foreground(pal.Color(pal.Start, tcell.ColorGreen)).Bold(true))
	set(def.Exit, GlyphExit, tcell.StyleDefault.Foreground(pal.Color(pal.Exit, tcell.ColorRed)).Bold(true))

	return rows, nil
}

// Legend returns the caption lines drawn under the frame.
func Legend(def *level.Definition) []string {
	return []string{
		fmt.Sprintf("%s  seed %d  %dx%d", def.Name, def.Seed, def.Width, def.Height),
		fmt.Sprintf("%c start  %c exit  %c path  %c artifact (%d)  nodes: k L s p R P",
			GlyphStart, GlyphExit, GlyphPath, GlyphArtifact, len(def.Artifacts)),
		"q / Esc to quit",
	}
}
