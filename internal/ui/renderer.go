package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/runevault/internal/level"
)

// Renderer draws composed frames to a screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the frame with the legend one row below it.
func (r *Renderer) Render(frame [][]Cell, legend []string) {
	r.screen.Clear()

	for y, row := range frame {
		for x, c := range row {
			r.screen.SetContent(x, y, c.Rune, c.Style)
		}
	}
	for i, line := range legend {
		r.RenderMessage(line, len(frame)+1+i)
	}

	r.screen.Show()
}

// RenderMessage writes a single line of text at row y.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	x := 0
	for _, ch := range msg {
		r.screen.SetContent(x, y, ch, style)
		x++
	}
}

// Preview shows def until the user presses q, Esc or Ctrl-C.
func Preview(def *level.Definition) error {
	frame, err := Frame(def)
	if err != nil {
		return err
	}
	screen, err := NewScreen()
	if err != nil {
		return err
	}
	defer screen.Close()

	return preview(screen, frame, Legend(def))
}

func preview(screen *Screen, frame [][]Cell, legend []string) error {
	renderer := NewRenderer(screen)
	for {
		renderer.Render(frame, legend)

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventKey:
			if quitKey(ev) {
				return nil
			}
		case *tcell.EventResize:
			screen.Sync()
		case nil:
			return nil
		}
	}
}

func quitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
