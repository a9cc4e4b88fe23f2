package level

import (
	"errors"
	"fmt"

	"github.com/samdwyer/runevault/internal/world"
)

// ErrInvalid wraps every problem reported by Validate.
var ErrInvalid = errors.New("level: invalid definition")

// Validate checks the structural guarantees of a definition: the layout
// parses with the declared dimensions and a wall border, every floor cell is
// reachable from start, start reaches exit, nodes and artifacts sit on floor,
// every id is unique and resolves, the dependency graph is acyclic and SolveOrder lists
// every id after its prerequisites.
func Validate(def Definition) error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	grid, err := def.Grid()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if grid.Width() != def.Width || grid.Height() != def.Height {
		fail("layout is %dx%d, declared %dx%d", grid.Width(), grid.Height(), def.Width, def.Height)
	}
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			p := world.Pt(x, y)
			if grid.IsBorder(p) && grid.IsFloor(p) && p != def.Start && p != def.Exit {
				fail("border cell %s is open", p)
			}
		}
	}

	if !grid.IsFloor(def.Start) {
		fail("start %s is not floor", def.Start)
	}
	if !grid.IsFloor(def.Exit) {
		fail("exit %s is not floor", def.Exit)
	}
	if _, ok := world.FindPath(grid, def.Start, def.Exit); !ok {
		fail("exit %s unreachable from start %s", def.Exit, def.Start)
	}
	if n := len(world.Reachable(grid, def.Start)); n != grid.FloorCount() {
		fail("%d of %d floor cells reachable from start", n, grid.FloorCount())
	}

	for _, n := range def.Nodes {
		if !grid.IsFloor(n.Position) {
			fail("node %q at %s is not on floor", n.ID, n.Position)
		}
	}
	for _, a := range def.Artifacts {
		if !grid.IsFloor(a.Position) {
			fail("artifact %q at %s is not on floor", a.ID, a.Position)
		}
	}

	graph, err := NewDependencyGraph(def.Nodes, def.Artifacts)
	if err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalid, err))
		return errors.Join(errs...)
	}
	if _, err := graph.SolveOrder(); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalid, err))
		return errors.Join(errs...)
	}

	if len(def.SolveOrder) != graph.Len() {
		fail("solve order has %d ids, want %d", len(def.SolveOrder), graph.Len())
	}
	done := make(map[string]bool, len(def.SolveOrder))
	for _, id := range def.SolveOrder {
		ref, ok := graph.Lookup(id)
		if !ok {
			fail("solve order names unknown id %q", id)
			continue
		}
		for _, req := range graph.Requires(ref) {
			if !done[graph.ID(req)] {
				fail("%q is ordered before its prerequisite %q", id, graph.ID(req))
			}
		}
		done[id] = true
	}

	return errors.Join(errs...)
}
