package level

import (
	"errors"
	"fmt"

	"github.com/samdwyer/runevault/internal/artifact"
	"github.com/samdwyer/runevault/internal/puzzle"
	"github.com/samdwyer/runevault/internal/world"
)

// ErrUnresolved is returned when a prerequisite id names no node or artifact.
var ErrUnresolved = errors.New("level: unresolved dependency id")

// ErrDuplicate is returned when two nodes or artifacts share an id.
var ErrDuplicate = errors.New("level: duplicate id")

// RefKind distinguishes the two arenas a Ref can point into.
type RefKind uint8

const (
	RefNode RefKind = iota
	RefArtifact
)

// Ref addresses a puzzle node or artifact by index into its slice.
type Ref struct {
	Kind  RefKind
	Index int
}

// DependencyGraph is the combined prerequisite graph over puzzle nodes and
// artifacts. Ids are resolved once at construction; afterwards all edges are
// index based.
type DependencyGraph struct {
	nodes     []puzzle.Node
	artifacts []artifact.Artifact
	requires  [][]int
}

// NewDependencyGraph resolves every Requires and Prerequisites id. Ids must be
// unique across nodes and artifacts.
func NewDependencyGraph(nodes []puzzle.Node, artifacts []artifact.Artifact) (*DependencyGraph, error) {
	g := &DependencyGraph{
		nodes:     nodes,
		artifacts: artifacts,
		requires:  make([][]int, len(nodes)+len(artifacts)),
	}

	index := make(map[string]int, len(nodes)+len(artifacts))
	add := func(id string, r Ref) error {
		if _, dup := index[id]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicate, id)
		}
		index[id] = g.vertex(r)
		return nil
	}
	for i, n := range nodes {
		if err := add(n.ID, Ref{Kind: RefNode, Index: i}); err != nil {
			return nil, err
		}
	}
	for i, a := range artifacts {
		if err := add(a.ID, Ref{Kind: RefArtifact, Index: i}); err != nil {
			return nil, err
		}
	}

	resolve := func(owner string, ids []string) ([]int, error) {
		out := make([]int, 0, len(ids))
		for _, id := range ids {
			v, ok := index[id]
			if !ok {
				return nil, fmt.Errorf("%w: %q required by %q", ErrUnresolved, id, owner)
			}
			out = append(out, v)
		}
		return out, nil
	}

	for i, n := range nodes {
		reqs, err := resolve(n.ID, n.Requires)
		if err != nil {
			return nil, err
		}
		g.requires[i] = reqs
	}
	for i, a := range artifacts {
		reqs, err := resolve(a.ID, a.Prerequisites)
		if err != nil {
			return nil, err
		}
		g.requires[len(nodes)+i] = reqs
	}
	return g, nil
}

// Len returns the number of vertices.
func (g *DependencyGraph) Len() int {
	return len(g.requires)
}

// Requires returns the direct prerequisites of r.
func (g *DependencyGraph) Requires(r Ref) []Ref {
	reqs := g.requires[g.vertex(r)]
	out := make([]Ref, len(reqs))
	for i, v := range reqs {
		out[i] = g.ref(v)
	}
	return out
}

// Closure returns every transitive prerequisite of r, each once, in
// discovery order.
func (g *DependencyGraph) Closure(r Ref) []Ref {
	seen := make(map[int]bool)
	var out []Ref
	stack := append([]int{}, g.requires[g.vertex(r)]...)
	for len(stack) > 0 {
		v := stack[0]
		stack = stack[1:]
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, g.ref(v))
		stack = append(stack, g.requires[v]...)
	}
	return out
}

// SolveOrder returns every vertex in an order that honors all prerequisites.
func (g *DependencyGraph) SolveOrder() ([]Ref, error) {
	order, err := puzzle.TopoSort(g.requires)
	if err != nil {
		return nil, err
	}
	refs := make([]Ref, len(order))
	for i, v := range order {
		refs[i] = g.ref(v)
	}
	return refs, nil
}

// ID returns the string id of r.
func (g *DependencyGraph) ID(r Ref) string {
	if r.Kind == RefNode {
		return g.nodes[r.Index].ID
	}
	return g.artifacts[r.Index].ID
}

// Position returns the grid position of r.
func (g *DependencyGraph) Position(r Ref) world.Point {
	if r.Kind == RefNode {
		return g.nodes[r.Index].Position
	}
	return g.artifacts[r.Index].Position
}

// Lookup resolves a string id to a Ref.
func (g *DependencyGraph) Lookup(id string) (Ref, bool) {
	for i := range g.nodes {
		if g.nodes[i].ID == id {
			return Ref{Kind: RefNode, Index: i}, true
		}
	}
	for i := range g.artifacts {
		if g.artifacts[i].ID == id {
			return Ref{Kind: RefArtifact, Index: i}, true
		}
	}
	return Ref{}, false
}

func (g *DependencyGraph) vertex(r Ref) int {
	if r.Kind == RefNode {
		return r.Index
	}
	return len(g.nodes) + r.Index
}

func (g *DependencyGraph) ref(v int) Ref {
	if v < len(g.nodes) {
		return Ref{Kind: RefNode, Index: v}
	}
	return Ref{Kind: RefArtifact, Index: v - len(g.nodes)}
}
