package puzzle

import (
	"github.com/samdwyer/runevault/internal/gamedata"
	"github.com/samdwyer/runevault/internal/world"
)

// Build places one node per catalog entry at its fraction of the critical
// path and wires edges.
//
// Positions come from the path, so every node sits on the traversable route;
// each is still snapped to the nearest floor cell in case the path was not
// derived from layout. Controls is filled as the inverse of Requires for
// node-to-node edges; edges to ids outside the catalog (artifacts) are left
// for the caller to complete.
func Build(layout *world.Layout, path []world.Point, catalog []gamedata.PuzzleDef) []Node {
	nodes := make([]Node, len(catalog))
	index := make(map[string]int, len(catalog))

	for i, def := range catalog {
		pos := world.NearestFloor(layout, world.Waypoint(path, def.Fraction))
		nodes[i] = Node{
			ID:       def.ID,
			Kind:     def.Kind,
			Label:    def.Label,
			Position: pos,
			Requires: append([]string{}, def.Requires...),
			Controls: []string{},
			Optional: def.Optional,
		}
		index[def.ID] = i
	}

	for i := range nodes {
		for _, req := range nodes[i].Requires {
			if j, ok := index[req]; ok {
				nodes[j].Controls = append(nodes[j].Controls, nodes[i].ID)
			}
		}
	}

	return nodes
}
