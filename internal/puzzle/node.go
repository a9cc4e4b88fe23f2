// Package puzzle places puzzle nodes along a level's critical path and wires
// their prerequisite edges into an acyclic dependency graph.
package puzzle

import (
	"github.com/samdwyer/runevault/internal/gamedata"
	"github.com/samdwyer/runevault/internal/world"
)

// Node is a placed puzzle mechanic.
//
// Requires holds prerequisite ids: other nodes, or artifact ids for a
// pedestal. Controls holds the ids this node unlocks.
type Node struct {
	ID       string            `json:"id"`
	Kind     gamedata.NodeKind `json:"kind"`
	Label    string            `json:"label"`
	Position world.Point       `json:"position"`
	Requires []string          `json:"requires"`
	Controls []string          `json:"controls"`
	Optional bool              `json:"optional,omitempty"`
}
