// Package level assembles a complete, immutable level definition from a seed.
//
// Generate is pure: the same Options always yield a structurally identical
// Definition and byte-identical JSON. Callers treat a Definition as read-only
// and reference puzzle nodes and artifacts by id.
package level

import (
	"encoding/json"

	"github.com/samdwyer/runevault/internal/artifact"
	"github.com/samdwyer/runevault/internal/gamedata"
	"github.com/samdwyer/runevault/internal/puzzle"
	"github.com/samdwyer/runevault/internal/world"
)

// Default level dimensions.
const (
	DefaultWidth  = 21
	DefaultHeight = 21
)

// Options are the inputs to Generate. Zero Width/Height select the defaults;
// empty ID/Name select derived values.
type Options struct {
	Seed   int64
	Width  int
	Height int
	ID     string
	Name   string
}

// SpawnProfile tells the runtime how to bias obstacle spawns and when to
// escalate them.
type SpawnProfile struct {
	Obstacles  []gamedata.ObstacleDef `json:"obstacles"`
	Milestones []int                  `json:"milestones"`
}

// Definition is a fully generated level.
type Definition struct {
	ID           string              `json:"id" jsonschema:"required"`
	Name         string              `json:"name"`
	Seed         int64               `json:"seed" jsonschema:"required"`
	Width        int                 `json:"width" jsonschema:"required,minimum=11"`
	Height       int                 `json:"height" jsonschema:"required,minimum=11"`
	Start        world.Point         `json:"start" jsonschema:"required"`
	Exit         world.Point         `json:"exit" jsonschema:"required"`
	Layout       []string            `json:"layout" jsonschema:"required"`
	CriticalPath []world.Point       `json:"criticalPath"`
	Nodes        []puzzle.Node       `json:"puzzleNodes" jsonschema:"required"`
	Artifacts    []artifact.Artifact `json:"artifacts" jsonschema:"required"`
	SolveOrder   []string            `json:"solveOrder"`
	Spawn        SpawnProfile        `json:"spawnProfile"`
	Theme        gamedata.ThemeDef   `json:"theme"`
}

// Grid parses the serialized layout back into a queryable grid.
func (d *Definition) Grid() (*world.Layout, error) {
	return world.ParseLayout(d.Layout)
}

// NodeByID returns the puzzle node with the given id, or nil if not found.
func (d *Definition) NodeByID(id string) *puzzle.Node {
	for i := range d.Nodes {
		if d.Nodes[i].ID == id {
			return &d.Nodes[i]
		}
	}
	return nil
}

// ArtifactByID returns the artifact with the given id, or nil if not found.
func (d *Definition) ArtifactByID(id string) *artifact.Artifact {
	for i := range d.Artifacts {
		if d.Artifacts[i].ID == id {
			return &d.Artifacts[i]
		}
	}
	return nil
}

// Marshal encodes the definition as JSON.
func (d *Definition) Marshal() ([]byte, error) {
	return json.Marshal(d)
}

// Unmarshal decodes a definition produced by Marshal.
func Unmarshal(data []byte) (Definition, error) {
	var def Definition
	err := json.Unmarshal(data, &def)
	return def, err
}
