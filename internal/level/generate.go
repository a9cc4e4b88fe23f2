package level

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/samdwyer/runevault/internal/artifact"
	"github.com/samdwyer/runevault/internal/gamedata"
	"github.com/samdwyer/runevault/internal/puzzle"
	"github.com/samdwyer/runevault/internal/rng"
	"github.com/samdwyer/runevault/internal/world"
)

// levelNamespace scopes the name-based UUIDs derived for generated levels.
var levelNamespace = uuid.MustParse("4d7e6a1c-9b32-4f0e-8c55-1a2b3c4d5e6f")

// Embedded catalogs are parsed once and never mutated; every Definition gets
// its own copies of anything it exposes.
var (
	puzzleCatalog   = sync.OnceValue(gamedata.MustLoadPuzzles)
	artifactCatalog = sync.OnceValue(gamedata.MustLoadArtifacts)
	themeCatalog    = sync.OnceValue(gamedata.MustLoadTheme)
	spawnCatalog    = sync.OnceValue(gamedata.MustLoadSpawnTable)
)

// DefaultID derives the level id for a seed and normalized dimensions.
func DefaultID(seed int64, width, height int) string {
	name := fmt.Sprintf("%d:%d:%d", seed, width, height)
	return uuid.NewSHA1(levelNamespace, []byte(name)).String()
}

// Dimensions returns the grid size Generate will use for o.
func (o Options) Dimensions() (width, height int) {
	width, height = o.Width, o.Height
	if width == 0 {
		width = DefaultWidth
	}
	if height == 0 {
		height = DefaultHeight
	}
	return world.NormalizeDimension(width), world.NormalizeDimension(height)
}

// Generate builds a level from opts. Dimensions below world.MinDimension are
// raised to it and even dimensions are bumped to the next odd value.
//
// Generate panics only if the embedded catalogs are inconsistent, which
// the gamedata tests rule out.
func Generate(opts Options) Definition {
	width, height := opts.Dimensions()

	start := world.Pt(1, 1)
	exit := world.Pt(width-2, height-2)

	src := rng.New(opts.Seed)
	layout := world.Carve(width, height, start, exit, src)
	path := world.ShortestPath(layout, start, exit)

	nodes := puzzle.Build(layout, path, puzzleCatalog())
	artifacts := artifact.Place(layout, path, start, exit, artifactCatalog())
	linkArtifactControls(nodes, artifacts)

	graph, err := NewDependencyGraph(nodes, artifacts)
	if err != nil {
		panic(err)
	}
	order, err := graph.SolveOrder()
	if err != nil {
		panic(err)
	}
	solve := make([]string, len(order))
	for i, r := range order {
		solve[i] = graph.ID(r)
	}

	theme := cloneTheme(themeCatalog())
	spawn := spawnCatalog()

	def := Definition{
		ID:           opts.ID,
		Name:         opts.Name,
		Seed:         opts.Seed,
		Width:        width,
		Height:       height,
		Start:        start,
		Exit:         exit,
		Layout:       layout.Serialize(),
		CriticalPath: path,
		Nodes:        nodes,
		Artifacts:    artifacts,
		SolveOrder:   solve,
		Spawn: SpawnProfile{
			Obstacles:  append([]gamedata.ObstacleDef{}, spawn.Obstacles...),
			Milestones: append([]int{}, spawn.Milestones...),
		},
		Theme: theme,
	}
	if def.ID == "" {
		def.ID = DefaultID(opts.Seed, width, height)
	}
	if def.Name == "" {
		def.Name = theme.Name
	}
	return def
}

// linkArtifactControls records each gated artifact in the Controls list of
// the puzzle nodes it depends on.
func linkArtifactControls(nodes []puzzle.Node, artifacts []artifact.Artifact) {
	index := make(map[string]int, len(nodes))
	for i, n := range nodes {
		index[n.ID] = i
	}
	for _, a := range artifacts {
		for _, req := range a.Prerequisites {
			if i, ok := index[req]; ok {
				nodes[i].Controls = append(nodes[i].Controls, a.ID)
			}
		}
	}
}

func cloneTheme(t gamedata.ThemeDef) gamedata.ThemeDef {
	t.Pantheons = append([]gamedata.PantheonDef{}, t.Pantheons...)
	return t
}
