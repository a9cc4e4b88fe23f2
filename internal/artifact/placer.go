package artifact

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/runevault/internal/gamedata"
	"github.com/samdwyer/runevault/internal/world"
)

// MaxCandidates caps the number of distinct artifact positions.
const MaxCandidates = 6

// Path fractions used as waypoint candidates after dead ends.
var waypointFractions = []float64{0.15, 0.45, 0.65, 0.95}

// Candidates returns up to MaxCandidates distinct positions: dead ends in
// row-major order, then path waypoints. The start and exit cells are never
// candidates.
func Candidates(layout *world.Layout, path []world.Point, start, exit world.Point) []world.Point {
	seen := mapset.New[world.Point]()
	seen.Put(start)
	seen.Put(exit)

	pool := world.DeadEnds(layout)
	for _, f := range waypointFractions {
		pool = append(pool, world.Waypoint(path, f))
	}

	out := make([]world.Point, 0, MaxCandidates)
	for _, p := range pool {
		if len(out) == MaxCandidates {
			break
		}
		if seen.Has(p) {
			continue
		}
		seen.Put(p)
		out = append(out, p)
	}
	return out
}

// Place maps the ordered template list onto the candidate positions. When
// there are fewer candidates than templates the last candidate is reused.
// Reward units depend only on rarity; the symbol is looked up by theme,
// rarity and template index.
func Place(layout *world.Layout, path []world.Point, start, exit world.Point, catalog *gamedata.ArtifactsFile) []Artifact {
	candidates := Candidates(layout, path, start, exit)
	if len(candidates) == 0 {
		candidates = []world.Point{exit}
	}

	artifacts := make([]Artifact, len(catalog.Templates))
	for i, tpl := range catalog.Templates {
		artifacts[i] = Artifact{
			ID:            tpl.ID,
			Name:          tpl.Name,
			Theme:         tpl.Theme,
			Rarity:        tpl.Rarity,
			Lore:          tpl.Lore,
			Position:      candidates[min(i, len(candidates)-1)],
			Prerequisites: append([]string{}, tpl.Prerequisites...),
			RewardUnits:   catalog.RewardUnits(tpl.Rarity),
			Symbol:        catalog.Symbol(tpl.Theme, tpl.Rarity, i),
		}
	}
	return artifacts
}
