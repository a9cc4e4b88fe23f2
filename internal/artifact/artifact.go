// Package artifact distributes collectible artifacts over a carved level.
//
// Placement is fully deterministic: positions come from dead ends and path
// waypoints, flavor comes from fixed lookup tables. No randomness is drawn here.
package artifact

import (
	"github.com/samdwyer/runevault/internal/gamedata"
	"github.com/samdwyer/runevault/internal/world"
)

// Artifact is a placed collectible.
type Artifact struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Theme         gamedata.Theme  `json:"theme"`
	Rarity        gamedata.Rarity `json:"rarity"`
	Lore          string          `json:"lore"`
	Position      world.Point     `json:"position"`
	Prerequisites []string        `json:"prerequisites"`
	RewardUnits   int             `json:"rewardUnits"`
	Symbol        string          `json:"symbol"`
}

// Gated reports whether the artifact requires puzzle progress before pickup.
func (a Artifact) Gated() bool {
	return len(a.Prerequisites) > 0
}
