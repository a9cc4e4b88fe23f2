// Package yield converts collection events into utility points and
// token-equivalent reward units.
//
// The engine is precondition based: inputs are assumed non-negative and the
// rarity tag known. Nothing here validates, clamps or returns an error.
package yield

import (
	"math"

	"github.com/samdwyer/runevault/internal/gamedata"
)

// UtilityPointsPerToken is the fixed exchange rate from points to tokens.
const UtilityPointsPerToken = 100

// Multiplier constants.
const (
	ComboStep        = 0.1
	IntegrityHonored = 1.0
	IntegrityPenalty = 0.4
)

var rarityMultipliers = map[gamedata.Rarity]float64{
	gamedata.RarityCommon: 1.0,
	gamedata.RarityRare:   2.5,
	gamedata.RarityEpic:   7.5,
	gamedata.RarityMythic: 25.0,
}

// RarityMultiplier returns the multiplier for a rarity tier.
func RarityMultiplier(r gamedata.Rarity) float64 {
	return rarityMultipliers[r]
}

// Factors are the inputs of one collection event.
type Factors struct {
	BasePoints       float64         `json:"basePoints"`
	Rarity           gamedata.Rarity `json:"rarity"`
	Combo            int             `json:"combo"`
	IntegrityHonored bool            `json:"integrityHonored"`
}

// Multipliers is the breakdown applied to the base points.
type Multipliers struct {
	Rarity    float64 `json:"rarity"`
	Combo     float64 `json:"combo"`
	Integrity float64 `json:"integrity"`
	Total     float64 `json:"total"`
}

// Result is the outcome of one yield calculation.
type Result struct {
	UtilityPoints int         `json:"utilityPoints"`
	TokenUnits    int         `json:"tokenUnits"`
	RawPoints     float64     `json:"rawPoints"`
	Multipliers   Multipliers `json:"multipliers"`
}

// Engine computes yields. The zero value leaves the combo multiplier
// unbounded; a positive ComboCap limits the combo count that contributes.
type Engine struct {
	ComboCap int
}

// Calculate applies the rarity, combo and integrity multipliers to f.
func (e Engine) Calculate(f Factors) Result {
	combo := f.Combo
	if e.ComboCap > 0 && combo > e.ComboCap {
		combo = e.ComboCap
	}

	m := Multipliers{
		Rarity:    RarityMultiplier(f.Rarity),
		Combo:     1 + float64(combo)*ComboStep,
		Integrity: IntegrityPenalty,
	}
	if f.IntegrityHonored {
		m.Integrity = IntegrityHonored
	}
	m.Total = m.Rarity * m.Combo * m.Integrity

	raw := f.BasePoints * m.Rarity * m.Combo * m.Integrity
	points := int(math.Round(raw))
	return Result{
		UtilityPoints: points,
		TokenUnits:    points / UtilityPointsPerToken,
		RawPoints:     raw,
		Multipliers:   m,
	}
}

// CalculateUtilityYield computes a yield with an unbounded combo multiplier.
func CalculateUtilityYield(f Factors) Result {
	return Engine{}.Calculate(f)
}
