package yield

import "math"

// Run finalization constants.
const (
	ConversionRate     = 0.05
	SpeedBonus         = 1.5
	SpeedBonusDeadline = 120.0
)

// Tier labels a finished run.
type Tier string

const (
	TierExceptional Tier = "EXCEPTIONAL"
	TierStandard    Tier = "STANDARD"
)

// Payout summarizes a finished run.
type Payout struct {
	TotalScore      float64 `json:"totalScore"`
	RelicsCollected int     `json:"relicsCollected"`
	ElapsedSeconds  float64 `json:"elapsedSeconds"`
	SpeedMultiplier float64 `json:"speedMultiplier"`
	Tokens          float64 `json:"tokens"`
	Tier            Tier    `json:"tier"`
}

// FinalizeRunPayout converts a run's total score into tokens at the flat
// conversion rate, with the speed bonus when the run finished before the
// deadline. Tokens are rounded to two decimals.
func FinalizeRunPayout(totalScore float64, relicsCollected int, elapsedSeconds float64) Payout {
	p := Payout{
		TotalScore:      totalScore,
		RelicsCollected: relicsCollected,
		ElapsedSeconds:  elapsedSeconds,
		SpeedMultiplier: 1,
		Tier:            TierStandard,
	}
	if elapsedSeconds < SpeedBonusDeadline {
		p.SpeedMultiplier = SpeedBonus
		p.Tier = TierExceptional
	}
	p.Tokens = math.Round(totalScore*ConversionRate*p.SpeedMultiplier*100) / 100
	return p
}
