package game

import "github.com/samdwyer/runevault/internal/yield"

// Strategy selects the order in which a run visits targets.
type Strategy int

const (
	// StrategyOrdered follows the level's solve order, so every prerequisite
	// is met before the thing that needs it.
	StrategyOrdered Strategy = iota
	// StrategyGreedy grabs every artifact first in placement order and solves
	// puzzles afterwards. Gated artifacts are collected with integrity violated.
	StrategyGreedy
)

// String returns a human-readable strategy name.
func (s Strategy) String() string {
	switch s {
	case StrategyOrdered:
		return "ordered"
	case StrategyGreedy:
		return "greedy"
	default:
		return "unknown"
	}
}

// ParseStrategy maps a name back to a Strategy.
func ParseStrategy(name string) (Strategy, bool) {
	switch name {
	case "ordered":
		return StrategyOrdered, true
	case "greedy":
		return StrategyGreedy, true
	default:
		return 0, false
	}
}

// Default simulation tuning.
const (
	DefaultStepSeconds         = 0.5
	DefaultSolveSeconds        = 3.0
	DefaultPointsPerUnit       = 20.0
	DefaultObstacleInterval    = 6
	DefaultObstacleChance      = 0.3
	DefaultMilestoneEscalation = 0.1
)

// Config holds run simulation options.
type Config struct {
	// Seed for obstacle rolls, independent of the level seed.
	Seed     int64
	Strategy Strategy
	Engine   yield.Engine

	StepSeconds         float64 // Seconds per grid step
	SolveSeconds        float64 // Seconds spent at each puzzle node
	PointsPerUnit       float64 // Base points per artifact reward unit
	ObstacleInterval    int     // Steps between obstacle rolls
	ObstacleChance      float64 // Chance a roll spawns an obstacle
	MilestoneEscalation float64 // Added to ObstacleChance per milestone reached
	NoObstacles         bool    // Skip obstacle rolls entirely
}

// withDefaults fills zero fields with the package defaults. A zero
// ObstacleChance means the default; set NoObstacles to disable rolls.
func (c Config) withDefaults() Config {
	if c.StepSeconds == 0 {
		c.StepSeconds = DefaultStepSeconds
	}
	if c.SolveSeconds == 0 {
		c.SolveSeconds = DefaultSolveSeconds
	}
	if c.PointsPerUnit == 0 {
		c.PointsPerUnit = DefaultPointsPerUnit
	}
	if c.ObstacleInterval <= 0 {
		c.ObstacleInterval = DefaultObstacleInterval
	}
	if c.ObstacleChance == 0 {
		c.ObstacleChance = DefaultObstacleChance
	}
	if c.MilestoneEscalation == 0 {
		c.MilestoneEscalation = DefaultMilestoneEscalation
	}
	return c
}
