package gamedata

import (
	"errors"

	"github.com/samdwyer/runevault/internal/rng"
)

// ObstacleRegistry holds loaded obstacle definitions and provides spawning utilities.
type ObstacleRegistry struct {
	obstacles   []ObstacleDef
	totalWeight int
}

// NewObstacleRegistry creates a registry from loaded obstacle definitions.
func NewObstacleRegistry(obstacles []ObstacleDef) *ObstacleRegistry {
	totalWeight := 0
	for _, o := range obstacles {
		totalWeight += o.Weight
	}
	return &ObstacleRegistry{
		obstacles:   obstacles,
		totalWeight: totalWeight,
	}
}

// LoadObstacleRegistry loads and creates a registry from the embedded spawn.json.
func LoadObstacleRegistry() (*ObstacleRegistry, error) {
	table, err := LoadSpawnTable()
	if err != nil {
		return nil, err
	}
	if len(table.Obstacles) == 0 {
		return nil, errors.New("no obstacles loaded from spawn.json")
	}
	return NewObstacleRegistry(table.Obstacles), nil
}

// SpawnRandom selects an obstacle definition using weighted probability.
// Obstacles with higher weight are more likely to be selected.
func (r *ObstacleRegistry) SpawnRandom(src *rng.Source) *ObstacleDef {
	if r.totalWeight <= 0 || len(r.obstacles) == 0 {
		return nil
	}

	roll := src.Intn(r.totalWeight)

	cumulative := 0
	for i := range r.obstacles {
		cumulative += r.obstacles[i].Weight
		if roll < cumulative {
			return &r.obstacles[i]
		}
	}

	// Fallback (shouldn't happen)
	return &r.obstacles[0]
}
