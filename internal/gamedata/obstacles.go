package gamedata

// ObstacleDef defines an obstacle the runtime may spawn while a level is played.
type ObstacleDef struct {
	ID          string  `json:"id"`          // Unique identifier (e.g., "draugr")
	Name        string  `json:"name"`        // Display name
	Weight      int     `json:"weight"`      // Relative spawn bias (higher = more common)
	BreaksCombo bool    `json:"breaksCombo"` // Encounter resets the pickup combo
	TimePenalty float64 `json:"timePenalty"` // Seconds lost on encounter
}

// SpawnFile represents the structure of spawn.json.
type SpawnFile struct {
	Obstacles  []ObstacleDef `json:"obstacles"`
	Milestones []int         `json:"milestones"` // Score thresholds, ascending
}

// LoadSpawnTable loads obstacle weights and milestones from the embedded spawn.json file.
func LoadSpawnTable() (SpawnFile, error) {
	return Load[SpawnFile]("spawn.json")
}

// MustLoadSpawnTable loads the spawn table, panicking on error.
func MustLoadSpawnTable() SpawnFile {
	return MustLoad[SpawnFile]("spawn.json")
}
