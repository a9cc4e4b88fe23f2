package gamedata

// NodeKind identifies the mechanic a puzzle node implements.
type NodeKind string

const (
	KindKey              NodeKind = "key"
	KindLock             NodeKind = "lock"
	KindSwitch           NodeKind = "switch"
	KindPressurePlate    NodeKind = "pressure_plate"
	KindRuneGate         NodeKind = "rune_gate"
	KindArtifactPedestal NodeKind = "artifact_pedestal"
	KindSecretWall       NodeKind = "secret_wall"
)

// Valid reports whether k is a known node kind.
func (k NodeKind) Valid() bool {
	switch k {
	case KindKey, KindLock, KindSwitch, KindPressurePlate, KindRuneGate, KindArtifactPedestal, KindSecretWall:
		return true
	default:
		return false
	}
}

// PuzzleDef is one entry of the fixed puzzle catalog.
//
// Fraction places the node at that share of the critical path. Requires
// lists prerequisite ids: other puzzle nodes, or artifact ids for a pedestal.
type PuzzleDef struct {
	ID       string   `json:"id"`
	Kind     NodeKind `json:"kind"`
	Label    string   `json:"label"`
	Fraction float64  `json:"fraction"`
	Requires []string `json:"requires"`
	Optional bool     `json:"optional,omitempty"`
}

// PuzzlesFile represents the structure of puzzles.json.
type PuzzlesFile struct {
	Puzzles []PuzzleDef `json:"puzzles"`
}

// LoadPuzzles loads the puzzle catalog from the embedded puzzles.json file.
func LoadPuzzles() ([]PuzzleDef, error) {
	file, err := Load[PuzzlesFile]("puzzles.json")
	if err != nil {
		return nil, err
	}
	return file.Puzzles, nil
}

// MustLoadPuzzles loads the puzzle catalog, panicking on error.
func MustLoadPuzzles() []PuzzleDef {
	puzzles, err := LoadPuzzles()
	if err != nil {
		panic(err)
	}
	return puzzles
}
