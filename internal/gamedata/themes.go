package gamedata

// PantheonDef describes one of the two thematic pantheons.
type PantheonDef struct {
	ID    Theme  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Palette holds hex colors for each tile role.
type Palette struct {
	Wall  string `json:"wall"`
	Floor string `json:"floor"`
	Path  string `json:"path"`
	Start string `json:"start"`
	Exit  string `json:"exit"`
	Node  string `json:"node"`
}

// ThemeDef is the theme metadata attached to every level.
type ThemeDef struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Ambience  string        `json:"ambience"`
	Pantheons []PantheonDef `json:"pantheons"`
	Palette   Palette       `json:"palette"`
}

// Pantheon returns the pantheon with the given theme id, or nil if not found.
func (t *ThemeDef) Pantheon(id Theme) *PantheonDef {
	for i := range t.Pantheons {
		if t.Pantheons[i].ID == id {
			return &t.Pantheons[i]
		}
	}
	return nil
}

// LoadTheme loads the theme metadata from the embedded theme.json file.
func LoadTheme() (ThemeDef, error) {
	return Load[ThemeDef]("theme.json")
}

// MustLoadTheme loads the theme metadata, panicking on error.
func MustLoadTheme() ThemeDef {
	return MustLoad[ThemeDef]("theme.json")
}
