package gamedata

// Theme names one of the two pantheons an artifact belongs to.
type Theme string

const (
	ThemeNorse Theme = "norse"
	ThemeKemet Theme = "kemet"
)

// Rarity is an artifact's rarity tier.
type Rarity string

const (
	RarityCommon Rarity = "common"
	RarityRare   Rarity = "rare"
	RarityEpic   Rarity = "epic"
	RarityMythic Rarity = "mythic"
)

// Rarities lists every tier from lowest to highest.
var Rarities = []Rarity{RarityCommon, RarityRare, RarityEpic, RarityMythic}

// Tier returns the 0-based rank of r, or -1 for an unknown tag.
func (r Rarity) Tier() int {
	for i, known := range Rarities {
		if r == known {
			return i
		}
	}
	return -1
}

// ArtifactTemplate is one entry of the ordered artifact template list.
type ArtifactTemplate struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Theme         Theme    `json:"theme"`
	Rarity        Rarity   `json:"rarity"`
	Lore          string   `json:"lore"`
	Prerequisites []string `json:"prerequisites,omitempty"`
}

// ArtifactsFile represents the structure of artifacts.json.
type ArtifactsFile struct {
	Templates []ArtifactTemplate            `json:"templates"`
	Rewards   map[Rarity]int                `json:"rewards"`
	Symbols   map[Theme]map[Rarity][]string `json:"symbols"`
}

// RewardUnits returns the fixed reward-unit value for a rarity tier.
func (f *ArtifactsFile) RewardUnits(r Rarity) int {
	return f.Rewards[r]
}

// Symbol returns the symbolic tag for the artifact at index with the given
// theme and rarity. The pick is index modulo the tag list length.
func (f *ArtifactsFile) Symbol(theme Theme, rarity Rarity, index int) string {
	tags := f.Symbols[theme][rarity]
	if len(tags) == 0 {
		return ""
	}
	return tags[index%len(tags)]
}

// LoadArtifacts loads templates, rewards and symbols from the embedded artifacts.json file.
func LoadArtifacts() (*ArtifactsFile, error) {
	file, err := Load[ArtifactsFile]("artifacts.json")
	if err != nil {
		return nil, err
	}
	return &file, nil
}

// MustLoadArtifacts loads the artifact catalog, panicking on error.
func MustLoadArtifacts() *ArtifactsFile {
	file, err := LoadArtifacts()
	if err != nil {
		panic(err)
	}
	return file
}
