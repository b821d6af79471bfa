// internal/game/words.go
package game

import "math/rand"

// Difficulty is a word difficulty tier.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Valid reports whether d names a known tier.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// DefaultPackName is used when a client names an unknown pack.
const DefaultPackName = "basic"

// WordPack holds the candidate words for each difficulty tier. Packs are
// immutable reference data shared by every room.
type WordPack struct {
	Category string
	Easy     []string
	Medium   []string
	Hard     []string
}

var wordPacks = map[string]WordPack{
	"basic": {
		Category: "General",
		Easy:     []string{"apple", "house", "tree", "dog", "sun"},
		Medium:   []string{"guitar", "mountain", "airplane", "dolphin", "bicycle"},
		Hard:     []string{"skyscraper", "xylophone", "quintessential", "kaleidoscope", "jigsaw"},
	},
	"animals": {
		Category: "Animals",
		Easy:     []string{"cat", "bird", "fish"},
		Medium:   []string{"elephant", "giraffe", "kangaroo"},
		Hard:     []string{"platypus", "chameleon", "rhinoceros"},
	},
}

// LookupPack returns the named pack, falling back to the default pack for
// unknown names.
func LookupPack(name string) WordPack {
	if p, ok := wordPacks[name]; ok {
		return p
	}
	return wordPacks[DefaultPackName]
}

// WordOptions is one randomly drawn word per tier, offered privately to the
// artist at round start.
type WordOptions struct {
	Easy   string `json:"easy"`
	Medium string `json:"medium"`
	Hard   string `json:"hard"`
}

// PickOptions draws one word per tier using the provided randomness source.
func (p WordPack) PickOptions(rng *rand.Rand) WordOptions {
	return WordOptions{
		Easy:   p.Easy[rng.Intn(len(p.Easy))],
		Medium: p.Medium[rng.Intn(len(p.Medium))],
		Hard:   p.Hard[rng.Intn(len(p.Hard))],
	}
}

// ForDifficulty returns the offered word for the given tier, or "" if the
// tier is unknown.
func (o WordOptions) ForDifficulty(d Difficulty) string {
	switch d {
	case DifficultyEasy:
		return o.Easy
	case DifficultyMedium:
		return o.Medium
	case DifficultyHard:
		return o.Hard
	}
	return ""
}
