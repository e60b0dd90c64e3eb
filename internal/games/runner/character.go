package runner

import (
	"fmt"

	"github.com/vovakirdan/tui-runner/internal/config"
)

// Character is the player's shape. It picks the sprite and the hitbox.
type Character int

const (
	CharacterCube Character = iota
	CharacterSphere
	CharacterPyramid
	CharacterStar
	CharacterCrystal
	CharacterNeon
	characterCount
)

// A zero box keeps the configured player box.
var characterInfo = [...]struct {
	key   string
	name  string
	glyph rune
	box   [3]float64 // width, height, depth
}{
	CharacterCube:    {"cube", "Cube", '#', [3]float64{}},
	CharacterSphere:  {"sphere", "Sphere", 'O', [3]float64{1.6, 1.6, 1.6}},
	CharacterPyramid: {"pyramid", "Pyramid", 'A', [3]float64{1.15, 1.15, 1.15}},
	CharacterStar:    {"star", "Star", '*', [3]float64{1.6, 1.6, 1.6}},
	CharacterCrystal: {"crystal", "Crystal", '◆', [3]float64{2.0, 2.0, 2.0}},
	CharacterNeon:    {"neon", "Neon Ring", '@', [3]float64{1.8, 1.8, 0.6}},
}

// Characters returns every character in display order.
func Characters() []Character {
	out := make([]Character, characterCount)
	for i := range out {
		out[i] = Character(i)
	}
	return out
}

// ParseCharacter resolves a character key such as "sphere". The empty key
// is the cube.
func ParseCharacter(key string) (Character, error) {
	if key == "" {
		return CharacterCube, nil
	}
	for i, info := range characterInfo {
		if info.key == key {
			return Character(i), nil
		}
	}
	return 0, fmt.Errorf("runner: unknown character %q", key)
}

// Key returns the config key of the character.
func (c Character) Key() string { return characterInfo[c].key }

// String returns the display name of the character.
func (c Character) String() string { return characterInfo[c].name }

// Glyph returns the rune the character is drawn with.
func (c Character) Glyph() rune { return characterInfo[c].glyph }

// Box returns the character's hitbox in place of the configured one.
func (c Character) Box(configured config.RunnerPlayer) config.RunnerPlayer {
	b := characterInfo[c].box
	if b == [3]float64{} {
		return configured
	}
	configured.Width, configured.Height, configured.Depth = b[0], b[1], b[2]
	return configured
}
