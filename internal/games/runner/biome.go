package runner

import (
	"fmt"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Biome is a color theme for the track.
type Biome int

const (
	BiomeCyberCity Biome = iota
	BiomeNeonForest
	BiomeSpaceStation
	BiomeSunset
	biomeCount
)

// Palette is the set of colors a biome draws with.
type Palette struct {
	Ground core.Color
	Wall   core.Color
	Accent core.Color
	Light  core.Color
}

var biomeInfo = [...]struct {
	key     string
	name    string
	palette Palette
}{
	BiomeCyberCity:    {"cybercity", "Cyber City", Palette{core.ColorPurple, core.ColorMagenta, core.ColorPink, core.ColorTeal}},
	BiomeNeonForest:   {"neonforest", "Neon Forest", Palette{core.ColorTeal, core.ColorGreen, core.ColorPink, core.ColorCyan}},
	BiomeSpaceStation: {"spacestation", "Space Station", Palette{core.ColorSlate, core.ColorGray, core.ColorSky, core.ColorPurple}},
	BiomeSunset:       {"sunset", "Sunset Drive", Palette{core.ColorPink, core.ColorMagenta, core.ColorGold, core.ColorOrange}},
}

// Biomes returns every biome in display order.
func Biomes() []Biome {
	out := make([]Biome, biomeCount)
	for i := range out {
		out[i] = Biome(i)
	}
	return out
}

// ParseBiome resolves a biome key such as "neonforest".
func ParseBiome(key string) (Biome, error) {
	for i, info := range biomeInfo {
		if info.key == key {
			return Biome(i), nil
		}
	}
	return 0, fmt.Errorf("runner: unknown biome %q", key)
}

// Key returns the config key of the biome.
func (b Biome) Key() string { return biomeInfo[b].key }

// String returns the display name of the biome.
func (b Biome) String() string { return biomeInfo[b].name }

// Palette returns the biome's colors.
func (b Biome) Palette() Palette { return biomeInfo[b].palette }

// BiomeCycle switches biomes after a randomised stretch of distance.
type BiomeCycle struct {
	rng     Rand
	cfg     config.RunnerBiomes
	start   Biome
	current Biome
	covered float64
	next    float64
}

// NewBiomeCycle creates a cycle beginning at start.
func NewBiomeCycle(rng Rand, cfg config.RunnerBiomes, start Biome) *BiomeCycle {
	b := &BiomeCycle{rng: rng, cfg: cfg, start: start}
	b.Reset()
	return b
}

// Reset returns to the starting biome.
func (b *BiomeCycle) Reset() {
	b.current = b.start
	b.covered = 0
	b.next = b.cfg.FirstChange
}

// Current returns the active biome.
func (b *BiomeCycle) Current() Biome { return b.current }

// Advance adds distance and reports whether the biome changed. The new
// biome always differs from the old one.
func (b *BiomeCycle) Advance(d float64) bool {
	if !b.cfg.Enabled {
		return false
	}
	b.covered += d
	if b.covered < b.next {
		return false
	}
	pick := Biome(b.rng.Intn(int(biomeCount) - 1))
	if pick >= b.current {
		pick++
	}
	b.current = pick
	b.covered = 0
	b.next = b.cfg.MinInterval + b.rng.Float64()*b.cfg.Spread
	return true
}
