package runner

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-runner/internal/config"
)

func TestParseBiome(t *testing.T) {
	for _, b := range Biomes() {
		got, err := ParseBiome(b.Key())
		require.NoError(t, err)
		assert.Equal(t, b, got)
		assert.NotEmpty(t, b.String())
	}

	_, err := ParseBiome("underwater")
	assert.Error(t, err)
}

func TestBiomeCycleNeverRepeats(t *testing.T) {
	cfg := config.DefaultRunnerConfig().Biomes
	c := NewBiomeCycle(rand.New(rand.NewSource(3)), cfg, BiomeSunset)

	assert.False(t, c.Advance(cfg.FirstChange-1))
	assert.Equal(t, BiomeSunset, c.Current())
	require.True(t, c.Advance(1))
	assert.NotEqual(t, BiomeSunset, c.Current())

	seen := map[Biome]bool{}
	for i := 0; i < 200; i++ {
		prev := c.Current()
		changed := false
		for d := 0.0; d <= cfg.MinInterval+cfg.Spread && !changed; d++ {
			changed = c.Advance(1)
		}
		require.True(t, changed, "a change within min+spread")
		assert.NotEqual(t, prev, c.Current())
		seen[c.Current()] = true
	}
	assert.Len(t, seen, len(Biomes()))

	c.Reset()
	assert.Equal(t, BiomeSunset, c.Current())
}

func TestBiomeCycleDisabled(t *testing.T) {
	cfg := config.DefaultClassicConfig().Biomes
	c := NewBiomeCycle(rand.New(rand.NewSource(3)), cfg, BiomeSunset)
	for i := 0; i < 100; i++ {
		assert.False(t, c.Advance(1000))
	}
	assert.Equal(t, BiomeSunset, c.Current())
}
