package runner

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-runner/internal/config"
)

func TestSpawnerDeterministic(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	a := NewSpawner(rand.New(rand.NewSource(42)), cfg, 0.7)
	b := NewSpawner(rand.New(rand.NewSource(42)), cfg, 0.7)

	for i := 1; i <= 200; i++ {
		z := -float64(i) * cfg.Track.SegmentLength
		require.Equal(t, a.Populate(z), b.Populate(z), "segment %d", i)
	}
}

func TestSpawnerPlacementBounds(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	sp := NewSpawner(rand.New(rand.NewSource(5)), cfg, 1.0)
	L := cfg.Track.SegmentLength

	kinds := map[ObstacleKind]int{}
	powerups := 0
	for i := 1; i <= 2000; i++ {
		z := -float64(i) * L
		l := sp.Populate(z)

		require.Len(t, l.Obstacles, 1, "obstacle chance 1 places one every segment")
		o := l.Obstacles[0]
		kinds[o.Kind]++
		assert.Contains(t, []int{-1, 0, 1}, o.Lane)
		assert.LessOrEqual(t, o.Z, z)
		assert.Greater(t, o.Z, z-(L-cfg.Spawn.EdgeMargin))

		for _, c := range l.Coins {
			assert.LessOrEqual(t, c.Z, z)
			assert.Greater(t, c.Z, z-L)
			assert.GreaterOrEqual(t, c.Y, cfg.Spawn.CoinHeight)
			assert.LessOrEqual(t, c.X, cfg.Track.LaneWidth+1e-9)
			assert.GreaterOrEqual(t, c.X, -cfg.Track.LaneWidth-1e-9)
		}
		for _, p := range l.Powerups {
			powerups++
			assert.Contains(t, []int{-1, 0, 1}, p.Lane)
			assert.Less(t, p.Kind, powerupKindCount)
		}
		for _, d := range l.Decorations {
			assert.GreaterOrEqual(t, abs(d.X), cfg.Spawn.SideX)
		}
	}

	assert.Len(t, kinds, 3, "every obstacle kind appears")
	assert.Positive(t, powerups)
}

func TestSpawnerObstacleChanceZero(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	sp := NewSpawner(rand.New(rand.NewSource(9)), cfg, 0)
	for i := 1; i <= 500; i++ {
		assert.Empty(t, sp.Populate(-float64(i)*15).Obstacles)
	}
}

func TestSpawnerNoPowerupsWhenDisabled(t *testing.T) {
	cfg := config.DefaultClassicConfig()
	cfg.Spawn.PowerupChance = 1
	sp := NewSpawner(rand.New(rand.NewSource(11)), cfg, 0.5)
	for i := 1; i <= 500; i++ {
		assert.Empty(t, sp.Populate(-float64(i)*12).Powerups)
	}
}

func TestSpawnerWeightedKinds(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	tests := []struct {
		draw     float64
		expected ObstacleKind
	}{
		{0.0, ObstacleBlock},
		{0.39, ObstacleBlock},
		{0.41, ObstacleBarrier},
		{0.69, ObstacleBarrier},
		{0.71, ObstacleSpike},
		{0.99, ObstacleSpike},
	}

	for _, tc := range tests {
		// decoration skip, obstacle hit, kind draw, sub-position, coin skip
		rng := &scriptedRand{floats: []float64{0.99, 0.0, tc.draw, 0.5, 0.99, 0.99}, ints: []int{1}, rest: rand.New(rand.NewSource(1))}
		sp := NewSpawner(rng, cfg, 0.7)
		l := sp.Populate(-30)
		require.Len(t, l.Obstacles, 1)
		assert.Equal(t, tc.expected, l.Obstacles[0].Kind, "draw %v", tc.draw)
		assert.Equal(t, 0, l.Obstacles[0].Lane)
		assert.InDelta(t, -35.0, l.Obstacles[0].Z, 1e-9)
	}
}

func TestSpawnerCoinPatterns(t *testing.T) {
	cfg := config.DefaultRunnerConfig()

	// line: decoration skip, obstacle skip, coins hit, line chosen, jitter 0
	line := &scriptedRand{floats: []float64{0.99, 0.99, 0.0, 0.0, 0.0, 0.99}, ints: []int{2, 3}, rest: rand.New(rand.NewSource(1))}
	l := NewSpawner(line, cfg, 0.7).Populate(-30)
	require.Len(t, l.Coins, 7)
	for i, c := range l.Coins {
		assert.InDelta(t, 2.5, c.X, 1e-9)
		assert.InDelta(t, 1.5, c.Y, 1e-9)
		assert.InDelta(t, -30-float64(i)*1.8, c.Z, 1e-9)
	}

	// arc: sweeps lanes, peaks in the middle
	arc := &scriptedRand{floats: []float64{0.99, 0.99, 0.0, 0.9, 0.0, 0.99}, rest: rand.New(rand.NewSource(1))}
	l = NewSpawner(arc, cfg, 0.7).Populate(-30)
	require.Len(t, l.Coins, 5)
	assert.InDelta(t, -2.5, l.Coins[0].X, 1e-9)
	assert.InDelta(t, 2.5, l.Coins[4].X, 1e-9)
	assert.InDelta(t, 3.0, l.Coins[2].Y, 1e-9)
	assert.InDelta(t, 1.5, l.Coins[0].Y, 1e-9)
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
