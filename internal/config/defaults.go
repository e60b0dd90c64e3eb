package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

//go:embed defaults/runner_classic.yaml
var defaultClassicYAML []byte

// DefaultRunnerConfig returns the Neon Run configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Track: RunnerTrack{
			LaneWidth:       2.5,
			SegmentLength:   15,
			SegmentsVisible: 25,
			PlayerZ:         -8,
			SegmentDespawn:  20,
			ObjectDespawn:   10,
		},
		Physics: RunnerPhysics{
			Gravity:       0.015,
			JumpPower:     0.35,
			LerpFactor:    0.2,
			JumpClearance: 1.5,
		},
		Player: RunnerPlayer{
			Width:     0.9,
			Height:    1.7,
			Depth:     0.9,
			Character: "cube",
		},
		Spawn: RunnerSpawn{
			DecorationChance: 0.4,
			ObstacleBase:     0.5,
			ObstaclePerLevel: 0.1,
			CoinChance:       0.6,
			PowerupChance:    0.05,
			BlockWeight:      0.4,
			BarrierWeight:    0.3,
			SpikeWeight:      0.3,
			EdgeMargin:       5,
			LineChance:       0.5,
			LineMin:          4,
			LineMax:          7,
			LineSpacing:      1.8,
			ArcCoins:         5,
			ArcSpacing:       1.5,
			ArcHeight:        1.5,
			CoinHeight:       1.5,
			Jitter:           3,
			SideX:            5.5,
		},
		Pickups: RunnerPickups{
			Radius:       1.2,
			CoinValue:    50,
			MagnetRadius: 8,
			MagnetPull:   0.2,
		},
		Powerups: RunnerPowerups{
			Enabled:    true,
			Duration:   10,
			Multiplier: 2,
		},
		Speed: RunnerSpeed{
			Base:      0.08,
			Increment: 0.00005,
			Max:       0.3,
			Percent:   100,
		},
		Biomes: RunnerBiomes{
			Enabled:     true,
			Start:       "cybercity",
			FirstChange: 500,
			MinInterval: 300,
			Spread:      400,
		},
		Difficulty: DifficultyConfig{
			Level: 2,
			Ramp:  true,
		},
	}
}

// DefaultClassicConfig returns the Classic Run configuration.
func DefaultClassicConfig() RunnerConfig {
	return RunnerConfig{
		Track: RunnerTrack{
			LaneWidth:       2.0,
			SegmentLength:   12,
			SegmentsVisible: 20,
			PlayerZ:         -6,
			SegmentDespawn:  16,
			ObjectDespawn:   8,
		},
		Physics: RunnerPhysics{
			Gravity:       0.018,
			JumpPower:     0.38,
			LerpFactor:    0.25,
			JumpClearance: 1.4,
		},
		Player: RunnerPlayer{
			Width:     0.8,
			Height:    1.6,
			Depth:     0.8,
			Character: "cube",
		},
		Spawn: RunnerSpawn{
			DecorationChance: 0.25,
			ObstacleBase:     0.45,
			ObstaclePerLevel: 0.1,
			CoinChance:       0.5,
			PowerupChance:    0,
			BlockWeight:      0.5,
			BarrierWeight:    0.5,
			SpikeWeight:      0,
			EdgeMargin:       4,
			LineChance:       0.7,
			LineMin:          3,
			LineMax:          6,
			LineSpacing:      1.6,
			ArcCoins:         4,
			ArcSpacing:       1.5,
			ArcHeight:        1.2,
			CoinHeight:       1.2,
			Jitter:           2,
			SideX:            4.5,
		},
		Pickups: RunnerPickups{
			Radius:       1.0,
			CoinValue:    25,
			MagnetRadius: 0,
			MagnetPull:   0,
		},
		Powerups: RunnerPowerups{
			Enabled:    false,
			Duration:   0,
			Multiplier: 1,
		},
		Speed: RunnerSpeed{
			Base:      0.1,
			Increment: 0.00004,
			Max:       0.25,
			Percent:   100,
		},
		Biomes: RunnerBiomes{
			Enabled: false,
			Start:   "sunset",
		},
		Difficulty: DifficultyConfig{
			Level: 2,
			Ramp:  true,
		},
	}
}

// DefaultFor returns the hardcoded configuration for a variant id.
func DefaultFor(gameID string) RunnerConfig {
	if gameID == "runner_classic" {
		return DefaultClassicConfig()
	}
	return DefaultRunnerConfig()
}

// GetDefaultYAML returns the embedded default YAML for a variant.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "runner":
		return defaultRunnerYAML
	case "runner_classic":
		return defaultClassicYAML
	default:
		return nil
	}
}
