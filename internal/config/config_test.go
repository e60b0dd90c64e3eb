package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultsValidate(t *testing.T) {
	for _, id := range []string{"runner", "runner_classic"} {
		if err := DefaultFor(id).Validate(); err != nil {
			t.Errorf("%s: default config invalid: %v", id, err)
		}
	}
}

func TestEmbeddedYAMLMatchesDefaults(t *testing.T) {
	tests := []struct {
		id       string
		expected RunnerConfig
	}{
		{"runner", DefaultRunnerConfig()},
		{"runner_classic", DefaultClassicConfig()},
	}

	for _, tc := range tests {
		t.Run(tc.id, func(t *testing.T) {
			var cfg RunnerConfig
			if err := yaml.Unmarshal(GetDefaultYAML(tc.id), &cfg); err != nil {
				t.Fatalf("embedded yaml: %v", err)
			}
			if cfg != tc.expected {
				t.Errorf("embedded yaml differs from hardcoded default\n got: %+v\nwant: %+v", cfg, tc.expected)
			}
		})
	}
}

func TestVariantsKeepOwnConstants(t *testing.T) {
	neon := DefaultRunnerConfig()
	classic := DefaultClassicConfig()

	if neon.Track == classic.Track {
		t.Error("variants should not share track constants")
	}
	if !neon.Powerups.Enabled || classic.Powerups.Enabled {
		t.Error("only the neon variant has powerups")
	}
	if !neon.Biomes.Enabled || classic.Biomes.Enabled {
		t.Error("only the neon variant cycles biomes")
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RunnerConfig)
	}{
		{"zero lane width", func(c *RunnerConfig) { c.Track.LaneWidth = 0 }},
		{"negative segment length", func(c *RunnerConfig) { c.Track.SegmentLength = -1 }},
		{"no visible segments", func(c *RunnerConfig) { c.Track.SegmentsVisible = 0 }},
		{"lerp above one", func(c *RunnerConfig) { c.Physics.LerpFactor = 1.5 }},
		{"coin chance above one", func(c *RunnerConfig) { c.Spawn.CoinChance = 1.1 }},
		{"all weights zero", func(c *RunnerConfig) {
			c.Spawn.BlockWeight, c.Spawn.BarrierWeight, c.Spawn.SpikeWeight = 0, 0, 0
		}},
		{"line max below min", func(c *RunnerConfig) { c.Spawn.LineMax = 2 }},
		{"speed percent too low", func(c *RunnerConfig) { c.Speed.Percent = 5 }},
		{"speed percent too high", func(c *RunnerConfig) { c.Speed.Percent = 900 }},
		{"max below base", func(c *RunnerConfig) { c.Speed.Max = 0.01 }},
		{"difficulty too high", func(c *RunnerConfig) { c.Difficulty.Level = 6 }},
		{"zero powerup duration", func(c *RunnerConfig) { c.Powerups.Duration = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultRunnerConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoadRunnerCustomPathPartialOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fast.yaml")
	data := []byte("speed:\n  percent: 150\ndifficulty:\n  level: 3\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRunner("runner", path)
	if err != nil {
		t.Fatalf("LoadRunner: %v", err)
	}
	if cfg.Speed.Percent != 150 || cfg.Difficulty.Level != 3 {
		t.Errorf("overrides not applied: %+v %+v", cfg.Speed, cfg.Difficulty)
	}
	if cfg.Track.LaneWidth != 2.5 {
		t.Errorf("unset keys should keep defaults, lane width = %f", cfg.Track.LaneWidth)
	}
}

func TestLoadRunnerCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadRunner("runner", filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom path should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("speed:\n  percent: 1000\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadRunner("runner", bad); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("out-of-range value should fail validation, got %v", err)
	}
}

func TestLoadRunnerFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadRunner("runner_classic", "")
	if err != nil {
		t.Fatalf("LoadRunner: %v", err)
	}
	if cfg != DefaultClassicConfig() {
		t.Errorf("expected classic defaults, got %+v", cfg)
	}
}

func TestLoadRunnerUserDirectory(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	dir := filepath.Join(home, ".arcade", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "runner.yaml"), []byte("pickups:\n  coin_value: 75\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRunner("runner", "")
	if err != nil {
		t.Fatalf("LoadRunner: %v", err)
	}
	if cfg.Pickups.CoinValue != 75 {
		t.Errorf("coin value = %d, expected 75", cfg.Pickups.CoinValue)
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		level  int
		ramp   bool
	}{
		{DifficultyEasy, 1, true},
		{DifficultyNormal, 2, true},
		{DifficultyHard, 3, true},
		{DifficultyFixed, 2, false},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultRunnerConfig()
			ApplyPreset(&cfg, tc.preset)
			if cfg.Difficulty.Level != tc.level || cfg.Difficulty.Ramp != tc.ramp {
				t.Errorf("difficulty = %+v, expected level %d ramp %v", cfg.Difficulty, tc.level, tc.ramp)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produced invalid config: %v", err)
			}
		})
	}

	if ParsePreset("brutal") != "" {
		t.Error("unknown preset should parse to empty")
	}
}

func TestDifficultySpeedRamp(t *testing.T) {
	cfg := DefaultRunnerConfig()
	d := NewDifficultyManager(cfg)

	if d.Speed(0) != 0.08 {
		t.Errorf("Speed(0) = %f, expected 0.08", d.Speed(0))
	}
	if got := d.Speed(1000); math.Abs(got-0.13) > 1e-9 {
		t.Errorf("Speed(1000) = %f, expected 0.13", got)
	}
	if d.Speed(1e6) != 0.3 {
		t.Errorf("speed should cap at 0.3, got %f", d.Speed(1e6))
	}

	prev := 0.0
	for dist := 0.0; dist < 10000; dist += 250 {
		s := d.Speed(dist)
		if s < prev {
			t.Fatalf("speed decreased at distance %f", dist)
		}
		prev = s
	}

	fixed := DefaultRunnerConfig()
	fixed.Difficulty.Ramp = false
	if NewDifficultyManager(fixed).Speed(1e6) != 0.08 {
		t.Error("fixed difficulty should hold base speed")
	}
}

func TestDifficultyAdvanceUsesSpeedKnob(t *testing.T) {
	cfg := DefaultRunnerConfig()
	cfg.Speed.Percent = 150
	d := NewDifficultyManager(cfg)

	if got := d.Advance(0); math.Abs(got-0.12) > 1e-9 {
		t.Errorf("Advance(0) = %f, expected 0.12", got)
	}
}

func TestDifficultyObstacleChance(t *testing.T) {
	d := NewDifficultyManager(DefaultRunnerConfig())
	if got := d.ObstacleChance(); math.Abs(got-0.7) > 1e-9 {
		t.Errorf("ObstacleChance() = %f, expected 0.7", got)
	}
	dense := DefaultRunnerConfig()
	dense.Difficulty.Level = 5
	dense.Spawn.ObstacleBase = 0.9
	if got := NewDifficultyManager(dense).ObstacleChance(); got != 1.0 {
		t.Errorf("chance should clamp to 1, got %f", got)
	}
}
