// Package config provides YAML-based runner configuration loading and
// difficulty management.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by Validate when a value is out of range.
var ErrInvalidConfig = errors.New("invalid config")

// RunnerConfig contains all tunables for one runner variant.
type RunnerConfig struct {
	Track      RunnerTrack      `yaml:"track"`
	Physics    RunnerPhysics    `yaml:"physics"`
	Player     RunnerPlayer     `yaml:"player"`
	Spawn      RunnerSpawn      `yaml:"spawn"`
	Pickups    RunnerPickups    `yaml:"pickups"`
	Powerups   RunnerPowerups   `yaml:"powerups"`
	Speed      RunnerSpeed      `yaml:"speed"`
	Biomes     RunnerBiomes     `yaml:"biomes"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// RunnerTrack defines the lane layout and the segment window.
type RunnerTrack struct {
	LaneWidth       float64 `yaml:"lane_width"`
	SegmentLength   float64 `yaml:"segment_length"`
	SegmentsVisible int     `yaml:"segments_visible"`
	PlayerZ         float64 `yaml:"player_z"`
	SegmentDespawn  float64 `yaml:"segment_despawn"` // distance past the player
	ObjectDespawn   float64 `yaml:"object_despawn"`  // distance past the player
}

// SegmentDespawnZ is the z beyond which segments are recycled.
func (t RunnerTrack) SegmentDespawnZ() float64 { return t.PlayerZ + t.SegmentDespawn }

// ObjectDespawnZ is the z beyond which obstacles and pickups are dropped.
func (t RunnerTrack) ObjectDespawnZ() float64 { return t.PlayerZ + t.ObjectDespawn }

// RunnerPhysics defines vertical and lateral motion.
type RunnerPhysics struct {
	Gravity       float64 `yaml:"gravity"`
	JumpPower     float64 `yaml:"jump_power"`
	LerpFactor    float64 `yaml:"lerp_factor"`
	JumpClearance float64 `yaml:"jump_clearance"`
}

// RunnerPlayer defines the player's bounding box and shape. Shapes other
// than the cube bring their own box.
type RunnerPlayer struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Depth     float64 `yaml:"depth"`
	Character string  `yaml:"character"`
}

// RunnerSpawn defines per-segment spawn probabilities and layouts.
type RunnerSpawn struct {
	DecorationChance float64 `yaml:"decoration_chance"`
	ObstacleBase     float64 `yaml:"obstacle_base"`
	ObstaclePerLevel float64 `yaml:"obstacle_per_level"`
	CoinChance       float64 `yaml:"coin_chance"`
	PowerupChance    float64 `yaml:"powerup_chance"`

	BlockWeight   float64 `yaml:"block_weight"`
	BarrierWeight float64 `yaml:"barrier_weight"`
	SpikeWeight   float64 `yaml:"spike_weight"`
	EdgeMargin    float64 `yaml:"edge_margin"` // segment depth kept clear of obstacles

	LineChance  float64 `yaml:"line_chance"`
	LineMin     int     `yaml:"line_min"`
	LineMax     int     `yaml:"line_max"`
	LineSpacing float64 `yaml:"line_spacing"`
	ArcCoins    int     `yaml:"arc_coins"`
	ArcSpacing  float64 `yaml:"arc_spacing"`
	ArcHeight   float64 `yaml:"arc_height"`
	CoinHeight  float64 `yaml:"coin_height"`
	Jitter      float64 `yaml:"jitter"`
	SideX       float64 `yaml:"side_x"`
}

// RunnerPickups defines coin collection and the magnet pull.
type RunnerPickups struct {
	Radius       float64 `yaml:"radius"`
	CoinValue    int     `yaml:"coin_value"`
	MagnetRadius float64 `yaml:"magnet_radius"`
	MagnetPull   float64 `yaml:"magnet_pull"`
}

// RunnerPowerups defines timed powerups.
type RunnerPowerups struct {
	Enabled    bool    `yaml:"enabled"`
	Duration   float64 `yaml:"duration"` // seconds
	Multiplier int     `yaml:"multiplier"`
}

// RunnerSpeed defines the forward speed ramp.
type RunnerSpeed struct {
	Base      float64 `yaml:"base"`
	Increment float64 `yaml:"increment"` // per unit of distance
	Max       float64 `yaml:"max"`
	Percent   int     `yaml:"percent"` // user speed knob, 100 = normal
}

// Multiplier returns the speed knob as a factor.
func (s RunnerSpeed) Multiplier() float64 { return float64(s.Percent) / 100 }

// RunnerBiomes defines biome cycling.
type RunnerBiomes struct {
	Enabled     bool    `yaml:"enabled"`
	Start       string  `yaml:"start"`
	FirstChange float64 `yaml:"first_change"`
	MinInterval float64 `yaml:"min_interval"`
	Spread      float64 `yaml:"spread"`
}

// DifficultyConfig defines obstacle density and whether speed ramps up.
type DifficultyConfig struct {
	Level int  `yaml:"level"` // 1 = easy, 2 = normal, 3 = hard
	Ramp  bool `yaml:"ramp"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// LevelForPreset returns the obstacle level for a difficulty preset.
func LevelForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 1
	case DifficultyHard:
		return 3
	default:
		return 2
	}
}

// IsFixedPreset returns true if the preset disables the speed ramp.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// Validate checks every value the runner relies on.
func (c RunnerConfig) Validate() error {
	checks := []struct {
		ok  bool
		msg string
	}{
		{c.Track.LaneWidth > 0, "track.lane_width must be positive"},
		{c.Track.SegmentLength > 0, "track.segment_length must be positive"},
		{c.Track.SegmentsVisible > 0, "track.segments_visible must be positive"},
		{c.Track.ObjectDespawn > 0, "track.object_despawn must be positive"},
		{c.Track.SegmentDespawn >= c.Track.ObjectDespawn, "track.segment_despawn must not be below object_despawn"},
		{c.Physics.Gravity > 0, "physics.gravity must be positive"},
		{c.Physics.JumpPower > 0, "physics.jump_power must be positive"},
		{c.Physics.LerpFactor > 0 && c.Physics.LerpFactor <= 1, "physics.lerp_factor must be in (0, 1]"},
		{c.Player.Width > 0 && c.Player.Height > 0 && c.Player.Depth > 0, "player box must be positive"},
		{probability(c.Spawn.DecorationChance), "spawn.decoration_chance must be in [0, 1]"},
		{probability(c.Spawn.CoinChance), "spawn.coin_chance must be in [0, 1]"},
		{probability(c.Spawn.PowerupChance), "spawn.powerup_chance must be in [0, 1]"},
		{probability(c.Spawn.LineChance), "spawn.line_chance must be in [0, 1]"},
		{c.Spawn.BlockWeight >= 0 && c.Spawn.BarrierWeight >= 0 && c.Spawn.SpikeWeight >= 0, "spawn weights must not be negative"},
		{c.Spawn.BlockWeight+c.Spawn.BarrierWeight+c.Spawn.SpikeWeight > 0, "spawn weights must not all be zero"},
		{c.Spawn.EdgeMargin >= 0 && c.Spawn.EdgeMargin < c.Track.SegmentLength, "spawn.edge_margin must be within the segment"},
		{c.Spawn.LineMin > 0 && c.Spawn.LineMax >= c.Spawn.LineMin, "spawn.line_min/line_max out of range"},
		{c.Spawn.ArcCoins > 1, "spawn.arc_coins must be at least 2"},
		{c.Pickups.Radius > 0, "pickups.radius must be positive"},
		{c.Pickups.CoinValue >= 0, "pickups.coin_value must not be negative"},
		{c.Pickups.MagnetPull >= 0 && c.Pickups.MagnetPull <= 1, "pickups.magnet_pull must be in [0, 1]"},
		{!c.Powerups.Enabled || c.Powerups.Duration > 0, "powerups.duration must be positive"},
		{!c.Powerups.Enabled || c.Powerups.Multiplier >= 1, "powerups.multiplier must be at least 1"},
		{c.Speed.Base > 0 && c.Speed.Max >= c.Speed.Base, "speed.base/max out of range"},
		{c.Speed.Increment >= 0, "speed.increment must not be negative"},
		{c.Speed.Percent >= 10 && c.Speed.Percent <= 500, "speed.percent must be in [10, 500]"},
		{!c.Biomes.Enabled || c.Biomes.FirstChange > 0, "biomes.first_change must be positive"},
		{!c.Biomes.Enabled || (c.Biomes.MinInterval > 0 && c.Biomes.Spread >= 0), "biomes interval out of range"},
		{c.Difficulty.Level >= 0 && c.Difficulty.Level <= 5, "difficulty.level must be in [0, 5]"},
	}
	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("%w: %s", ErrInvalidConfig, chk.msg)
		}
	}
	return nil
}

func probability(p float64) bool { return p >= 0 && p <= 1 }
