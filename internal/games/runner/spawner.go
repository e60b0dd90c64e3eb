package runner

import (
	"math"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Rand is the random source the spawner draws from. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// ObstacleSpec is a planned obstacle before it enters the world.
type ObstacleSpec struct {
	Kind ObstacleKind
	Lane int
	Z    float64
}

// PowerupSpec is a planned powerup before it enters the world.
type PowerupSpec struct {
	Kind PowerupKind
	Lane int
	Pos  core.Vec3
}

// Layout is everything placed on one segment.
type Layout struct {
	Decorations []Decoration
	Obstacles   []ObstacleSpec
	Coins       []core.Vec3
	Powerups    []PowerupSpec
}

// Spawner decides per segment what to place on it. Given the same random
// sequence it produces the same layouts.
type Spawner struct {
	rng            Rand
	spawn          config.RunnerSpawn
	laneWidth      float64
	segmentLength  float64
	powerups       bool
	obstacleChance float64
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(rng Rand, cfg config.RunnerConfig, obstacleChance float64) *Spawner {
	return &Spawner{
		rng:            rng,
		spawn:          cfg.Spawn,
		laneWidth:      cfg.Track.LaneWidth,
		segmentLength:  cfg.Track.SegmentLength,
		powerups:       cfg.Powerups.Enabled,
		obstacleChance: obstacleChance,
	}
}

// Populate draws the layout for a segment whose near edge is at z.
// Draw order is fixed: decorations, obstacle, coins, powerup.
func (s *Spawner) Populate(z float64) Layout {
	var l Layout

	if s.rng.Float64() < s.spawn.DecorationChance {
		l.Decorations = s.decorations(z)
	}

	if s.rng.Float64() < s.obstacleChance {
		l.Obstacles = append(l.Obstacles, ObstacleSpec{
			Kind: s.obstacleKind(),
			Lane: s.lane(),
			Z:    z - s.rng.Float64()*(s.segmentLength-s.spawn.EdgeMargin),
		})
	}

	if s.rng.Float64() < s.spawn.CoinChance {
		if s.rng.Float64() < s.spawn.LineChance {
			l.Coins = s.coinLine(z)
		} else {
			l.Coins = s.coinArc(z)
		}
	}

	if s.powerups && s.rng.Float64() < s.spawn.PowerupChance {
		lane := s.lane()
		l.Powerups = append(l.Powerups, PowerupSpec{
			Kind: PowerupKind(s.rng.Intn(int(powerupKindCount))),
			Lane: lane,
			Pos: core.Vec3{
				X: float64(lane) * s.laneWidth,
				Y: s.spawn.CoinHeight,
				Z: z - s.rng.Float64()*s.segmentLength,
			},
		})
	}

	return l
}

func (s *Spawner) lane() int {
	return s.rng.Intn(3) - 1
}

// obstacleKind picks a kind by weighted draw.
func (s *Spawner) obstacleKind() ObstacleKind {
	total := s.spawn.BlockWeight + s.spawn.BarrierWeight + s.spawn.SpikeWeight
	r := s.rng.Float64() * total
	switch {
	case r < s.spawn.BlockWeight:
		return ObstacleBlock
	case r < s.spawn.BlockWeight+s.spawn.BarrierWeight:
		return ObstacleBarrier
	default:
		return ObstacleSpike
	}
}

func (s *Spawner) decorations(z float64) []Decoration {
	n := 1 + s.rng.Intn(3)
	out := make([]Decoration, 0, n)
	for i := 0; i < n; i++ {
		var kind DecorationKind
		switch r := s.rng.Float64(); {
		case r < 0.3:
			kind = DecorationPillar
		case r < 0.6:
			kind = DecorationCube
		default:
			kind = DecorationOrb
		}
		side := 1.0
		if s.rng.Float64() < 0.5 {
			side = -1
		}
		out = append(out, Decoration{
			Kind: kind,
			X:    side * (s.spawn.SideX + s.rng.Float64()),
			Z:    z - s.rng.Float64()*s.segmentLength,
		})
	}
	return out
}

// coinLine places LineMin..LineMax coins down one lane.
func (s *Spawner) coinLine(z float64) []core.Vec3 {
	lane := s.lane()
	n := s.spawn.LineMin + s.rng.Intn(s.spawn.LineMax-s.spawn.LineMin+1)
	start := z - s.rng.Float64()*s.spawn.Jitter
	out := make([]core.Vec3, n)
	for i := range out {
		out[i] = core.Vec3{
			X: float64(lane) * s.laneWidth,
			Y: s.spawn.CoinHeight,
			Z: start - float64(i)*s.spawn.LineSpacing,
		}
	}
	return out
}

// coinArc places ArcCoins coins sweeping from the left lane to the right
// one, highest over the middle lane.
func (s *Spawner) coinArc(z float64) []core.Vec3 {
	n := s.spawn.ArcCoins
	start := z - s.rng.Float64()*s.spawn.Jitter
	out := make([]core.Vec3, n)
	for i := range out {
		p := float64(i) / float64(n-1)
		out[i] = core.Vec3{
			X: (p - 0.5) * 2 * s.laneWidth,
			Y: s.spawn.CoinHeight + math.Sin(p*math.Pi)*s.spawn.ArcHeight,
			Z: start - float64(i)*s.spawn.ArcSpacing,
		}
	}
	return out
}
