package runner

import (
	"math/rand"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// quietConfig is the Neon config with nothing spawning on its own.
func quietConfig() config.RunnerConfig {
	cfg := config.DefaultRunnerConfig()
	cfg.Spawn.DecorationChance = 0
	cfg.Spawn.ObstacleBase = 0
	cfg.Spawn.ObstaclePerLevel = 0
	cfg.Spawn.CoinChance = 0
	cfg.Spawn.PowerupChance = 0
	return cfg
}

// startedRun returns a quiet run already in the playing phase.
func startedRun(cfg config.RunnerConfig) *Run {
	r := NewRun(cfg, 7, BiomeCyberCity)
	if err := r.Start(); err != nil {
		panic(err)
	}
	r.Drain()
	return r
}

func placeObstacle(w *World, kind ObstacleKind, lane int, z float64) EntityID {
	sh := obstacleShapes[kind]
	seg := w.segments[len(w.segments)-1].ID
	id := w.admit(seg)
	w.obstacles = append(w.obstacles, Obstacle{
		ID:      id,
		Segment: seg,
		Kind:    kind,
		Lane:    lane,
		Pos:     core.Vec3{X: float64(lane) * w.track.LaneWidth, Y: sh.centerY, Z: z},
		Size:    sh.size,
	})
	return id
}

func placeCoin(w *World, pos core.Vec3) EntityID {
	seg := w.segments[len(w.segments)-1].ID
	id := w.admit(seg)
	w.coins = append(w.coins, Coin{ID: id, Segment: seg, Pos: pos})
	return id
}

func placePowerup(w *World, kind PowerupKind, pos core.Vec3) EntityID {
	seg := w.segments[len(w.segments)-1].ID
	id := w.admit(seg)
	w.powerups = append(w.powerups, Powerup{ID: id, Segment: seg, Kind: kind, Pos: pos})
	return id
}

func countEvents(events []core.Event, kind core.EventKind) int {
	n := 0
	for _, ev := range events {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}

// scriptedRand replays fixed draws, then falls back to a seeded source.
type scriptedRand struct {
	floats []float64
	ints   []int
	rest   *rand.Rand
}

func (s *scriptedRand) Float64() float64 {
	if len(s.floats) == 0 {
		return s.rest.Float64()
	}
	f := s.floats[0]
	s.floats = s.floats[1:]
	return f
}

func (s *scriptedRand) Intn(n int) int {
	if len(s.ints) == 0 {
		return s.rest.Intn(n)
	}
	i := s.ints[0]
	s.ints = s.ints[1:]
	return i % n
}

// memRecords keeps records in memory and counts writes.
type memRecords struct {
	best     int
	coins    int
	bestSets int
}

func (m *memRecords) BestScore() (int, error) { return m.best, nil }

func (m *memRecords) SetBestScore(score int) error {
	m.best = score
	m.bestSets++
	return nil
}

func (m *memRecords) AddCoins(n int) error {
	m.coins += n
	return nil
}
