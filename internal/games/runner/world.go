package runner

import (
	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// World is the moving window of track segments and the objects on them.
// Every obstacle, coin and powerup is tracked in a live ledger; an entity
// leaves the world exactly once, either by passing the camera or by being
// collected.
type World struct {
	track   config.RunnerTrack
	spawner *Spawner

	segments  []Segment
	obstacles []Obstacle
	coins     []Coin
	powerups  []Powerup

	live    *intmap.Map[EntityID, SegmentID]
	nextID  EntityID
	nextSeg SegmentID
	tailZ   float64 // z of the farthest segment

	despawned int
	recycled  int
}

// NewWorld creates an empty world. Call Reset to lay out the track.
func NewWorld(track config.RunnerTrack, spawner *Spawner) *World {
	return &World{
		track:   track,
		spawner: spawner,
		live:    intmap.New[EntityID, SegmentID](256),
	}
}

// Reset clears the world and lays out the initial window of segments at
// 0, -L, -2L, ... Segments at or behind z = 0 start empty.
func (w *World) Reset() {
	w.segments = w.segments[:0]
	w.obstacles = w.obstacles[:0]
	w.coins = w.coins[:0]
	w.powerups = w.powerups[:0]
	w.live.Clear()
	w.nextID = 0
	w.nextSeg = 0
	w.despawned = 0
	w.recycled = 0

	for i := 0; i < w.track.SegmentsVisible; i++ {
		w.appendSegment(-float64(i) * w.track.SegmentLength)
	}
}

// Scroll moves everything dz toward the camera, drops what passed the
// despawn planes and refills the far end so the window keeps its size.
func (w *World) Scroll(dz float64) {
	for i := range w.segments {
		w.segments[i].Z += dz
		for j := range w.segments[i].Decorations {
			w.segments[i].Decorations[j].Z += dz
		}
	}
	for i := range w.obstacles {
		w.obstacles[i].Pos.Z += dz
	}
	for i := range w.coins {
		w.coins[i].Pos.Z += dz
	}
	for i := range w.powerups {
		w.powerups[i].Pos.Z += dz
	}
	w.tailZ += dz

	objectZ := w.track.ObjectDespawnZ()
	w.obstacles = compact(w.obstacles, func(o *Obstacle) bool { return w.keep(o.ID, o.Pos.Z, objectZ) })
	w.coins = compact(w.coins, func(c *Coin) bool { return w.keep(c.ID, c.Pos.Z, objectZ) })
	w.powerups = compact(w.powerups, func(p *Powerup) bool { return w.keep(p.ID, p.Pos.Z, objectZ) })

	segmentZ := w.track.SegmentDespawnZ()
	var gone []SegmentID
	w.segments = compact(w.segments, func(s *Segment) bool {
		if s.Z > segmentZ {
			gone = append(gone, s.ID)
			return false
		}
		return true
	})
	if len(gone) == 0 {
		return
	}

	w.dropDependents(gone)
	for range gone {
		w.appendSegment(w.tailZ - w.track.SegmentLength)
		w.recycled++
	}
}

// keep reports whether an entity stays live. An entity past the plane is
// released from the ledger; one already absent from the ledger is dropped.
func (w *World) keep(id EntityID, z, plane float64) bool {
	if _, ok := w.live.Get(id); !ok {
		return false
	}
	if z > plane {
		w.release(id)
		return false
	}
	return true
}

// release removes id from the ledger. It reports false if id was not live.
func (w *World) release(id EntityID) bool {
	if _, ok := w.live.Get(id); !ok {
		return false
	}
	w.live.Del(id)
	w.despawned++
	return true
}

// dropDependents removes any object still attached to a recycled segment.
func (w *World) dropDependents(segs []SegmentID) {
	owned := func(id EntityID) bool {
		seg, ok := w.live.Get(id)
		if !ok {
			return true
		}
		for _, s := range segs {
			if s == seg {
				w.release(id)
				return true
			}
		}
		return false
	}
	w.obstacles = compact(w.obstacles, func(o *Obstacle) bool { return !owned(o.ID) })
	w.coins = compact(w.coins, func(c *Coin) bool { return !owned(c.ID) })
	w.powerups = compact(w.powerups, func(p *Powerup) bool { return !owned(p.ID) })
}

// appendSegment places a new segment at z and populates it.
func (w *World) appendSegment(z float64) {
	seg := Segment{ID: w.nextSeg, Z: z}
	w.nextSeg++
	w.tailZ = z

	if z >= 0 || w.spawner == nil {
		w.segments = append(w.segments, seg)
		return
	}

	layout := w.spawner.Populate(z)
	seg.Decorations = layout.Decorations
	w.segments = append(w.segments, seg)

	for _, o := range layout.Obstacles {
		sh := obstacleShapes[o.Kind]
		w.obstacles = append(w.obstacles, Obstacle{
			ID:      w.admit(seg.ID),
			Segment: seg.ID,
			Kind:    o.Kind,
			Lane:    o.Lane,
			Pos:     core.Vec3{X: float64(o.Lane) * w.track.LaneWidth, Y: sh.centerY, Z: o.Z},
			Size:    sh.size,
		})
	}
	for _, pos := range layout.Coins {
		w.coins = append(w.coins, Coin{ID: w.admit(seg.ID), Segment: seg.ID, Pos: pos})
	}
	for _, p := range layout.Powerups {
		w.powerups = append(w.powerups, Powerup{
			ID:      w.admit(seg.ID),
			Segment: seg.ID,
			Kind:    p.Kind,
			Lane:    p.Lane,
			Pos:     p.Pos,
		})
	}
}

// admit allocates a fresh entity id and enters it in the ledger.
func (w *World) admit(seg SegmentID) EntityID {
	w.nextID++
	w.live.Put(w.nextID, seg)
	return w.nextID
}

// CollectCoin removes a coin by id. It reports false if it was not live.
func (w *World) CollectCoin(id EntityID) bool {
	if !w.release(id) {
		return false
	}
	w.coins = compact(w.coins, func(c *Coin) bool { return c.ID != id })
	return true
}

// CollectPowerup removes a powerup by id. It reports false if it was not live.
func (w *World) CollectPowerup(id EntityID) bool {
	if !w.release(id) {
		return false
	}
	w.powerups = compact(w.powerups, func(p *Powerup) bool { return p.ID != id })
	return true
}

// IsLive reports whether id is still in the world.
func (w *World) IsLive(id EntityID) bool {
	_, ok := w.live.Get(id)
	return ok
}

// LiveCount returns the number of entities in the ledger.
func (w *World) LiveCount() int { return w.live.Len() }

// Despawned returns how many entities have left the world since Reset.
func (w *World) Despawned() int { return w.despawned }

// Recycled returns how many segments were replaced since Reset.
func (w *World) Recycled() int { return w.recycled }

// Segments returns the live segments, nearest first.
func (w *World) Segments() []Segment { return w.segments }

// Obstacles returns the live obstacles.
func (w *World) Obstacles() []Obstacle { return w.obstacles }

// Coins returns the live coins.
func (w *World) Coins() []Coin { return w.coins }

// Powerups returns the live powerups.
func (w *World) Powerups() []Powerup { return w.powerups }

// TailZ returns the z of the farthest segment.
func (w *World) TailZ() float64 { return w.tailZ }

// compact filters items in place, keeping order and zeroing the tail.
func compact[T any](items []T, keep func(*T) bool) []T {
	out := items[:0]
	for i := range items {
		if keep(&items[i]) {
			out = append(out, items[i])
		}
	}
	clear(items[len(out):])
	return out
}
