package runner

import "github.com/vovakirdan/tui-runner/internal/core"

// EntityID identifies a live obstacle, coin or powerup.
type EntityID uint64

// SegmentID identifies a track segment.
type SegmentID uint64

// ObstacleKind discriminates how an obstacle must be passed.
type ObstacleKind int

const (
	ObstacleBlock   ObstacleKind = iota // Low block, jump over
	ObstacleBarrier                     // Overhead bar, slide under
	ObstacleSpike                       // Spike, jump over
)

// NeedsSlide reports whether the obstacle is passed by sliding under it.
func (k ObstacleKind) NeedsSlide() bool {
	return k == ObstacleBarrier
}

// Glyph returns the display character for an obstacle kind.
func (k ObstacleKind) Glyph() rune {
	switch k {
	case ObstacleBlock:
		return '█'
	case ObstacleBarrier:
		return '▀'
	case ObstacleSpike:
		return '▲'
	default:
		return '?'
	}
}

// String returns the name of the obstacle kind.
func (k ObstacleKind) String() string {
	switch k {
	case ObstacleBlock:
		return "block"
	case ObstacleBarrier:
		return "barrier"
	case ObstacleSpike:
		return "spike"
	default:
		return "unknown"
	}
}

// shape is the box of an obstacle kind, centred on its lane.
type shape struct {
	size    core.Vec3
	centerY float64
}

var obstacleShapes = [...]shape{
	ObstacleBlock:   {size: core.Vec3{X: 1.6, Y: 1.6, Z: 1.6}, centerY: 0.8},
	ObstacleBarrier: {size: core.Vec3{X: 2.0, Y: 1.2, Z: 1.2}, centerY: 2.2},
	ObstacleSpike:   {size: core.Vec3{X: 1.4, Y: 1.6, Z: 1.4}, centerY: 0.8},
}

// DecorationKind is a roadside ornament with no gameplay effect.
type DecorationKind int

const (
	DecorationPillar DecorationKind = iota
	DecorationCube
	DecorationOrb
)

// Glyph returns the display character for a decoration.
func (k DecorationKind) Glyph() rune {
	switch k {
	case DecorationPillar:
		return '║'
	case DecorationCube:
		return '■'
	default:
		return '°'
	}
}

// Segment is one fixed-length slice of track.
type Segment struct {
	ID          SegmentID
	Z           float64
	Decorations []Decoration
}

// Decoration is drawn beside the track.
type Decoration struct {
	Kind DecorationKind
	X    float64
	Z    float64
}

// Obstacle is a hazard occupying one lane.
type Obstacle struct {
	ID      EntityID
	Segment SegmentID
	Kind    ObstacleKind
	Lane    int
	Pos     core.Vec3 // box centre
	Size    core.Vec3

	grazed bool // already absorbed by a shield
}

// Box returns the obstacle's bounding box.
func (o *Obstacle) Box() core.Box3 {
	return core.BoxAround(o.Pos, o.Size.X, o.Size.Y, o.Size.Z)
}

// Coin is a collectible worth CoinValue points.
type Coin struct {
	ID      EntityID
	Segment SegmentID
	Pos     core.Vec3
}

// Powerup is a collectible that grants a timed effect.
type Powerup struct {
	ID      EntityID
	Segment SegmentID
	Kind    PowerupKind
	Lane    int
	Pos     core.Vec3
}
