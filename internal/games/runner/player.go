package runner

import (
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Pose is the player's vertical state.
type Pose int

const (
	PoseGrounded Pose = iota
	PoseAirborne
	PoseSliding
)

func (p Pose) String() string {
	switch p {
	case PoseGrounded:
		return "grounded"
	case PoseAirborne:
		return "airborne"
	case PoseSliding:
		return "sliding"
	default:
		return "unknown"
	}
}

// Player integrates lane changes, jumps and slides into a continuous pose.
type Player struct {
	CurrentLane int
	TargetLane  int
	X           float64 // lateral position
	Y           float64 // height of the feet above the track, never negative
	VY          float64
	Pose        Pose
	Character   Character

	phys      config.RunnerPhysics
	size      config.RunnerPlayer
	laneWidth float64
	z         float64
}

// NewPlayer creates a grounded player in the middle lane. An unknown
// character falls back to the cube.
func NewPlayer(cfg config.RunnerConfig) *Player {
	ch, err := ParseCharacter(cfg.Player.Character)
	if err != nil {
		ch = CharacterCube
	}
	return &Player{
		Character: ch,
		phys:      cfg.Physics,
		size:      ch.Box(cfg.Player),
		laneWidth: cfg.Track.LaneWidth,
		z:         cfg.Track.PlayerZ,
	}
}

// Reset returns the player to the middle lane, grounded.
func (p *Player) Reset() {
	p.CurrentLane = 0
	p.TargetLane = 0
	p.X = 0
	p.Y = 0
	p.VY = 0
	p.Pose = PoseGrounded
}

// Shift moves one lane left (-1) or right (+1), clamped to the outer lanes.
func (p *Player) Shift(delta int) bool {
	lane := core.Clamp(p.CurrentLane+delta, -1, 1)
	if lane == p.CurrentLane {
		return false
	}
	p.CurrentLane = lane
	p.TargetLane = lane
	return true
}

// Jump launches the player if grounded.
func (p *Player) Jump() bool {
	if p.Pose != PoseGrounded {
		return false
	}
	p.Pose = PoseAirborne
	p.VY = p.phys.JumpPower
	return true
}

// StartSlide ducks the player. Ignored while airborne.
func (p *Player) StartSlide() bool {
	if p.Pose != PoseGrounded {
		return false
	}
	p.Pose = PoseSliding
	return true
}

// EndSlide stands the player back up.
func (p *Player) EndSlide() bool {
	if p.Pose != PoseSliding {
		return false
	}
	p.Pose = PoseGrounded
	return true
}

// Update advances one tick. It reports whether the player landed.
func (p *Player) Update() bool {
	landed := false
	if p.Pose == PoseAirborne {
		p.Y += p.VY
		p.VY -= p.phys.Gravity
		if p.Y <= 0 {
			p.Y = 0
			p.VY = 0
			p.Pose = PoseGrounded
			landed = true
		}
	}

	p.X = core.Approach(p.X, float64(p.TargetLane)*p.laneWidth, p.phys.LerpFactor)
	return landed
}

// Airborne reports whether the player is in a jump.
func (p *Player) Airborne() bool { return p.Pose == PoseAirborne }

// Sliding reports whether the player is ducking.
func (p *Player) Sliding() bool { return p.Pose == PoseSliding }

// Height returns the current box height; sliding halves it.
func (p *Player) Height() float64 {
	if p.Sliding() {
		return p.size.Height / 2
	}
	return p.size.Height
}

// Depth returns the box depth along the track.
func (p *Player) Depth() float64 { return p.size.Depth }

// Center returns the centre of the player's box.
func (p *Player) Center() core.Vec3 {
	return core.Vec3{X: p.X, Y: p.Y + p.Height()/2, Z: p.z}
}

// Box returns the player's bounding box.
func (p *Player) Box() core.Box3 {
	return core.BoxAround(p.Center(), p.size.Width, p.Height(), p.size.Depth)
}

// Z returns the player's fixed forward position.
func (p *Player) Z() float64 { return p.z }
