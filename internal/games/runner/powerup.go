package runner

import "github.com/vovakirdan/tui-runner/internal/core"

// PowerupKind is the effect a powerup grants.
type PowerupKind int

const (
	PowerupShield     PowerupKind = iota // Fatal collisions are ignored
	PowerupMagnet                        // Nearby coins drift toward the player
	PowerupMultiplier                    // Coins are worth more
	powerupKindCount
)

// Glyph returns the display character for a powerup kind.
func (k PowerupKind) Glyph() rune {
	switch k {
	case PowerupShield:
		return '◊'
	case PowerupMagnet:
		return 'U'
	case PowerupMultiplier:
		return '×'
	default:
		return '?'
	}
}

// Color returns the display color for a powerup kind.
func (k PowerupKind) Color() core.Color {
	switch k {
	case PowerupShield:
		return core.ColorSky
	case PowerupMagnet:
		return core.ColorPink
	case PowerupMultiplier:
		return core.ColorLime
	default:
		return core.ColorDefault
	}
}

// String returns the name of the powerup kind.
func (k PowerupKind) String() string {
	switch k {
	case PowerupShield:
		return "shield"
	case PowerupMagnet:
		return "magnet"
	case PowerupMultiplier:
		return "multiplier"
	default:
		return "unknown"
	}
}

// ActivePowerup is the effect currently running.
type ActivePowerup struct {
	Kind      PowerupKind
	Remaining float64 // seconds
}

// Powerups holds at most one active effect and the flags it confers.
type Powerups struct {
	duration float64
	factor   int

	active     *ActivePowerup
	invincible bool
	magnet     bool
	multiplier int
}

// NewPowerups creates an idle powerup state. factor is the coin multiplier
// granted by PowerupMultiplier.
func NewPowerups(duration float64, factor int) *Powerups {
	p := &Powerups{duration: duration, factor: factor}
	p.Reset()
	return p
}

// Reset reverts any active effect.
func (p *Powerups) Reset() {
	p.active = nil
	p.revert()
}

// Activate starts kind for the full duration. Any running effect is
// reverted first; replaced reports what it was.
func (p *Powerups) Activate(kind PowerupKind) (replaced PowerupKind, ok bool) {
	if p.active != nil {
		replaced, ok = p.active.Kind, true
		p.revert()
	}
	p.active = &ActivePowerup{Kind: kind, Remaining: p.duration}
	switch kind {
	case PowerupShield:
		p.invincible = true
	case PowerupMagnet:
		p.magnet = true
	case PowerupMultiplier:
		p.multiplier = p.factor
	}
	return replaced, ok
}

// Tick counts the active effect down by dt seconds. When it runs out the
// effect is reverted and expired reports its kind.
func (p *Powerups) Tick(dt float64) (expired PowerupKind, ok bool) {
	if p.active == nil {
		return 0, false
	}
	p.active.Remaining -= dt
	if p.active.Remaining > 0 {
		return 0, false
	}
	expired = p.active.Kind
	p.active = nil
	p.revert()
	return expired, true
}

func (p *Powerups) revert() {
	p.invincible = false
	p.magnet = false
	p.multiplier = 1
}

// Active returns the running effect, or nil.
func (p *Powerups) Active() *ActivePowerup { return p.active }

// Shielded reports whether fatal collisions are suppressed.
func (p *Powerups) Shielded() bool { return p.invincible }

// Magnet reports whether coins are being pulled in.
func (p *Powerups) Magnet() bool { return p.magnet }

// Multiplier returns the current coin multiplier, 1 when none is active.
func (p *Powerups) Multiplier() int { return p.multiplier }
