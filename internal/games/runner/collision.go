package runner

import "github.com/vovakirdan/tui-runner/internal/core"

// Verdict is the outcome of testing the player against one obstacle.
type Verdict int

const (
	VerdictMiss   Verdict = iota // Boxes do not touch
	VerdictPassed                // Boxes touch but the pose clears the obstacle
	VerdictFatal                 // Run-ending hit
)

func (v Verdict) String() string {
	switch v {
	case VerdictMiss:
		return "miss"
	case VerdictPassed:
		return "passed"
	case VerdictFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// Judge tests p against o. A slide-under obstacle is cleared by sliding;
// a jump-over one by being higher than clearance.
func Judge(p *Player, o *Obstacle, clearance float64) Verdict {
	if !p.Box().Intersects(o.Box()) {
		return VerdictMiss
	}
	if o.Kind.NeedsSlide() {
		if p.Sliding() {
			return VerdictPassed
		}
		return VerdictFatal
	}
	if p.Y > clearance {
		return VerdictPassed
	}
	return VerdictFatal
}

// pullCoins moves every coin within radius of target a fixed step toward it.
func pullCoins(coins []Coin, target core.Vec3, radius, step float64) {
	for i := range coins {
		d := target.Sub(coins[i].Pos)
		dist := d.Len()
		if dist >= radius || dist == 0 {
			continue
		}
		if step >= dist {
			coins[i].Pos = target
			continue
		}
		coins[i].Pos = coins[i].Pos.Add(d.Normalize().Scale(step))
	}
}

// touchingCoins returns the coins closer than radius to center.
func touchingCoins(coins []Coin, center core.Vec3, radius float64) []Coin {
	var hits []Coin
	for _, c := range coins {
		if core.Dist(center, c.Pos) < radius {
			hits = append(hits, c)
		}
	}
	return hits
}

// touchingPowerups returns the powerups closer than radius to center.
func touchingPowerups(items []Powerup, center core.Vec3, radius float64) []Powerup {
	var hits []Powerup
	for _, p := range items {
		if core.Dist(center, p.Pos) < radius {
			hits = append(hits, p)
		}
	}
	return hits
}
