package runner

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// popup is a short-lived line of text over the track.
type popup struct {
	text  string
	color core.Color
	ttl   int
}

// popups is a small queue of fading messages, newest last.
type popups struct {
	items []popup
	life  int // ticks a popup stays up
	limit int
}

func newPopups(tickRate int) popups {
	return popups{life: tickRate * 6 / 5, limit: 4}
}

// push adds a message, dropping the oldest once full.
func (p *popups) push(text string, color core.Color) {
	if len(p.items) == p.limit {
		p.items = append(p.items[:0], p.items[1:]...)
	}
	p.items = append(p.items, popup{text: text, color: color, ttl: p.life})
}

// tick ages every message and drops the expired ones.
func (p *popups) tick() {
	p.items = compact(p.items, func(it *popup) bool {
		it.ttl--
		return it.ttl > 0
	})
}

func (p *popups) reset() {
	p.items = p.items[:0]
}

// observe turns run events into popups.
func (p *popups) observe(events []core.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case core.EventCoinCollected:
			p.push(fmt.Sprintf("+%d", ev.Value), core.ColorGold)
		case core.EventPowerupActivated:
			p.push(strings.ToUpper(ev.Label)+"!", PowerupKind(ev.Value).Color())
		case core.EventShieldBlocked:
			p.push("BLOCKED", core.ColorSky)
		case core.EventBiomeChanged:
			p.push("~ "+ev.Label+" ~", core.ColorWhite)
		case core.EventNewBest:
			p.push("NEW BEST!", core.ColorYellow)
		}
	}
}
