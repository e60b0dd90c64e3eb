package core

// EventKind identifies something noteworthy that happened during a tick.
// The platform turns events into sounds; games use them for popups.
type EventKind int

const (
	EventNone EventKind = iota
	EventRunStarted
	EventCoinCollected
	EventPowerupActivated
	EventPowerupExpired
	EventCrash
	EventShieldBlocked
	EventLanded
	EventBiomeChanged
	EventNewBest
)

// String returns a short name for logs.
func (k EventKind) String() string {
	switch k {
	case EventRunStarted:
		return "run_started"
	case EventCoinCollected:
		return "coin"
	case EventPowerupActivated:
		return "powerup_on"
	case EventPowerupExpired:
		return "powerup_off"
	case EventCrash:
		return "crash"
	case EventShieldBlocked:
		return "shield_blocked"
	case EventLanded:
		return "landed"
	case EventBiomeChanged:
		return "biome"
	case EventNewBest:
		return "new_best"
	default:
		return "none"
	}
}

// Event is a single tick occurrence. Value and Label carry kind-specific
// payload, e.g. points awarded for a coin or the powerup name.
type Event struct {
	Kind  EventKind
	Value int
	Label string
}
