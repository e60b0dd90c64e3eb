package core

// Action is a semantic command, decoupled from the key that produced it.
type Action int

const (
	ActionNone       Action = iota
	ActionLeft              // Left, A - change lane left; menu up
	ActionRight             // Right, D - change lane right; menu down
	ActionJump              // Up, W, Space
	ActionSlideStart        // Down, S pressed
	ActionSlideEnd          // Down released (synthesised by the platform)
	ActionPause             // P, Esc - toggle pause
	ActionConfirm           // Enter - start a run from the title screen
	ActionBack              // B - leave to the title screen / arcade menu
	ActionRestart           // R - restart after game over or from pause
	ActionQuit              // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionSlideStart:
		return "SlideStart"
	case ActionSlideEnd:
		return "SlideEnd"
	case ActionPause:
		return "Pause"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the set of actions triggered during one tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make(map[Action]bool)}
}

// FrameOf builds a frame with the given actions set.
func FrameOf(actions ...Action) InputFrame {
	f := NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks an action as triggered.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether the action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	clear(f.Actions)
}
