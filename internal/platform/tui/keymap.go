package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "left", "a", "h":
		return core.ActionLeft, false
	case "right", "d", "l":
		return core.ActionRight, false
	case "up", "w", "k", " ":
		return core.ActionJump, false
	case "down", "s", "j":
		return core.ActionSlideStart, false
	case "enter":
		return core.ActionConfirm, false
	case "p", "esc":
		return core.ActionPause, false
	case "b":
		return core.ActionBack, false
	case "r":
		return core.ActionRestart, false
	}
	return core.ActionNone, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}

// slideHold turns a stream of slide key presses into a held slide.
// Terminals report no key release, so the slide ends once the key's
// auto-repeat has been quiet for window ticks.
type slideHold struct {
	window int
	left   int
}

func newSlideHold(tickRate int) slideHold {
	// longer than the usual auto-repeat delay
	return slideHold{window: max(1, tickRate*3/5)}
}

// press records a slide key press and sets SlideStart on frame. Every
// press asks again, so a slide held through a jump starts on landing.
func (h *slideHold) press(frame *core.InputFrame) {
	h.left = h.window
	frame.Set(core.ActionSlideStart)
}

// tick counts down one tick and sets SlideEnd on frame when the hold
// runs out.
func (h *slideHold) tick(frame *core.InputFrame) {
	if h.left == 0 {
		return
	}
	h.left--
	if h.left == 0 {
		frame.Set(core.ActionSlideEnd)
	}
}

func (h *slideHold) held() bool { return h.left > 0 }
