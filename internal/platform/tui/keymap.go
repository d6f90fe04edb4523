package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/puffgame/puff/internal/core"
)

// KeyMapper translates Bubble Tea key messages to actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action, ActionNone for keys
// without a binding. Directions share keys between thrusting, list
// navigation and the editor cursor.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit
	case "w", "up":
		return core.ActionUp
	case "s", "down":
		return core.ActionDown
	case "a", "left":
		return core.ActionLeft
	case "d", "right":
		return core.ActionRight
	case "enter", " ":
		return core.ActionConfirm
	case "esc":
		return core.ActionBack
	case "E":
		return core.ActionEditor
	case "tab":
		return core.ActionCycleNext
	case "shift+tab":
		return core.ActionCyclePrev
	case ",":
		return core.ActionTexPrev
	case ".":
		return core.ActionTexNext
	case "x", "backspace", "delete":
		return core.ActionRemove
	case "ctrl+s":
		return core.ActionSave
	case "h":
		return core.ActionPanLeft
	case "j":
		return core.ActionPanDown
	case "k":
		return core.ActionPanUp
	case "l":
		return core.ActionPanRight
	}
	return core.ActionNone
}

// IsDirection reports whether the action is a direction subject to hold
// tracking.
func IsDirection(a core.Action) bool {
	switch a {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		return true
	}
	return false
}

// holdTracker keeps directions alive between ticks. Terminals deliver
// no key-release events, so a held direction expires a fixed number of
// ticks after its last press and is refreshed by terminal auto-repeat.
type holdTracker struct {
	ttl map[core.Action]int
}

func newHoldTracker() *holdTracker {
	return &holdTracker{ttl: make(map[core.Action]int)}
}

// Refresh marks the action as held for the next ticks ticks.
func (h *holdTracker) Refresh(a core.Action, ticks int) {
	if ticks < 1 {
		ticks = 1
	}
	h.ttl[a] = ticks
}

// Apply marks the live holds on the frame.
func (h *holdTracker) Apply(frame *core.InputFrame) {
	for a := range h.ttl {
		frame.Hold(a)
	}
}

// Tick expires the holds by one tick.
func (h *holdTracker) Tick() {
	for a, left := range h.ttl {
		if left <= 1 {
			delete(h.ttl, a)
			continue
		}
		h.ttl[a] = left - 1
	}
}
