package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/puffgame/puff/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"w", runeKey("w"), core.ActionUp},
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"s", runeKey("s"), core.ActionDown},
		{"a", runeKey("a"), core.ActionLeft},
		{"d", runeKey("d"), core.ActionRight},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, core.ActionConfirm},
		{"esc", tea.KeyMsg{Type: tea.KeyEscape}, core.ActionBack},
		{"shift+e", runeKey("E"), core.ActionEditor},
		{"plain e is unbound", runeKey("e"), core.ActionNone},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, core.ActionCycleNext},
		{"shift+tab", tea.KeyMsg{Type: tea.KeyShiftTab}, core.ActionCyclePrev},
		{"comma", runeKey(","), core.ActionTexPrev},
		{"dot", runeKey("."), core.ActionTexNext},
		{"x", runeKey("x"), core.ActionRemove},
		{"ctrl+s", tea.KeyMsg{Type: tea.KeyCtrlS}, core.ActionSave},
		{"h pans left", runeKey("h"), core.ActionPanLeft},
		{"l pans right", runeKey("l"), core.ActionPanRight},
		{"q", runeKey("q"), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
	}

	km := NewKeyMapper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.MapKey(tt.msg); got != tt.want {
				t.Errorf("MapKey(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestIsDirection(t *testing.T) {
	for _, a := range []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight} {
		if !IsDirection(a) {
			t.Errorf("IsDirection(%v) = false, want true", a)
		}
	}
	for _, a := range []core.Action{core.ActionConfirm, core.ActionPanLeft, core.ActionQuit, core.ActionNone} {
		if IsDirection(a) {
			t.Errorf("IsDirection(%v) = true, want false", a)
		}
	}
}

func TestHoldTrackerExpiry(t *testing.T) {
	h := newHoldTracker()
	h.Refresh(core.ActionUp, 3)

	for i := 0; i < 3; i++ {
		frame := core.NewInputFrame()
		h.Apply(&frame)
		if !frame.IsHeld(core.ActionUp) {
			t.Fatalf("tick %d: hold expired too early", i)
		}
		h.Tick()
	}

	frame := core.NewInputFrame()
	h.Apply(&frame)
	if frame.IsHeld(core.ActionUp) {
		t.Error("hold should have expired after 3 ticks")
	}
}

func TestHoldTrackerRefreshExtends(t *testing.T) {
	h := newHoldTracker()
	h.Refresh(core.ActionLeft, 2)
	h.Tick()

	// Auto-repeat arrives before expiry and restarts the window
	h.Refresh(core.ActionLeft, 2)
	h.Tick()

	frame := core.NewInputFrame()
	h.Apply(&frame)
	if !frame.IsHeld(core.ActionLeft) {
		t.Error("refreshed hold expired with the original window")
	}
}

func TestHoldTrackerIndependentActions(t *testing.T) {
	h := newHoldTracker()
	h.Refresh(core.ActionUp, 1)
	h.Refresh(core.ActionRight, 2)
	h.Tick()

	frame := core.NewInputFrame()
	h.Apply(&frame)
	if frame.IsHeld(core.ActionUp) {
		t.Error("short hold should have expired")
	}
	if !frame.IsHeld(core.ActionRight) {
		t.Error("long hold should still be live")
	}
}

func TestHoldTrackerClampsTTL(t *testing.T) {
	h := newHoldTracker()
	h.Refresh(core.ActionDown, 0)

	frame := core.NewInputFrame()
	h.Apply(&frame)
	if !frame.IsHeld(core.ActionDown) {
		t.Error("a zero TTL should still hold for one tick")
	}

	h.Tick()
	frame = core.NewInputFrame()
	h.Apply(&frame)
	if frame.IsHeld(core.ActionDown) {
		t.Error("clamped hold should expire after one tick")
	}
}
