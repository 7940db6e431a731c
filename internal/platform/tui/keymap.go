package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/skyraid/internal/core"
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
	case "w", "up", "k":
		return core.ActionUp, false
	case "s", "down", "j":
		return core.ActionDown, false
	case "a", "left", "h":
		return core.ActionLeft, false
	case "d", "right", "l":
		return core.ActionRight, false
	case " ", "z", "x":
		return core.ActionFire, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "r":
		return core.ActionRestart, false
	}
	return core.ActionNone, false
}

// holdable reports whether an action stays active between key repeats.
// Everything else fires once per press.
func holdable(a core.Action) bool {
	switch a {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight, core.ActionFire:
		return true
	}
	return false
}

// HoldTracker turns key presses into held actions. Terminals only report
// presses and auto-repeats, never releases, so an action counts as held
// until holdMs passes without another press.
type HoldTracker struct {
	holdMs  int64
	pressed map[core.Action]int64 // action -> last press time
	pulses  core.InputFrame       // one-shot actions since the last frame
}

// NewHoldTracker creates a tracker with the given hold window.
func NewHoldTracker(holdMs int64) *HoldTracker {
	return &HoldTracker{
		holdMs:  holdMs,
		pressed: make(map[core.Action]int64),
		pulses:  core.NewInputFrame(),
	}
}

// Press records action a at time nowMs.
func (h *HoldTracker) Press(a core.Action, nowMs int64) {
	if a == core.ActionNone {
		return
	}
	if holdable(a) {
		h.pressed[a] = nowMs
		return
	}
	h.pulses.Set(a)
}

// Frame returns the actions active at nowMs and consumes one-shot presses.
// A horizontal or vertical press cancels the opposite direction so a
// quick reversal does not stall the ship.
func (h *HoldTracker) Frame(nowMs int64) core.InputFrame {
	frame := h.pulses.Clone()
	h.pulses.Clear()

	for a, at := range h.pressed {
		if nowMs-at > h.holdMs {
			delete(h.pressed, a)
			continue
		}
		frame.Set(a)
	}
	resolveOpposite(h.pressed, &frame, core.ActionLeft, core.ActionRight)
	resolveOpposite(h.pressed, &frame, core.ActionUp, core.ActionDown)
	return frame
}

// Release forgets every held action.
func (h *HoldTracker) Release() {
	clear(h.pressed)
	h.pulses.Clear()
}

func resolveOpposite(pressed map[core.Action]int64, frame *core.InputFrame, a, b core.Action) {
	if !frame.Has(a) || !frame.Has(b) {
		return
	}
	if pressed[a] >= pressed[b] {
		delete(frame.Actions, b)
	} else {
		delete(frame.Actions, a)
	}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
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
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}
