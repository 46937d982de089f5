package term

import (
	"github.com/gdamore/tcell/v2"

	"platformer/game"
)

// Action is a control the terminal frontend understands.
type Action int

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionJump
	ActionRestart
	ActionQuit
)

// ActionForKey maps a terminal key to an action. Arrow keys, WASD and vi
// keys all steer.
func ActionForKey(key tcell.Key, r rune) Action {
	switch key {
	case tcell.KeyLeft:
		return ActionLeft
	case tcell.KeyRight:
		return ActionRight
	case tcell.KeyUp:
		return ActionJump
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyRune:
		switch r {
		case 'a', 'A', 'h':
			return ActionLeft
		case 'd', 'D', 'l':
			return ActionRight
		case ' ', 'w', 'W', 'k':
			return ActionJump
		case 'r', 'R':
			return ActionRestart
		case 'q', 'Q':
			return ActionQuit
		}
	}
	return ActionNone
}

// KeyState turns terminal key presses into per-tick input snapshots.
// Terminals report presses and auto-repeats but never releases, so a
// direction counts as held for holdTicks ticks after its latest event.
type KeyState struct {
	holdTicks uint64
	tick      uint64

	leftUntil  uint64
	rightUntil uint64
	jump       bool
	restart    bool
	quit       bool
}

// NewKeyState creates a key state with the given hold window.
func NewKeyState(holdTicks int) *KeyState {
	if holdTicks < 1 {
		holdTicks = 1
	}
	return &KeyState{holdTicks: uint64(holdTicks)}
}

// HandleEvent records a tcell key event. Other events are ignored.
func (k *KeyState) HandleEvent(ev tcell.Event) {
	if key, ok := ev.(*tcell.EventKey); ok {
		k.Press(ActionForKey(key.Key(), key.Rune()))
	}
}

// Press records an action at the current tick.
func (k *KeyState) Press(a Action) {
	switch a {
	case ActionLeft:
		k.leftUntil = k.tick + k.holdTicks
		k.rightUntil = 0
	case ActionRight:
		k.rightUntil = k.tick + k.holdTicks
		k.leftUntil = 0
	case ActionJump:
		k.jump = true
	case ActionRestart:
		k.restart = true
	case ActionQuit:
		k.quit = true
	}
}

// Snapshot advances one tick and returns the input for it. A pending jump is
// consumed.
func (k *KeyState) Snapshot() game.Input {
	k.tick++
	in := game.Input{
		Left:  k.tick <= k.leftUntil,
		Right: k.tick <= k.rightUntil,
		Jump:  k.jump,
	}
	k.jump = false
	return in
}

// TakeRestart reports and clears a pending restart request.
func (k *KeyState) TakeRestart() bool {
	r := k.restart
	k.restart = false
	return r
}

// Quit reports whether quit was requested.
func (k *KeyState) Quit() bool {
	return k.quit
}
