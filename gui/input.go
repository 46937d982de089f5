package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"platformer/game"
)

// keySource answers key state queries. ebitenKeys is the live implementation.
type keySource interface {
	Pressed(key ebiten.Key) bool
	JustPressed(key ebiten.Key) bool
}

type ebitenKeys struct{}

func (ebitenKeys) Pressed(key ebiten.Key) bool     { return ebiten.IsKeyPressed(key) }
func (ebitenKeys) JustPressed(key ebiten.Key) bool { return inpututil.IsKeyJustPressed(key) }

// Key bindings
var (
	leftKeys  = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}
	rightKeys = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}
	jumpKeys  = []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW}
)

// PlayerInput provides input from the keyboard
type PlayerInput struct {
	keys keySource
}

// NewPlayerInput creates a new player input provider
func NewPlayerInput() *PlayerInput {
	return &PlayerInput{keys: ebitenKeys{}}
}

// Poll returns the control snapshot for this tick. Directions are held
// state; jump fires only on the tick its key goes down.
func (p *PlayerInput) Poll() game.Input {
	return game.Input{
		Left:  p.anyPressed(leftKeys),
		Right: p.anyPressed(rightKeys),
		Jump:  p.anyJustPressed(jumpKeys),
	}
}

// ShouldRestart returns true on the tick R goes down
func (p *PlayerInput) ShouldRestart() bool {
	return p.keys.JustPressed(ebiten.KeyR)
}

// ShouldQuit returns true on the tick Escape goes down
func (p *PlayerInput) ShouldQuit() bool {
	return p.keys.JustPressed(ebiten.KeyEscape)
}

// ToggleDebug returns true on the tick F1 goes down
func (p *PlayerInput) ToggleDebug() bool {
	return p.keys.JustPressed(ebiten.KeyF1)
}

// AltEnter reports whether Alt+Enter is currently held
func (p *PlayerInput) AltEnter() bool {
	alt := p.anyPressed([]ebiten.Key{ebiten.KeyAlt, ebiten.KeyAltLeft, ebiten.KeyAltRight})
	return alt && p.keys.Pressed(ebiten.KeyEnter)
}

func (p *PlayerInput) anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if p.keys.Pressed(k) {
			return true
		}
	}
	return false
}

func (p *PlayerInput) anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if p.keys.JustPressed(k) {
			return true
		}
	}
	return false
}
