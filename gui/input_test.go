package gui

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"

	"platformer/game"
)

type fakeKeys struct {
	held map[ebiten.Key]bool
	down map[ebiten.Key]bool
}

func (f fakeKeys) Pressed(key ebiten.Key) bool     { return f.held[key] }
func (f fakeKeys) JustPressed(key ebiten.Key) bool { return f.down[key] }

func TestPlayerInput_Poll(t *testing.T) {
	tests := []struct {
		name string
		held []ebiten.Key
		down []ebiten.Key
		want game.Input
	}{
		{"nothing", nil, nil, game.Input{}},
		{"arrow left", []ebiten.Key{ebiten.KeyArrowLeft}, nil, game.Input{Left: true}},
		{"d for right", []ebiten.Key{ebiten.KeyD}, nil, game.Input{Right: true}},
		{"space pressed this tick", []ebiten.Key{ebiten.KeySpace}, []ebiten.Key{ebiten.KeySpace}, game.Input{Jump: true}},
		{"space held from earlier", []ebiten.Key{ebiten.KeySpace}, nil, game.Input{}},
		{"run and jump", []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyW}, []ebiten.Key{ebiten.KeyW}, game.Input{Right: true, Jump: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keys := fakeKeys{held: map[ebiten.Key]bool{}, down: map[ebiten.Key]bool{}}
			for _, k := range tt.held {
				keys.held[k] = true
			}
			for _, k := range tt.down {
				keys.down[k] = true
			}
			p := &PlayerInput{keys: keys}

			assert.Equal(t, tt.want, p.Poll())
		})
	}
}

func TestPlayerInput_Commands(t *testing.T) {
	keys := fakeKeys{
		held: map[ebiten.Key]bool{ebiten.KeyAltLeft: true, ebiten.KeyEnter: true},
		down: map[ebiten.Key]bool{ebiten.KeyR: true, ebiten.KeyF1: true},
	}
	p := &PlayerInput{keys: keys}

	assert.True(t, p.AltEnter())
	assert.True(t, p.ShouldRestart())
	assert.True(t, p.ToggleDebug())
	assert.False(t, p.ShouldQuit())
}
