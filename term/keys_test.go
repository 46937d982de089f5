package term

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"platformer/game"
)

func TestActionForKey(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		r    rune
		want Action
	}{
		{tcell.KeyLeft, 0, ActionLeft},
		{tcell.KeyRight, 0, ActionRight},
		{tcell.KeyUp, 0, ActionJump},
		{tcell.KeyEscape, 0, ActionQuit},
		{tcell.KeyCtrlC, 0, ActionQuit},
		{tcell.KeyRune, 'a', ActionLeft},
		{tcell.KeyRune, 'l', ActionRight},
		{tcell.KeyRune, ' ', ActionJump},
		{tcell.KeyRune, 'R', ActionRestart},
		{tcell.KeyRune, 'q', ActionQuit},
		{tcell.KeyRune, 'x', ActionNone},
		{tcell.KeyTab, 0, ActionNone},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ActionForKey(tt.key, tt.r), "key %v rune %q", tt.key, tt.r)
	}
}

func TestKeyState(t *testing.T) {
	t.Run("Direction held for the hold window", func(t *testing.T) {
		k := NewKeyState(3)
		k.Press(ActionLeft)

		for i := 0; i < 3; i++ {
			require.Equal(t, game.Input{Left: true}, k.Snapshot(), "tick %d", i)
		}
		assert.Equal(t, game.Input{}, k.Snapshot())
	})

	t.Run("Repeat extends the window", func(t *testing.T) {
		k := NewKeyState(2)
		k.Press(ActionRight)
		k.Snapshot()
		k.Press(ActionRight)

		assert.True(t, k.Snapshot().Right)
		assert.True(t, k.Snapshot().Right)
		assert.False(t, k.Snapshot().Right)
	})

	t.Run("Opposite direction cancels", func(t *testing.T) {
		k := NewKeyState(5)
		k.Press(ActionLeft)
		k.Press(ActionRight)

		assert.Equal(t, game.Input{Right: true}, k.Snapshot())
	})

	t.Run("Jump fires once", func(t *testing.T) {
		k := NewKeyState(5)
		k.Press(ActionJump)

		assert.True(t, k.Snapshot().Jump)
		assert.False(t, k.Snapshot().Jump)
	})

	t.Run("Restart and quit", func(t *testing.T) {
		k := NewKeyState(0)
		assert.False(t, k.TakeRestart())

		k.Press(ActionRestart)
		assert.True(t, k.TakeRestart())
		assert.False(t, k.TakeRestart())

		assert.False(t, k.Quit())
		k.Press(ActionQuit)
		assert.True(t, k.Quit())
	})
}
