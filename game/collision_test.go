package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCollision() *CollisionSystem {
	return NewCollisionSystem(DefaultConfig())
}

func TestCollisionSystem_Resolve(t *testing.T) {
	platform := Obstacle{Rect: Rect{X: 100, Y: 400, Width: 100, Height: 20}, Color: namedColors["red"]}

	t.Run("No overlap leaves player untouched", func(t *testing.T) {
		cs := newTestCollision()
		p := Player{X: 10, Y: 10, Width: 20, Height: 20, VY: 3}

		onGround := cs.Resolve(&p, []Obstacle{platform})

		require.False(t, onGround)
		assert.Equal(t, 10.0, p.X)
		assert.Equal(t, 10.0, p.Y)
		assert.Equal(t, 3.0, p.VY)
	})

	t.Run("Touching edges is not an overlap", func(t *testing.T) {
		cs := newTestCollision()
		p := Player{X: 80, Y: 380, Width: 20, Height: 20, VY: 0}

		cs.Resolve(&p, []Obstacle{platform})

		assert.Equal(t, 80.0, p.X)
		assert.Equal(t, 380.0, p.Y)
		assert.False(t, p.OnGround)
	})

	t.Run("Empty obstacle list", func(t *testing.T) {
		cs := newTestCollision()
		p := Player{X: 10, Y: 10, Width: 20, Height: 20, VY: 2, OnGround: true}

		require.False(t, cs.Resolve(&p, nil))
		assert.Equal(t, 10.0, p.Y)
		assert.Equal(t, 2.0, p.VY)
	})

	t.Run("Landing from above", func(t *testing.T) {
		cs := newTestCollision()
		p := Player{X: 120, Y: 378, Width: 20, Height: 20, VY: 3}
		p.ApplyGravity(1)
		require.Equal(t, 382.0, p.Y)

		onGround := cs.Resolve(&p, []Obstacle{platform})

		require.True(t, onGround)
		assert.Equal(t, 380.0, p.Y)
		assert.Equal(t, 0.0, p.VY)
		assert.True(t, p.OnGround)
	})

	t.Run("Hitting the underside", func(t *testing.T) {
		cs := newTestCollision()
		p := Player{X: 120, Y: 425, Width: 20, Height: 20, VY: -10}
		p.ApplyGravity(1)
		require.Equal(t, 416.0, p.Y)

		onGround := cs.Resolve(&p, []Obstacle{platform})

		require.False(t, onGround)
		assert.Equal(t, 420.0, p.Y)
		assert.Equal(t, 0.0, p.VY)
	})

	t.Run("Walking into the left side", func(t *testing.T) {
		cs := newTestCollision()
		p := Player{X: 85, Y: 390, Width: 20, Height: 20}

		cs.Resolve(&p, []Obstacle{platform})

		assert.Equal(t, 80.0, p.X)
		assert.Equal(t, 390.0, p.Y)
		assert.False(t, p.OnGround)
	})

	t.Run("Walking into the right side", func(t *testing.T) {
		cs := newTestCollision()
		p := Player{X: 195, Y: 390, Width: 20, Height: 20}

		cs.Resolve(&p, []Obstacle{platform})

		assert.Equal(t, 200.0, p.X)
		assert.Equal(t, 390.0, p.Y)
	})

	t.Run("Floor clamp", func(t *testing.T) {
		cs := newTestCollision()
		p := Player{X: 50, Y: 575, Width: 20, Height: 20, VY: 10}

		onGround := cs.Resolve(&p, nil)

		require.True(t, onGround)
		assert.Equal(t, 560.0, p.Y)
		assert.Equal(t, 0.0, p.VY)
	})

	t.Run("Floor clamp overrides an obstacle correction", func(t *testing.T) {
		cs := newTestCollision()
		// Thin platform whose underside sits below the floor line
		low := Obstacle{Rect: Rect{X: 0, Y: 575, Width: 100, Height: 20}}
		p := Player{X: 10, Y: 580, Width: 20, Height: 20, VY: -20}

		cs.Resolve(&p, []Obstacle{low})

		assert.Equal(t, 560.0, p.Y)
		assert.True(t, p.OnGround)
	})

	t.Run("Later obstacles see the pre-collision velocity", func(t *testing.T) {
		cs := newTestCollision()
		first := Obstacle{Rect: Rect{X: 100, Y: 400, Width: 100, Height: 20}}
		second := Obstacle{Rect: Rect{X: 100, Y: 395, Width: 100, Height: 20}}
		p := Player{X: 120, Y: 390, Width: 20, Height: 20, VY: 12}

		cs.Resolve(&p, []Obstacle{first, second})

		// Landing on first leaves VY at 0, but second still resolves as a landing
		assert.Equal(t, 375.0, p.Y)
		assert.Equal(t, 0.0, p.VY)
		assert.True(t, p.OnGround)
	})
}
