package game

import "image/color"

// Rect is an axis-aligned rectangle in screen coordinates (y grows downward).
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Overlaps reports whether r and o share any interior area.
// Touching edges do not count.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && r.Right() > o.X && r.Y < o.Bottom() && r.Bottom() > o.Y
}

// Obstacle is a static platform the player collides with.
type Obstacle struct {
	Rect
	Color color.NRGBA
}

// Hole is a static trigger zone that sends the player back to spawn.
type Hole struct {
	Rect
}

// Point is a collectible square worth a fixed reward.
type Point struct {
	X, Y float64
	Size float64

	// Collected stays true until the next full reset
	Collected bool
}

// Bounds returns the point's square as a Rect.
func (p Point) Bounds() Rect {
	return Rect{X: p.X, Y: p.Y, Width: p.Size, Height: p.Size}
}

// Player represents the single controllable actor
type Player struct {
	// Position of the top-left corner
	X, Y float64

	// Fixed size of the player box
	Width, Height float64

	// Vertical velocity in units per tick (positive is down)
	VY float64

	// Whether the player rested on a platform or the floor this tick
	OnGround bool

	Score int
}

// NewPlayer creates a player at the given spawn position
func NewPlayer(x, y, size float64) Player {
	return Player{
		X:      x,
		Y:      y,
		Width:  size,
		Height: size,
	}
}

// Bounds returns the player's bounding box.
func (p *Player) Bounds() Rect {
	return Rect{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}
}

// Center returns the centre of the player's bounding box.
func (p *Player) Center() (float64, float64) {
	return p.X + p.Width/2, p.Y + p.Height/2
}

// Jump applies the jump impulse if the player is standing on something.
// It reports whether the jump happened.
func (p *Player) Jump(power float64) bool {
	if !p.OnGround {
		return false
	}
	p.VY = -power
	p.OnGround = false
	return true
}

// Reset puts the player back at spawn with no momentum and no score.
func (p *Player) Reset(x, y float64) {
	p.X = x
	p.Y = y
	p.VY = 0
	p.OnGround = false
	p.Score = 0
}
