package game

// CollisionSystem resolves overlaps between the player and static platforms
type CollisionSystem struct {
	floorY    float64
	moveSpeed float64
}

// NewCollisionSystem creates a new collision system
func NewCollisionSystem(config Config) *CollisionSystem {
	return &CollisionSystem{
		floorY:    config.FloorY(),
		moveSpeed: config.MoveSpeed,
	}
}

// Resolve pushes the player out of every obstacle it overlaps, then clamps it
// onto the floor. Obstacles are handled in slice order and each gets at most
// one correction, so adjacent platforms can affect each other's outcome.
// It returns whether the player ends the tick on the ground.
func (c *CollisionSystem) Resolve(p *Player, obstacles []Obstacle) bool {
	p.OnGround = false

	// Velocity that produced this tick's vertical displacement
	vy := p.VY

	for i := range obstacles {
		o := &obstacles[i]
		if !p.Bounds().Overlaps(o.Rect) {
			continue
		}

		switch {
		case p.Y+p.Height-vy <= o.Y:
			// Bottom edge was above the platform before falling: landing
			p.Y = o.Y - p.Height
			p.VY = 0
			p.OnGround = true
		case p.Y-vy >= o.Bottom():
			// Top edge was below the platform before rising: head bump
			p.Y = o.Bottom()
			p.VY = 0
		case p.X+p.Width-c.moveSpeed <= o.X:
			p.X = o.X - p.Width
		case p.X >= o.Right()-c.moveSpeed:
			p.X = o.Right()
		}
	}

	if p.Y+p.Height >= c.floorY {
		p.Y = c.floorY - p.Height
		p.VY = 0
		p.OnGround = true
	}

	return p.OnGround
}
