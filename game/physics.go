package game

// ApplyGravity accelerates the player downward and moves it by the new
// velocity. Clamping is left to the collision pass.
func (p *Player) ApplyGravity(gravity float64) {
	p.VY += gravity
	p.Y += p.VY
}

// MoveLeft steps the player left, stopping at the window's left edge.
func (p *Player) MoveLeft(step float64) {
	p.X -= step
	if p.X < 0 {
		p.X = 0
	}
}

// MoveRight steps the player right, keeping the whole box inside the window.
func (p *Player) MoveRight(step, screenWidth float64) {
	p.X += step
	if limit := screenWidth - p.Width; p.X > limit {
		p.X = limit
	}
}
