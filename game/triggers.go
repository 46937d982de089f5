package game

// HoleFires reports whether the player's horizontal extent sits entirely
// inside the hole while its vertical extent touches the hole.
func HoleFires(p *Player, h Hole) bool {
	return p.X >= h.X && p.Right() <= h.Right() &&
		p.Bottom() >= h.Y && p.Y <= h.Bottom()
}

// PointReached reports whether the player's centre lies inside an
// uncollected point's square. Edges count as inside.
func PointReached(p *Player, pt Point) bool {
	if pt.Collected {
		return false
	}
	cx, cy := p.Center()
	return cx >= pt.X && cx <= pt.X+pt.Size && cy >= pt.Y && cy <= pt.Y+pt.Size
}

// Right returns the x coordinate of the player's right edge.
func (p *Player) Right() float64 { return p.X + p.Width }

// Bottom returns the y coordinate of the player's bottom edge.
func (p *Player) Bottom() float64 { return p.Y + p.Height }

// checkHoles resets the run if any hole fires and reports whether it did.
func (s *State) checkHoles() bool {
	for _, h := range s.Holes {
		if HoleFires(&s.Player, h) {
			s.Reset()
			return true
		}
	}
	return false
}

// checkPoints collects every point the player is touching and returns how
// many were picked up.
func (s *State) checkPoints() int {
	collected := 0
	for i := range s.Points {
		if !PointReached(&s.Player, s.Points[i]) {
			continue
		}
		s.Points[i].Collected = true
		s.Player.Score += s.config.PointReward
		collected++
	}
	return collected
}
