package game

import (
	"fmt"
	"image/color"
)

// DrawKind identifies the type of a draw request
type DrawKind int

const (
	DrawRect DrawKind = iota
	DrawText
)

// Layer tags what a draw request depicts, so frontends can style it.
type Layer int

const (
	LayerFloor Layer = iota
	LayerObstacle
	LayerHole
	LayerPoint
	LayerPlayer
	LayerScore
)

// DrawCommand is a single geometric draw request. Text requests use only
// Rect.X and Rect.Y as the top-left anchor.
type DrawCommand struct {
	Kind  DrawKind
	Layer Layer
	Rect  Rect
	Color color.NRGBA
	Text  string
}

// Scene colours
var (
	ColorFloor  = color.NRGBA{R: 0, G: 128, B: 0, A: 255}
	ColorHole   = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	ColorPoint  = color.NRGBA{R: 255, G: 215, B: 0, A: 255}
	ColorPlayer = color.NRGBA{R: 0, G: 0, B: 255, A: 255}
	ColorScore  = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// Scene returns the current frame as draw requests in painter's order:
// floor, obstacles, holes, uncollected points, player, score label.
func (s *State) Scene() []DrawCommand {
	cmds := make([]DrawCommand, 0, 3+len(s.Obstacles)+len(s.Holes)+len(s.Points))

	cmds = append(cmds, DrawCommand{
		Kind:  DrawRect,
		Layer: LayerFloor,
		Rect:  Rect{X: 0, Y: s.config.FloorY(), Width: float64(s.config.ScreenWidth), Height: s.config.FloorThickness},
		Color: ColorFloor,
	})
	for _, o := range s.Obstacles {
		cmds = append(cmds, DrawCommand{Kind: DrawRect, Layer: LayerObstacle, Rect: o.Rect, Color: o.Color})
	}
	for _, h := range s.Holes {
		cmds = append(cmds, DrawCommand{Kind: DrawRect, Layer: LayerHole, Rect: h.Rect, Color: ColorHole})
	}
	for _, pt := range s.Points {
		if pt.Collected {
			continue
		}
		cmds = append(cmds, DrawCommand{Kind: DrawRect, Layer: LayerPoint, Rect: pt.Bounds(), Color: ColorPoint})
	}
	cmds = append(cmds, DrawCommand{Kind: DrawRect, Layer: LayerPlayer, Rect: s.Player.Bounds(), Color: ColorPlayer})
	cmds = append(cmds, DrawCommand{
		Kind:  DrawText,
		Layer: LayerScore,
		Rect:  Rect{X: 10, Y: 10},
		Color: ColorScore,
		Text:  ScoreLabel(s.Player.Score),
	})

	return cmds
}

// ScoreLabel formats the score for display.
func ScoreLabel(score int) string {
	return fmt.Sprintf("Score: %d", score)
}
