package gui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pkg/errors"
	"golang.org/x/image/font/gofont/goregular"

	"platformer/game"
)

const scoreFontSize = 18

var (
	colorBackground = color.NRGBA{R: 20, G: 20, B: 40, A: 255}
	colorHitbox     = color.NRGBA{R: 0, G: 255, B: 255, A: 255}
)

// Renderer draws scene commands onto an ebiten image
type Renderer struct {
	face *text.GoTextFace
}

// NewRenderer creates a new renderer with the embedded Go Regular font
func NewRenderer() (*Renderer, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, errors.Wrap(err, "load score font")
	}
	return &Renderer{
		face: &text.GoTextFace{Source: src, Size: scoreFontSize},
	}, nil
}

// Render draws every command in order
func (r *Renderer) Render(screen *ebiten.Image, cmds []game.DrawCommand) {
	screen.Fill(colorBackground)

	for _, cmd := range cmds {
		switch cmd.Kind {
		case game.DrawRect:
			vector.DrawFilledRect(screen,
				float32(cmd.Rect.X), float32(cmd.Rect.Y),
				float32(cmd.Rect.Width), float32(cmd.Rect.Height),
				cmd.Color, false)
		case game.DrawText:
			op := &text.DrawOptions{}
			op.GeoM.Translate(cmd.Rect.X, cmd.Rect.Y)
			op.ColorScale.ScaleWithColor(cmd.Color)
			text.Draw(screen, cmd.Text, r.face, op)
		}
	}
}

// RenderDebug outlines collision boxes and prints the player's physics state
func (r *Renderer) RenderDebug(screen *ebiten.Image, s *game.State, tps float64) {
	outline := func(rect game.Rect) {
		vector.StrokeRect(screen,
			float32(rect.X), float32(rect.Y),
			float32(rect.Width), float32(rect.Height),
			1, colorHitbox, false)
	}

	for _, o := range s.Obstacles {
		outline(o.Rect)
	}
	for _, h := range s.Holes {
		outline(h.Rect)
	}
	for _, pt := range s.Points {
		if !pt.Collected {
			outline(pt.Bounds())
		}
	}
	outline(s.Player.Bounds())

	p := s.Player
	info := fmt.Sprintf("x=%.0f y=%.0f vy=%.0f ground=%t points=%d/%d tps=%.0f",
		p.X, p.Y, p.VY, p.OnGround, len(s.Points)-s.Remaining(), len(s.Points), tps)
	ebitenutil.DebugPrintAt(screen, info, 10, 36)
}
