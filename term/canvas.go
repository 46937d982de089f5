package term

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"platformer/game"
)

// Cell sizes in world pixels. Terminal glyphs are about twice as tall as wide.
const (
	CellWidth  = 10.0
	CellHeight = 20.0
)

// colorHoleCell replaces the scene's black holes, which vanish on a dark terminal
var colorHoleCell = color.NRGBA{R: 90, G: 90, B: 90, A: 255}

// Cell is one terminal character.
type Cell struct {
	Rune  rune
	Color color.NRGBA
}

// Canvas is a fixed grid of cells covering the world.
type Canvas struct {
	Cols, Rows int
	cells      []Cell
}

// NewCanvas sizes a canvas to a world of the given pixel dimensions.
func NewCanvas(worldWidth, worldHeight int) *Canvas {
	cols := int(math.Ceil(float64(worldWidth) / CellWidth))
	rows := int(math.Ceil(float64(worldHeight) / CellHeight))
	return &Canvas{
		Cols:  cols,
		Rows:  rows,
		cells: make([]Cell, cols*rows),
	}
}

// At returns the cell at column x, row y. Out of range returns a blank cell.
func (c *Canvas) At(x, y int) Cell {
	if x < 0 || y < 0 || x >= c.Cols || y >= c.Rows {
		return Cell{Rune: ' '}
	}
	return c.cells[y*c.Cols+x]
}

func (c *Canvas) set(x, y int, cell Cell) {
	if x < 0 || y < 0 || x >= c.Cols || y >= c.Rows {
		return
	}
	c.cells[y*c.Cols+x] = cell
}

// Clear blanks every cell.
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = Cell{Rune: ' '}
	}
}

// Rasterize redraws the canvas from scene commands in order, so later
// commands overwrite earlier ones.
func (c *Canvas) Rasterize(cmds []game.DrawCommand) {
	c.Clear()
	for _, cmd := range cmds {
		switch cmd.Kind {
		case game.DrawRect:
			c.fillRect(cmd.Rect, cellFor(cmd))
		case game.DrawText:
			x := int(cmd.Rect.X / CellWidth)
			y := int(cmd.Rect.Y / CellHeight)
			for i, r := range []rune(cmd.Text) {
				c.set(x+i, y, Cell{Rune: r, Color: cmd.Color})
			}
		}
	}
}

// fillRect covers every cell whose centre lies inside r. Shapes smaller than
// a cell still get the one cell containing their centre.
func (c *Canvas) fillRect(r game.Rect, cell Cell) {
	c0, c1 := span(r.X, r.Right(), CellWidth)
	r0, r1 := span(r.Y, r.Bottom(), CellHeight)
	for y := r0; y < r1; y++ {
		for x := c0; x < c1; x++ {
			c.set(x, y, cell)
		}
	}
}

func span(lo, hi, size float64) (int, int) {
	first := int(math.Ceil(lo/size - 0.5))
	last := int(math.Ceil(hi/size - 0.5))
	if last <= first {
		mid := int(math.Floor((lo + hi) / 2 / size))
		return mid, mid + 1
	}
	return first, last
}

func cellFor(cmd game.DrawCommand) Cell {
	switch cmd.Layer {
	case game.LayerFloor:
		return Cell{Rune: '▓', Color: cmd.Color}
	case game.LayerHole:
		return Cell{Rune: '░', Color: colorHoleCell}
	case game.LayerPoint:
		return Cell{Rune: '*', Color: cmd.Color}
	default:
		return Cell{Rune: '█', Color: cmd.Color}
	}
}

// Flush copies the canvas onto a tcell screen and shows it.
func (c *Canvas) Flush(screen tcell.Screen) {
	screen.Clear()
	for y := 0; y < c.Rows; y++ {
		for x := 0; x < c.Cols; x++ {
			cell := c.At(x, y)
			if cell.Rune == ' ' || cell.Rune == 0 {
				continue
			}
			clr := cell.Color
			style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(clr.R), int32(clr.G), int32(clr.B)))
			screen.SetContent(x, y, cell.Rune, nil, style)
		}
	}
	screen.Show()
}
