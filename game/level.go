package game

import (
	"bytes"
	_ "embed"
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed levels/default.yaml
var defaultLevelData []byte

// ErrInvalidLevel is returned when level data cannot describe a playable layout.
var ErrInvalidLevel = errors.New("invalid level")

// Level is the static layout of a stage.
type Level struct {
	Name      string
	SpawnX    float64
	SpawnY    float64
	Obstacles []Obstacle
	Holes     []Hole
	Points    []Point
}

type levelFile struct {
	Name  string `yaml:"name"`
	Spawn struct {
		X float64 `yaml:"x"`
		Y float64 `yaml:"y"`
	} `yaml:"spawn"`
	Obstacles []rectEntry  `yaml:"obstacles"`
	Holes     []rectEntry  `yaml:"holes"`
	Points    []pointEntry `yaml:"points"`
}

type rectEntry struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Color  string  `yaml:"color,omitempty"`
}

type pointEntry struct {
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	Size float64 `yaml:"size"`
}

// namedColors covers the colour names used by level files.
var namedColors = map[string]color.NRGBA{
	"red":    {R: 255, G: 0, B: 0, A: 255},
	"green":  {R: 0, G: 128, B: 0, A: 255},
	"blue":   {R: 0, G: 0, B: 255, A: 255},
	"black":  {R: 0, G: 0, B: 0, A: 255},
	"white":  {R: 255, G: 255, B: 255, A: 255},
	"yellow": {R: 255, G: 255, B: 0, A: 255},
	"orange": {R: 255, G: 165, B: 0, A: 255},
	"purple": {R: 128, G: 0, B: 128, A: 255},
	"gray":   {R: 128, G: 128, B: 128, A: 255},
	"brown":  {R: 139, G: 69, B: 19, A: 255},
}

// ParseColor accepts a colour name or a #rrggbb hex string.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	if len(s) == 7 && s[0] == '#' {
		var r, g, b uint8
		if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err == nil {
			return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
		}
	}
	return color.NRGBA{}, errors.Errorf("unknown color %q", s)
}

// LoadLevel decodes a YAML level description.
func LoadLevel(r io.Reader) (Level, error) {
	var f levelFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return Level{}, errors.Wrap(err, "decode level")
	}

	level := Level{
		Name:      f.Name,
		SpawnX:    f.Spawn.X,
		SpawnY:    f.Spawn.Y,
		Obstacles: make([]Obstacle, 0, len(f.Obstacles)),
		Holes:     make([]Hole, 0, len(f.Holes)),
		Points:    make([]Point, 0, len(f.Points)),
	}

	for i, e := range f.Obstacles {
		clr := namedColors["red"]
		if e.Color != "" {
			c, err := ParseColor(e.Color)
			if err != nil {
				return Level{}, errors.Wrapf(err, "obstacle %d", i)
			}
			clr = c
		}
		level.Obstacles = append(level.Obstacles, Obstacle{
			Rect:  Rect{X: e.X, Y: e.Y, Width: e.Width, Height: e.Height},
			Color: clr,
		})
	}
	for _, e := range f.Holes {
		level.Holes = append(level.Holes, Hole{Rect{X: e.X, Y: e.Y, Width: e.Width, Height: e.Height}})
	}
	for _, e := range f.Points {
		level.Points = append(level.Points, Point{X: e.X, Y: e.Y, Size: e.Size})
	}

	return level, nil
}

// DefaultLevel returns the built-in stage.
func DefaultLevel() (Level, error) {
	level, err := LoadLevel(bytes.NewReader(defaultLevelData))
	if err != nil {
		return Level{}, errors.Wrap(err, "default level")
	}
	return level, nil
}

// Validate checks that every shape has a positive size and that the spawn
// point leaves the player inside the window.
func (l Level) Validate(config Config) error {
	w, h := float64(config.ScreenWidth), float64(config.ScreenHeight)

	for i, o := range l.Obstacles {
		if o.Width <= 0 || o.Height <= 0 {
			return errors.Wrapf(ErrInvalidLevel, "obstacle %d has size %.1fx%.1f", i, o.Width, o.Height)
		}
	}
	for i, hole := range l.Holes {
		if hole.Width <= 0 || hole.Height <= 0 {
			return errors.Wrapf(ErrInvalidLevel, "hole %d has size %.1fx%.1f", i, hole.Width, hole.Height)
		}
	}
	for i, p := range l.Points {
		if p.Size <= 0 {
			return errors.Wrapf(ErrInvalidLevel, "point %d has size %.1f", i, p.Size)
		}
	}
	if l.SpawnX < 0 || l.SpawnX+config.PlayerSize > w || l.SpawnY < 0 || l.SpawnY+config.PlayerSize > h {
		return errors.Wrapf(ErrInvalidLevel, "spawn (%.1f, %.1f) outside %dx%d window", l.SpawnX, l.SpawnY, config.ScreenWidth, config.ScreenHeight)
	}
	return nil
}
