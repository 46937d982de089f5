package game

import (
	"github.com/pkg/errors"
)

// ErrInvalidConfig is returned by Config.Validate for unusable settings.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds game configuration constants
type Config struct {
	// Title is the window title
	Title string

	// ScreenWidth is the window width in pixels
	ScreenWidth int

	// ScreenHeight is the window height in pixels
	ScreenHeight int

	// FloorThickness is the height of the floor strip at the bottom of the window
	FloorThickness float64

	// Gravity is added to the vertical velocity every tick
	Gravity float64

	// JumpPower is the upward velocity applied by a jump
	JumpPower float64

	// MoveSpeed is the horizontal step per tick while a direction is held
	MoveSpeed float64

	// PlayerSize is the side length of the player square
	PlayerSize float64

	// PointReward is the score awarded per collected point
	PointReward int
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		Title:          "Mario w Go",
		ScreenWidth:    800,
		ScreenHeight:   600,
		FloorThickness: 20,
		Gravity:        1,
		JumpPower:      15,
		MoveSpeed:      5,
		PlayerSize:     20,
		PointReward:    10,
	}
}

// FloorY returns the y coordinate of the top of the floor.
func (c Config) FloorY() float64 {
	return float64(c.ScreenHeight) - c.FloorThickness
}

// Validate reports the first setting that would make the world unplayable.
func (c Config) Validate() error {
	switch {
	case c.ScreenWidth <= 0 || c.ScreenHeight <= 0:
		return errors.Wrapf(ErrInvalidConfig, "window size %dx%d", c.ScreenWidth, c.ScreenHeight)
	case c.FloorThickness < 0 || c.FloorThickness >= float64(c.ScreenHeight):
		return errors.Wrapf(ErrInvalidConfig, "floor thickness %.1f for window height %d", c.FloorThickness, c.ScreenHeight)
	case c.PlayerSize <= 0:
		return errors.Wrapf(ErrInvalidConfig, "player size %.1f", c.PlayerSize)
	case c.PlayerSize > c.FloorY() || c.PlayerSize > float64(c.ScreenWidth):
		return errors.Wrapf(ErrInvalidConfig, "player size %.1f does not fit the window", c.PlayerSize)
	case c.MoveSpeed <= 0:
		return errors.Wrapf(ErrInvalidConfig, "move speed %.1f", c.MoveSpeed)
	case c.Gravity < 0 || c.JumpPower < 0:
		return errors.Wrapf(ErrInvalidConfig, "gravity %.1f, jump power %.1f", c.Gravity, c.JumpPower)
	case c.PointReward < 0:
		return errors.Wrapf(ErrInvalidConfig, "point reward %d", c.PointReward)
	}
	return nil
}
