package game

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Input is the per-tick control snapshot supplied by a frontend.
type Input struct {
	Left  bool // Left held
	Right bool // Right held
	Jump  bool // Jump pressed this tick (edge, not held)
}

// TickReport summarises what happened during a tick so frontends can react.
type TickReport struct {
	Jumped    bool
	Landed    bool
	Reset     bool
	Collected int
	Score     int
}

// State represents the main game state
type State struct {
	config    Config
	level     Level
	collision *CollisionSystem
	logger    *zap.Logger

	Player    Player
	Obstacles []Obstacle
	Holes     []Hole
	Points    []Point

	// Number of ticks since the last reset
	ticks uint64
}

// NewState creates a new game state from a validated config and level.
// A nil logger disables logging.
func NewState(config Config, level Level, logger *zap.Logger) (*State, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if err := level.Validate(config); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &State{
		config:    config,
		level:     level,
		collision: NewCollisionSystem(config),
		logger:    logger.With(zap.String("level", level.Name)),
		Player:    NewPlayer(level.SpawnX, level.SpawnY, config.PlayerSize),
		Obstacles: append([]Obstacle(nil), level.Obstacles...),
		Holes:     append([]Hole(nil), level.Holes...),
		Points:    append([]Point(nil), level.Points...),
	}

	s.logger.Info("level loaded",
		zap.Int("obstacles", len(s.Obstacles)),
		zap.Int("holes", len(s.Holes)),
		zap.Int("points", len(s.Points)),
	)
	return s, nil
}

// MustNewState is NewState for fixed, known-good data such as tests.
func MustNewState(config Config, level Level) *State {
	s, err := NewState(config, level, nil)
	if err != nil {
		panic(errors.Wrap(err, "new state"))
	}
	return s
}

// Config returns the configuration the state was built with.
func (s *State) Config() Config {
	return s.config
}

// Ticks returns the number of ticks since the last reset.
func (s *State) Ticks() uint64 {
	return s.ticks
}

// Tick advances the simulation by one frame.
// Order: horizontal movement, jump, gravity, collision, holes, points.
// Points are checked after holes so a reset tick scores from spawn, never
// from the position that fell into the hole.
func (s *State) Tick(in Input) TickReport {
	var report TickReport
	p := &s.Player
	wasOnGround := p.OnGround
	s.ticks++
	tick := s.ticks

	if in.Left {
		p.MoveLeft(s.config.MoveSpeed)
	}
	if in.Right {
		p.MoveRight(s.config.MoveSpeed, float64(s.config.ScreenWidth))
	}
	if in.Jump {
		report.Jumped = p.Jump(s.config.JumpPower)
	}

	p.ApplyGravity(s.config.Gravity)
	onGround := s.collision.Resolve(p, s.Obstacles)
	report.Landed = onGround && !wasOnGround && !report.Jumped

	if s.checkHoles() {
		report.Reset = true
		report.Landed = false
		s.logger.Info("fell into hole", zap.Uint64("tick", tick))
	}

	report.Collected = s.checkPoints()
	if report.Collected > 0 {
		s.logger.Debug("points collected",
			zap.Int("count", report.Collected),
			zap.Int("score", p.Score),
		)
	}

	report.Score = p.Score
	return report
}

// Reset returns the player to spawn, clears the score and restores every
// point.
func (s *State) Reset() {
	s.Player.Reset(s.level.SpawnX, s.level.SpawnY)
	for i := range s.Points {
		s.Points[i].Collected = false
	}
	s.ticks = 0
}

// Remaining returns how many points are still uncollected.
func (s *State) Remaining() int {
	n := 0
	for _, pt := range s.Points {
		if !pt.Collected {
			n++
		}
	}
	return n
}
