package gui

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"platformer/game"
)

// Options controls optional desktop features
type Options struct {
	// ProfileDir enables the frame-drop profiler when non-empty
	ProfileDir string

	// ProfileThreshold is the ticks-per-second floor below which a drop is reported
	ProfileThreshold float64
}

// Game adapts the core state to ebiten's game loop
type Game struct {
	state    *game.State
	input    *PlayerInput
	renderer *Renderer
	config   game.Config
	logger   *zap.Logger

	profiler *Profiler
	monitor  *frameMonitor

	prevAltEnter bool
}

// NewGame creates a new ebiten game around an existing state
func NewGame(state *game.State, logger *zap.Logger, opts Options) (*Game, error) {
	renderer, err := NewRenderer()
	if err != nil {
		return nil, err
	}

	g := &Game{
		state:    state,
		input:    NewPlayerInput(),
		renderer: renderer,
		config:   state.Config(),
		logger:   logger,
	}

	if opts.ProfileDir != "" {
		threshold := opts.ProfileThreshold
		if threshold <= 0 {
			threshold = float64(ebiten.DefaultTPS) * 0.9
		}
		g.profiler = NewProfiler(opts.ProfileDir, logger)
		g.monitor = newFrameMonitor(time.Now(), threshold)
		logger.Info("frame-drop profiler enabled",
			zap.String("dir", opts.ProfileDir),
			zap.Float64("threshold_tps", threshold),
		)
	}

	return g, nil
}

// Update advances the game by one tick
func (g *Game) Update() error {
	if g.input.ShouldQuit() {
		g.logger.Info("quit requested", zap.Int("score", g.state.Player.Score))
		return ebiten.Termination
	}

	if g.input.ToggleDebug() {
		debugState := GetDebugState()
		debugState.ShowHitboxes = !debugState.ShowHitboxes
	}

	// Alt+Enter toggles fullscreen; Layout keeps the logical size fixed
	altEnter := g.input.AltEnter()
	if altEnter && !g.prevAltEnter {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	g.prevAltEnter = altEnter

	if g.input.ShouldRestart() {
		g.logger.Info("restart requested", zap.Int("score", g.state.Player.Score))
		g.state.Reset()
	}

	g.state.Tick(g.input.Poll())

	if g.profiler != nil {
		tps := ebiten.ActualTPS()
		if g.monitor.Observe(time.Now(), tps) {
			g.logger.Warn("frame drop detected", zap.Float64("tps", tps))
			if err := g.profiler.CaptureProfile(fmt.Sprintf("tps%.0f", tps)); err != nil {
				g.logger.Debug("profile capture skipped", zap.Error(err))
			}
		}
	}

	return nil
}

// Draw renders the game
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Render(screen, g.state.Scene())
	if GetDebugState().ShowHitboxes {
		g.renderer.RenderDebug(screen, g.state, ebiten.ActualTPS())
	}
}

// Layout returns the game's screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.config.ScreenWidth, g.config.ScreenHeight
}
