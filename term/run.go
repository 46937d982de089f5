package term

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"platformer/game"
)

// Options controls the terminal loop
type Options struct {
	// TickInterval is the time between simulation ticks
	TickInterval time.Duration

	// HoldTicks is how long a direction stays held after its last key event
	HoldTicks int
}

// DefaultOptions returns 60 ticks per second and a hold window that bridges
// typical terminal key-repeat gaps.
func DefaultOptions() Options {
	return Options{
		TickInterval: time.Second / 60,
		HoldTicks:    10,
	}
}

// Runner drives the core state from a tcell screen
type Runner struct {
	screen tcell.Screen
	state  *game.State
	keys   *KeyState
	canvas *Canvas
	logger *zap.Logger
	opts   Options
}

// NewRunner creates a runner. The screen must already be initialised; the
// runner finalises it when Run returns.
func NewRunner(screen tcell.Screen, state *game.State, logger *zap.Logger, opts Options) *Runner {
	cfg := state.Config()
	return &Runner{
		screen: screen,
		state:  state,
		keys:   NewKeyState(opts.HoldTicks),
		canvas: NewCanvas(cfg.ScreenWidth, cfg.ScreenHeight),
		logger: logger,
		opts:   opts,
	}
}

// Run polls terminal events and ticks the game until the player quits or ctx
// is cancelled.
func (r *Runner) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	events := make(chan tcell.Event, 64)

	g.Go(func() error {
		for {
			// PollEvent returns nil once the screen is finalised
			ev := r.screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	})

	g.Go(func() error {
		defer r.screen.Fini()

		ticker := time.NewTicker(r.opts.TickInterval)
		defer ticker.Stop()

		r.draw()
		for {
			select {
			case <-ctx.Done():
				return nil
			case ev := <-events:
				if _, ok := ev.(*tcell.EventResize); ok {
					r.screen.Sync()
					continue
				}
				r.keys.HandleEvent(ev)
				if r.keys.Quit() {
					r.logger.Info("quit requested", zap.Int("score", r.state.Player.Score))
					return nil
				}
			case <-ticker.C:
				r.Step()
				r.draw()
			}
		}
	})

	return g.Wait()
}

// Step runs one simulation tick from the buffered key state.
func (r *Runner) Step() game.TickReport {
	if r.keys.TakeRestart() {
		r.logger.Info("restart requested", zap.Int("score", r.state.Player.Score))
		r.state.Reset()
	}
	return r.state.Tick(r.keys.Snapshot())
}

func (r *Runner) draw() {
	r.canvas.Rasterize(r.state.Scene())
	r.canvas.Flush(r.screen)
}
