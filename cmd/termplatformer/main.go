// Command termplatformer plays the platformer in a terminal.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"platformer/game"
	"platformer/logging"
	"platformer/term"
)

func main() {
	// stderr belongs to the screen, so logs go to a file
	logPath := os.Getenv("PLATFORMER_LOG")
	if logPath == "" {
		logPath = filepath.Join(os.TempDir(), "termplatformer.log")
	}

	logger, err := logging.New(logging.Options{
		Debug:       os.Getenv("PLATFORMER_DEBUG") == "1",
		OutputPaths: []string{logPath},
		Frontend:    "term",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "termplatformer: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck

	level, err := game.DefaultLevel()
	if err != nil {
		logger.Fatal("load level", zap.Error(err))
	}
	state, err := game.NewState(game.DefaultConfig(), level, logger)
	if err != nil {
		logger.Fatal("create state", zap.Error(err))
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		logger.Fatal("create screen", zap.Error(err))
	}
	if err := screen.Init(); err != nil {
		logger.Fatal("init screen", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := term.NewRunner(screen, state, logger, term.DefaultOptions())
	if err := runner.Run(ctx); err != nil {
		logger.Error("terminal loop", zap.Error(err))
		return
	}
	fmt.Printf("Final score: %d\n", state.Player.Score)
}
