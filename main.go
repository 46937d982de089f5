package main

import (
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"platformer/game"
	"platformer/gui"
	"platformer/logging"
)

func main() {
	logger, err := logging.New(logging.Options{
		Debug:    os.Getenv("PLATFORMER_DEBUG") == "1",
		Frontend: "gui",
	})
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync() //nolint:errcheck

	config := game.DefaultConfig()
	level, err := game.DefaultLevel()
	if err != nil {
		logger.Fatal("load level", zap.Error(err))
	}

	state, err := game.NewState(config, level, logger)
	if err != nil {
		logger.Fatal("create state", zap.Error(err))
	}

	var opts gui.Options
	if os.Getenv("PLATFORMER_PROFILE") == "1" {
		opts.ProfileDir = "profiles"
	}

	g, err := gui.NewGame(state, logger, opts)
	if err != nil {
		logger.Fatal("create game", zap.Error(err))
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.Title)
	ebiten.SetWindowResizable(true)

	if err := ebiten.RunGame(g); err != nil {
		logger.Error("game exited", zap.Error(err))
		return
	}
	logger.Info("game closed", zap.Int("score", state.Player.Score))
}
