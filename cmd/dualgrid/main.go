//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"dualgrid/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

func main() {
	flags := app.NewConfig()
	flags.Bind(flag.CommandLine)
	flag.Parse()

	cfg, err := flags.Load(flag.CommandLine)
	if err != nil {
		log.Fatal(err)
	}
	eng, logger, err := app.Setup(cfg, nil)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	game := app.New(eng, cfg.Display.Scale, cfg.Display.Seed, logger)
	game.Reset(cfg.Display.Seed)
	w, h := game.Size()

	ebiten.SetWindowTitle("dualgrid: " + eng.Name())
	ebiten.SetTPS(cfg.Display.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal("game loop", zap.Error(err))
	}
}
