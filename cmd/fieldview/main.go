//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/oovm/taxicab-map/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if cfg.Width <= 0 || cfg.Height <= 0 {
		log.Fatalf("invalid map size %dx%d", cfg.Width, cfg.Height)
	}

	game := app.New(cfg)

	ebiten.SetWindowTitle("fieldview — taxicab action fields")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
