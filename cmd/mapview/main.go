//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"strconv"
	"time"

	"mapgen/internal/app"
	"mapgen/internal/core"
	_ "mapgen/internal/gen/cavern"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("mapview: ")

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	kv := cfg.Set.Map()
	kv["seed"] = strconv.FormatInt(cfg.Seed, 10)

	sim, err := core.New(cfg.Gen, kv)
	if err != nil {
		log.Fatalf("create generator: %v", err)
	}

	game := app.New(sim, cfg.Scale, cfg.IPS, cfg.Seed)
	size := sim.Size()

	ebiten.SetWindowTitle("mapview — " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
