package main

import (
	"flag"
	"log"
	"os"
	"strconv"
	"time"

	"mapgen/internal/analysis"
	"mapgen/internal/app"
	"mapgen/internal/console"
	"mapgen/internal/core"
	"mapgen/internal/gen/cavern"
)

func main() {
	seed := flag.Int64("seed", 0, "seed for the run (0 picks one from the clock)")
	stats := flag.Bool("stats", false, "print a region survey after every map")
	params := flag.Bool("params", false, "print the run parameters before the first map")
	verbose := flag.Bool("v", false, "log a carve report per iteration")
	var overrides app.KVList
	flag.Var(&overrides, "set", "generator parameter in key=value form (repeatable), keys: w h iterations fill radius threshold mode outer inner room_x room_y room_prob room_prob_step dir_prob dir_prob_step")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("mapgen: ")

	kv := overrides.Map()
	if *seed != 0 {
		kv["seed"] = strconv.FormatInt(*seed, 10)
	}
	cfg := cavern.FromMap(kv)
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	gen, err := cavern.New(cfg)
	if err != nil {
		log.Fatalf("configure generator: %v", err)
	}
	if *verbose {
		log.Printf("seed %d", cfg.Seed)
	}

	out := console.NewPrinter(os.Stdout)
	show := func(print func() error) {
		if err := print(); err != nil {
			log.Fatalf("write output: %v", err)
		}
		if *stats {
			if err := out.Stats(analysis.Survey(gen.Grid(), core.Active)); err != nil {
				log.Fatalf("write output: %v", err)
			}
		}
	}

	if err := out.Title(); err != nil {
		log.Fatalf("write output: %v", err)
	}
	if *params {
		if err := out.Params(gen.Parameters()); err != nil {
			log.Fatalf("write output: %v", err)
		}
	}
	show(func() error { return out.Initial(gen.Grid()) })

	err = gen.Run(func(iteration int, g *cavern.Generator) {
		if *verbose {
			r := g.LastReport()
			log.Printf("iteration %d: carve from (%d,%d) to (%d,%d), %d steps, %d rooms, %d bounces, %d cells carved",
				iteration, r.Start.X, r.Start.Y, g.Agent().X, g.Agent().Y, r.Steps, r.Rooms, r.Bounces, r.Carved)
		}
		show(func() error { return out.Iteration(iteration, g.Grid()) })
	})
	if err != nil {
		log.Fatalf("generate: %v", err)
	}

	if err := out.Finished(); err != nil {
		log.Fatalf("write output: %v", err)
	}
}
