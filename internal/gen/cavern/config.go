package cavern

import (
	"fmt"
	"strconv"

	"mapgen/internal/core"
	"mapgen/internal/gen/cellular"
	"mapgen/internal/gen/drunkard"
)

// Config controls a generation run.
type Config struct {
	Width  int
	Height int

	Iterations int
	Seed       int64

	// FillChance is the probability that a cell starts active.
	FillChance float64

	Smooth cellular.Smoother
	Carve  drunkard.Params
}

// DefaultConfig returns the standard configuration: a 20x10 map, five
// alternating smooth/carve iterations.
func DefaultConfig() Config {
	return Config{
		Width:      20,
		Height:     10,
		Iterations: 5,
		FillChance: 0.5,
		Smooth: cellular.Smoother{
			Radius:    1,
			Threshold: 0.5,
			Mode:      cellular.Snapshot,
		},
		Carve: drunkard.Params{
			Outer:               5,
			Inner:               10,
			RoomSizeX:           3,
			RoomSizeY:           5,
			ProbGenerateRoom:    0.1,
			ProbIncreaseRoom:    0.05,
			ProbChangeDirection: 0.2,
			ProbIncreaseChange:  0.03,
		},
	}
}

// Validate reports configurations the generator cannot run.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config %dx%d: %w", c.Width, c.Height, core.ErrInvalidSize)
	}
	if c.Smooth.Radius < 0 {
		return fmt.Errorf("config radius %d: %w", c.Smooth.Radius, cellular.ErrNegativeRadius)
	}
	return nil
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Values that fail to parse or fall outside their range keep the default.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}

	positive := func(key string, dst *int) {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
				*dst = parsed
			}
		}
	}
	nonNegative := func(key string, dst *int) {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
				*dst = parsed
			}
		}
	}
	probability := func(key string, dst *float64) {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
				*dst = parsed
			}
		}
	}

	positive("w", &c.Width)
	positive("h", &c.Height)
	nonNegative("iterations", &c.Iterations)
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	probability("fill", &c.FillChance)

	nonNegative("radius", &c.Smooth.Radius)
	probability("threshold", &c.Smooth.Threshold)
	if v, ok := cfg["mode"]; ok {
		if mode, ok := cellular.ParseMode(v); ok {
			c.Smooth.Mode = mode
		}
	}

	nonNegative("outer", &c.Carve.Outer)
	nonNegative("inner", &c.Carve.Inner)
	nonNegative("room_x", &c.Carve.RoomSizeX)
	nonNegative("room_y", &c.Carve.RoomSizeY)
	probability("room_prob", &c.Carve.ProbGenerateRoom)
	probability("room_prob_step", &c.Carve.ProbIncreaseRoom)
	probability("dir_prob", &c.Carve.ProbChangeDirection)
	probability("dir_prob_step", &c.Carve.ProbIncreaseChange)
	return c
}

// Keys lists the keys FromMap understands.
func Keys() []string {
	return []string{
		"w", "h", "iterations", "seed", "fill",
		"radius", "threshold", "mode",
		"outer", "inner", "room_x", "room_y",
		"room_prob", "room_prob_step", "dir_prob", "dir_prob_step",
	}
}
