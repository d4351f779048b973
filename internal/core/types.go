package core

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownSim is returned when no generator is registered under a name.
var ErrUnknownSim = errors.New("unknown generator")

// Size describes the dimensions of a generation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a steppable map generator must implement.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a generator factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available generator factories.
func Sims() map[string]Factory {
	return sims
}

// Names returns the registered generator names in sorted order.
func Names() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New looks up the named factory and builds a Sim from cfg.
func New(name string, cfg map[string]string) (Sim, error) {
	f, ok := sims[name]
	if !ok {
		return nil, fmt.Errorf("%q (have %v): %w", name, Names(), ErrUnknownSim)
	}
	return f(cfg)
}
