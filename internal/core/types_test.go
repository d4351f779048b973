package core

import (
	"errors"
	"testing"
)

type stubSim struct{ size Size }

func (s *stubSim) Name() string   { return "stub" }
func (s *stubSim) Size() Size     { return s.size }
func (s *stubSim) Reset(int64)    {}
func (s *stubSim) Step()          {}
func (s *stubSim) Cells() []uint8 { return make([]uint8, s.size.W*s.size.H) }

func TestRegistryLookup(t *testing.T) {
	Register("stub-test", func(map[string]string) (Sim, error) {
		return &stubSim{size: Size{W: 2, H: 3}}, nil
	})
	defer delete(sims, "stub-test")

	sim, err := New("stub-test", nil)
	if err != nil {
		t.Fatal(err)
	}
	if sim.Size() != (Size{W: 2, H: 3}) {
		t.Fatalf("size=%v", sim.Size())
	}

	if _, err := New("missing", nil); !errors.Is(err, ErrUnknownSim) {
		t.Fatalf("err=%v, want ErrUnknownSim", err)
	}
}

func TestRegisterIgnoresEmpty(t *testing.T) {
	before := len(Sims())
	Register("", func(map[string]string) (Sim, error) { return nil, nil })
	Register("nil-factory", nil)
	if len(Sims()) != before {
		t.Fatal("empty names and nil factories must be ignored")
	}
}
