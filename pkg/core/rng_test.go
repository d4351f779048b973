package core

import (
	"slices"
	"testing"
)

func TestFillBinaryDeterministic(t *testing.T) {
	a := make([]uint8, 64)
	b := make([]uint8, 64)
	FillBinary(NewRNG(7).Source(), a)
	FillBinary(NewRNG(7).Source(), b)
	if !slices.Equal(a, b) {
		t.Fatal("same seed should produce the same fill")
	}
	for i, v := range a {
		if v > 1 {
			t.Fatalf("cell %d = %d, want 0 or 1", i, v)
		}
	}
}

func TestFillChanceExtremes(t *testing.T) {
	buf := make([]uint8, 32)
	rng := NewRNG(1).Source()

	FillChance(rng, buf, 0)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("p=0: cell %d = %d", i, v)
		}
	}

	FillChance(rng, buf, 1)
	for i, v := range buf {
		if v != 1 {
			t.Fatalf("p=1: cell %d = %d", i, v)
		}
	}
}

func TestFillChanceStreamIsContinuousInP(t *testing.T) {
	half := make([]uint8, 256)
	near := make([]uint8, 256)
	FillChance(NewRNG(3).Source(), half, 0.5)
	FillChance(NewRNG(3).Source(), near, 0.5+1e-12)
	if !slices.Equal(half, near) {
		t.Fatal("a tiny change in p should not change the fill for the same seed")
	}
	ones := 0
	for _, v := range half {
		ones += int(v)
	}
	if ones == 0 || ones == len(half) {
		t.Fatalf("p=0.5 produced %d ones out of %d", ones, len(half))
	}
}
