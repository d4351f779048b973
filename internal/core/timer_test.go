package core

import (
	"testing"
	"time"
)

func TestFixedStepPacing(t *testing.T) {
	clock := time.Unix(100, 0)
	f := NewFixedStep(4)
	f.now = func() time.Time { return clock }

	if !f.Due() {
		t.Fatal("first call should fire")
	}
	if f.Due() {
		t.Fatal("no time has passed")
	}

	clock = clock.Add(200 * time.Millisecond)
	if f.Due() {
		t.Fatal("200ms is short of a 250ms interval")
	}
	clock = clock.Add(50 * time.Millisecond)
	if !f.Due() {
		t.Fatal("250ms should fire")
	}

	clock = clock.Add(10 * time.Second)
	fired := 0
	for i := 0; i < 10; i++ {
		if f.Due() {
			fired++
		}
	}
	if fired != 2 {
		t.Fatalf("after a stall fired %d times, want 2", fired)
	}
}
