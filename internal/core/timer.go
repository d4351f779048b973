package core

import "time"

// FixedStep paces generator iterations at a steady rate independent of the
// frame rate of whatever drives it.
type FixedStep struct {
	interval time.Duration
	owed     time.Duration
	last     time.Time
	now      func() time.Time
}

// NewFixedStep returns a FixedStep allowing perSecond iterations per second.
// The first call to Due always fires.
func NewFixedStep(perSecond int) *FixedStep {
	f := &FixedStep{now: time.Now}
	f.SetRate(perSecond)
	f.owed = f.interval
	return f
}

// SetRate changes the iteration rate. Non-positive rates fall back to 1/s.
func (f *FixedStep) SetRate(perSecond int) {
	if perSecond <= 0 {
		perSecond = 1
	}
	f.interval = time.Second / time.Duration(perSecond)
}

// Due reports whether enough time has passed for another iteration.
func (f *FixedStep) Due() bool {
	t := f.now()
	if f.last.IsZero() {
		f.last = t
	}
	f.owed += t.Sub(f.last)
	f.last = t
	if f.owed < f.interval {
		return false
	}
	f.owed -= f.interval
	// Never bank more than one pending iteration after a stall.
	if f.owed > f.interval {
		f.owed = f.interval
	}
	return true
}
