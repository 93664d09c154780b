package core

import "time"

// FixedStep helps run simulation updates at a steady interval independent of
// the frame rate of the caller.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller that fires once per step.
// The first call to ShouldStep fires immediately.
func NewFixedStep(step time.Duration) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetStep(step)
	fs.accumulator = fs.step
	return fs
}

// SetStep changes the interval. Non-positive values mean "every call".
func (f *FixedStep) SetStep(step time.Duration) {
	if step < 0 {
		step = 0
	}
	f.step = step
}

// Step returns the configured interval.
func (f *FixedStep) Step() time.Duration { return f.step }

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		// Don't let a long stall queue up a burst of catch-up steps.
		if f.accumulator > f.step {
			f.accumulator = f.step
		}
		return true
	}
	return false
}
