package testutil

import "sync/atomic"

// StepClock hands out consecutive step numbers. The harness stamps each
// evaluated case with one so golden traces have a stable order.
//
// Thread-safety: safe for concurrent use.
type StepClock struct {
	step  atomic.Int64
	start int64
}

// NewStepClock returns a clock whose first Next is 1.
func NewStepClock() *StepClock {
	return &StepClock{}
}

// NewStepClockAt returns a clock whose first Next is start+1.
func NewStepClockAt(start int64) *StepClock {
	c := &StepClock{start: start}
	c.step.Store(start)
	return c
}

// Next advances the clock and returns the new step.
func (c *StepClock) Next() int64 {
	return c.step.Add(1)
}

// Current returns the last step handed out, or the start value.
func (c *StepClock) Current() int64 {
	return c.step.Load()
}

// Reset rewinds the clock to its start value.
func (c *StepClock) Reset() {
	c.step.Store(c.start)
}
