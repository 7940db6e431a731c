package core

import "time"

// Clock is a monotonic millisecond source used for cooldown gating.
// It is never used to pace ticks.
type Clock interface {
	NowMs() int64
}

// SystemClock reads the monotonic wall clock relative to its creation.
type SystemClock struct {
	start time.Time
}

// NewSystemClock starts a clock at zero.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// NowMs returns milliseconds since the clock was created.
func (c *SystemClock) NowMs() int64 {
	return time.Since(c.start).Milliseconds()
}

// ManualClock only moves when told to. Tests and tick-derived time use it.
type ManualClock struct {
	ms int64
}

// NowMs returns the current manual time.
func (c *ManualClock) NowMs() int64 {
	return c.ms
}

// Advance moves the clock forward by d milliseconds.
func (c *ManualClock) Advance(d int64) {
	c.ms += d
}

// Set jumps the clock to an absolute time.
func (c *ManualClock) Set(ms int64) {
	c.ms = ms
}
