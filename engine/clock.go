package engine

import "time"

// Clock converts wall time into tick deltas with pause support, for callers
// that drive UpdateAll from a render loop. While paused, Delta returns zero
// and no game time accumulates, so resuming never produces a jump.
// Single-threaded like the rest of the engine; not safe for concurrent use
type Clock struct {
	last   time.Time
	paused bool
}

// NewClock creates a running clock anchored at now
func NewClock() *Clock {
	return &Clock{last: time.Now()}
}

// Delta returns the wall time elapsed since the previous call
// Returns zero while paused
func (c *Clock) Delta() time.Duration {
	if c.paused {
		return 0
	}
	now := time.Now()
	d := now.Sub(c.last)
	c.last = now
	return d
}

// Pause stops delta accumulation
func (c *Clock) Pause() {
	c.paused = true
}

// Resume continues delta accumulation from now, discarding paused time
func (c *Clock) Resume() {
	if c.paused {
		c.paused = false
		c.last = time.Now()
	}
}

// IsPaused returns the pause state
func (c *Clock) IsPaused() bool {
	return c.paused
}
