package sim

import "time"

// Clock reports the current simulated time.
type Clock interface {
	Now() time.Time
}

// SimClock is a manually driven clock. It is owned by a single venue.
type SimClock struct {
	t time.Time
}

// NewSimClock returns a clock reading start.
func NewSimClock(start time.Time) *SimClock {
	return &SimClock{t: start}
}

// Now returns the current simulated time.
func (c *SimClock) Now() time.Time { return c.t }

// Set moves the clock to t.
func (c *SimClock) Set(t time.Time) { c.t = t }

// Advance moves the clock forward by d.
func (c *SimClock) Advance(d time.Duration) { c.t = c.t.Add(d) }
