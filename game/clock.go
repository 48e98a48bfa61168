package game

import "time"

// Clock tracks game time for one playing session. It advances only when
// the playing mode updates, so a pause round-trip leaves elapsed time
// untouched.
type Clock struct {
	elapsed time.Duration
}

// Advance adds one frame's delta.
func (c *Clock) Advance(dt time.Duration) { c.elapsed += dt }

// Elapsed returns accumulated game time.
func (c *Clock) Elapsed() time.Duration { return c.elapsed }
