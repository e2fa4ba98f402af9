package scene

import "time"

// Clock turns wall time into scene time. Scene time advances at Scale
// times real time and stands still while paused. It never runs backwards.
type Clock struct {
	now     func() time.Time
	last    time.Time
	elapsed float64
	scale   float64
	paused  bool
}

// NewClock creates a clock starting at offset seconds.
func NewClock(scale, offset float64) *Clock {
	return newClockAt(time.Now, scale, offset)
}

func newClockAt(now func() time.Time, scale, offset float64) *Clock {
	if scale < 0 {
		scale = 0
	}
	if offset < 0 {
		offset = 0
	}
	return &Clock{now: now, last: now(), elapsed: offset, scale: scale}
}

// Tick reads the wall clock once and returns the scene time in seconds.
func (c *Clock) Tick() float64 {
	t := c.now()
	dt := t.Sub(c.last).Seconds()
	c.last = t
	if !c.paused && dt > 0 {
		c.elapsed += dt * c.scale
	}
	return c.elapsed
}

// Elapsed returns the scene time of the last Tick.
func (c *Clock) Elapsed() float64 {
	return c.elapsed
}

// TogglePause flips the paused state and returns it.
func (c *Clock) TogglePause() bool {
	c.paused = !c.paused
	return c.paused
}

// Paused reports whether the clock is paused.
func (c *Clock) Paused() bool {
	return c.paused
}

// Scale returns the time scale.
func (c *Clock) Scale() float64 {
	return c.scale
}

// SetScale sets the time scale, clamped to [0, 64].
func (c *Clock) SetScale(s float64) {
	c.scale = min(max(s, 0), 64)
}
