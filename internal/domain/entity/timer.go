package entity

// Countdown is a tick-driven countdown timer. Each actor owns an
// independent set of these for cooldowns and durations; there is no
// scheduler and no ordering between timers.
type Countdown struct {
	remaining float64
}

// Start arms the countdown with the given duration in seconds.
func (c *Countdown) Start(d float64) {
	c.remaining = d
}

// Tick decrements by dt, clamped at zero.
func (c *Countdown) Tick(dt float64) {
	c.remaining -= dt
	if c.remaining < 0 {
		c.remaining = 0
	}
}

// Ready reports whether the countdown has elapsed.
func (c *Countdown) Ready() bool {
	return c.remaining <= 0
}

// Active reports whether the countdown is still running.
func (c *Countdown) Active() bool {
	return c.remaining > 0
}

// Remaining returns the seconds left.
func (c *Countdown) Remaining() float64 {
	return c.remaining
}
