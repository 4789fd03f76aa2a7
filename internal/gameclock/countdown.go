// Package gameclock keeps a start/stop countdown for the scoreboard clock.
package gameclock

import "time"

// Countdown counts down from a set duration while running. Callers pass the
// current time so the clock can be driven by any ticker.
type Countdown struct {
	remaining time.Duration
	started   time.Time
	running   bool
}

// NewCountdown returns a stopped countdown at d.
func NewCountdown(d time.Duration) *Countdown {
	return &Countdown{remaining: max(d, 0)}
}

// Set stops the clock and resets it to d.
func (c *Countdown) Set(d time.Duration) {
	c.remaining = max(d, 0)
	c.running = false
}

// Start runs the clock from now. Starting a running clock does nothing.
func (c *Countdown) Start(now time.Time) {
	if c.running || c.remaining == 0 {
		return
	}
	c.started = now
	c.running = true
}

// Stop freezes the clock at its value at now.
func (c *Countdown) Stop(now time.Time) {
	if !c.running {
		return
	}
	c.remaining = c.Remaining(now)
	c.running = false
}

// Running reports whether the clock is counting.
func (c *Countdown) Running() bool { return c.running }

// Remaining returns the time left at now, never below zero.
func (c *Countdown) Remaining(now time.Time) time.Duration {
	if !c.running {
		return c.remaining
	}
	return max(c.remaining-now.Sub(c.started), 0)
}

// Expired reports whether the clock has reached zero.
func (c *Countdown) Expired(now time.Time) bool {
	return c.Remaining(now) == 0
}
