// Package cooldown implements single-charge and multi-charge ability
// cooldown timers, grounded on
// original_source/crates/engine_new/src/combat/cooldown/charges.rs.
package cooldown

import "github.com/legacy3/wowlab-sub002/simtime"

// Cooldown is a simple single-use timer.
type Cooldown struct {
	Duration simtime.Time
	ReadyAt  simtime.Time
	Hasted   bool
}

// New constructs a ready (ReadyAt = zero) cooldown of the given duration.
func New(duration simtime.Time) Cooldown {
	return Cooldown{Duration: duration}
}

// WithHaste marks the cooldown as haste-scaled.
func (c Cooldown) WithHaste() Cooldown {
	c.Hasted = true
	return c
}

// Start begins the cooldown from now, scaling Duration by haste if
// Hasted.
func (c *Cooldown) Start(now simtime.Time, haste float32) {
	d := c.Duration
	if c.Hasted && haste > 0 {
		d = simtime.FromSeconds(d.Seconds() / float64(haste))
	}
	c.ReadyAt = now.Add(d)
}

// Reduce pulls ReadyAt earlier by delta, never before now.
func (c *Cooldown) Reduce(now, delta simtime.Time) {
	reduced := c.ReadyAt.Sub(delta)
	if reduced < now {
		reduced = now
	}
	c.ReadyAt = reduced
}

// IsReady reports now >= ReadyAt.
func (c *Cooldown) IsReady(now simtime.Time) bool {
	return now >= c.ReadyAt
}

// Remaining returns the time left until ready, zero if already ready.
func (c *Cooldown) Remaining(now simtime.Time) simtime.Time {
	if c.IsReady(now) {
		return simtime.Zero
	}
	return c.ReadyAt.Sub(now)
}

// Reset marks the cooldown as immediately ready.
func (c *Cooldown) Reset() {
	c.ReadyAt = simtime.Zero
}
