package cooldown

import "github.com/legacy3/wowlab-sub002/simtime"

// Charged is a cooldown with multiple independent charges (e.g. Barbed
// Shot): spending decrements the pool and starts a recharge timer only
// if the pool was full at the moment of the spend; gaining a charge
// while recharging does not cancel the timer.
type Charged struct {
	MaxCharges     uint8
	CurrentCharges uint8
	RechargeTime   simtime.Time
	NextChargeAt   simtime.Time
	Hasted         bool
}

// NewCharged constructs a fully-charged cooldown.
func NewCharged(maxCharges uint8, recharge simtime.Time) Charged {
	return Charged{
		MaxCharges:     maxCharges,
		CurrentCharges: maxCharges,
		RechargeTime:   recharge,
		NextChargeAt:   simtime.Zero,
	}
}

// WithHaste marks the recharge timer as haste-scaled.
func (c Charged) WithHaste() Charged {
	c.Hasted = true
	return c
}

// HasCharge reports at least one charge is available.
func (c *Charged) HasCharge() bool {
	return c.CurrentCharges > 0
}

// IsFull reports the charge pool is at max.
func (c *Charged) IsFull() bool {
	return c.CurrentCharges >= c.MaxCharges
}

func (c *Charged) rechargeDuration(haste float32) simtime.Time {
	if c.Hasted && haste > 0 {
		return simtime.FromSeconds(c.RechargeTime.Seconds() / float64(haste))
	}
	return c.RechargeTime
}

// Spend consumes one charge, returning false if none are available.
// Starts the recharge timer only if the pool was full before the spend.
func (c *Charged) Spend(now simtime.Time, haste float32) bool {
	if c.CurrentCharges == 0 {
		return false
	}
	wasFull := c.IsFull()
	c.CurrentCharges--
	if wasFull {
		c.NextChargeAt = now.Add(c.rechargeDuration(haste))
	}
	return true
}

// GainCharge adds one charge (e.g. from a proc), leaving the recharge
// timer running if it brings the pool to max it instead clears the
// timer to Max ("never").
func (c *Charged) GainCharge(now simtime.Time, haste float32) {
	if c.CurrentCharges >= c.MaxCharges {
		return
	}
	c.CurrentCharges++
	if c.IsFull() {
		c.NextChargeAt = simtime.Max
	}
}

// CheckRecharge advances the charge pool if the recharge timer has
// elapsed, returning true if a charge was gained. The caller (dispatcher,
// on a ChargeReady event) is responsible for calling this.
func (c *Charged) CheckRecharge(now simtime.Time, haste float32) bool {
	if c.IsFull() {
		return false
	}
	if now < c.NextChargeAt {
		return false
	}
	c.CurrentCharges++
	if c.IsFull() {
		c.NextChargeAt = simtime.Max
	} else {
		c.NextChargeAt = now.Add(c.rechargeDuration(haste))
	}
	return true
}

// TimeUntilCharge returns zero if a charge is available now, else the
// time remaining on the recharge timer.
func (c *Charged) TimeUntilCharge(now simtime.Time) simtime.Time {
	if c.HasCharge() {
		return simtime.Zero
	}
	return c.NextChargeAt.Sub(now)
}

// ChargesFractional returns the charge count plus fractional progress
// toward the next charge, in [current, current+1).
func (c *Charged) ChargesFractional(now simtime.Time) float32 {
	base := float32(c.CurrentCharges)
	if c.IsFull() {
		return base
	}
	start := c.NextChargeAt.Sub(c.RechargeTime)
	elapsed := now.Sub(start)
	total := c.RechargeTime.Seconds()
	if total <= 0 {
		return base
	}
	progress := float32(elapsed.Seconds() / total)
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	return base + progress
}

// Reset restores the pool to full charges.
func (c *Charged) Reset() {
	c.CurrentCharges = c.MaxCharges
	c.NextChargeAt = simtime.Zero
}
