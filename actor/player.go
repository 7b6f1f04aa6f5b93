// Package actor implements the player, enemy, and pet unit state the
// simulation drives each iteration. Grounded on
// original_source/crates/engine_new/src/actor/player.rs and
// crates/engine/src/actor/enemy.rs, following the teacher's struct-of-maps
// idiom from sim/core/sim.go for keyed per-spell state.
package actor

import (
	"github.com/legacy3/wowlab-sub002/aura"
	"github.com/legacy3/wowlab-sub002/cooldown"
	"github.com/legacy3/wowlab-sub002/proc"
	"github.com/legacy3/wowlab-sub002/resource"
	"github.com/legacy3/wowlab-sub002/simtime"
	"github.com/legacy3/wowlab-sub002/stats"
)

// Player holds everything the simulation needs about the simulated
// character between events: stats, resources, buffs, per-spell
// cooldowns, procs, and casting/GCD state.
type Player struct {
	ID   int
	Spec string

	Stats        *stats.Cache
	AttackPower  float32
	SpellPower   float32
	Resources    resource.Unit
	Buffs        aura.TargetAuras
	Procs        proc.Registry

	Cooldowns       map[int]*cooldown.Cooldown
	ChargedCooldowns map[int]*cooldown.Charged

	GcdEnd  simtime.Time
	CastEnd simtime.Time
	HasCast bool

	ChannelEnd simtime.Time
	HasChannel bool

	NextAutoMH simtime.Time
	NextAutoOH simtime.Time
	HasAutoOH  bool

	IsMoving bool
}

// NewPlayer constructs a Player in its pre-iteration state.
func NewPlayer(id int, spec string, base stats.Ratings) *Player {
	return &Player{
		ID:               id,
		Spec:             spec,
		Stats:            stats.NewCache(base),
		Cooldowns:        make(map[int]*cooldown.Cooldown),
		ChargedCooldowns: make(map[int]*cooldown.Charged),
	}
}

// AddCooldown registers a plain cooldown for a spell.
func (p *Player) AddCooldown(spell int, cd cooldown.Cooldown) {
	c := cd
	p.Cooldowns[spell] = &c
}

// AddChargedCooldown registers a charge-based cooldown for a spell.
func (p *Player) AddChargedCooldown(spell int, cd cooldown.Charged) {
	c := cd
	p.ChargedCooldowns[spell] = &c
}

// Reset restores the player to its pre-iteration state: fresh buffs,
// cleared casting state, reset cooldowns/procs, and resources snapped
// back to starting values. Gear stats are untouched.
func (p *Player) Reset() {
	p.Buffs = aura.TargetAuras{}
	p.GcdEnd = simtime.Zero
	p.HasCast = false
	p.HasChannel = false
	p.NextAutoMH = simtime.Zero
	p.HasAutoOH = false
	p.IsMoving = false

	for _, cd := range p.Cooldowns {
		cd.Reset()
	}
	for _, cd := range p.ChargedCooldowns {
		cd.Reset()
	}
	p.Procs.Reset()

	if p.Resources.Primary != nil {
		p.Resources.Primary.Current = p.Resources.Primary.Max
	}
	if p.Resources.Secondary != nil {
		p.Resources.Secondary.Current = 0
	}
}

// OnGCD reports whether the player is still under the global cooldown at
// now.
func (p *Player) OnGCD(now simtime.Time) bool {
	return now.Before(p.GcdEnd)
}

// GCDRemaining returns the time left on the global cooldown at now.
func (p *Player) GCDRemaining(now simtime.Time) simtime.Time {
	if !now.Before(p.GcdEnd) {
		return simtime.Zero
	}
	return p.GcdEnd.Sub(now)
}

// IsCasting reports whether a hard cast is still in flight at now.
func (p *Player) IsCasting(now simtime.Time) bool {
	return p.HasCast && now.Before(p.CastEnd)
}

// IsChanneling reports whether a channel is still in flight at now.
func (p *Player) IsChanneling(now simtime.Time) bool {
	return p.HasChannel && now.Before(p.ChannelEnd)
}

// CanCast reports whether the player is free to begin a new cast: off
// GCD, not casting, not channeling.
func (p *Player) CanCast(now simtime.Time) bool {
	return !p.OnGCD(now) && !p.IsCasting(now) && !p.IsChanneling(now)
}

func (p *Player) StartGCD(now, duration simtime.Time) {
	p.GcdEnd = now.Add(duration)
}

func (p *Player) StartCast(now, duration simtime.Time) {
	p.CastEnd = now.Add(duration)
	p.HasCast = true
}

func (p *Player) CancelCast() {
	p.HasCast = false
}

func (p *Player) StartChannel(now, duration simtime.Time) {
	p.ChannelEnd = now.Add(duration)
	p.HasChannel = true
}

func (p *Player) CancelChannel() {
	p.HasChannel = false
}

// AutoAttackSpeed scales a weapon's base swing time by the player's
// current haste multiplier.
func (p *Player) AutoAttackSpeed(baseSpeed simtime.Time) simtime.Time {
	haste := p.Stats.Snapshot().HasteMult
	ms := float64(uint64(baseSpeed)) / float64(haste)
	if ms < 1 {
		ms = 1
	}
	return simtime.FromMillis(uint64(ms))
}

// ScheduleAuto advances the next main-hand or off-hand swing timer by one
// haste-scaled swing from now.
func (p *Player) ScheduleAuto(now, baseSpeed simtime.Time, isOffhand bool) {
	speed := p.AutoAttackSpeed(baseSpeed)
	if isOffhand {
		p.NextAutoOH = now.Add(speed)
		p.HasAutoOH = true
	} else {
		p.NextAutoMH = now.Add(speed)
	}
}
