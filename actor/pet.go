package actor

import (
	"github.com/legacy3/wowlab-sub002/aura"
	"github.com/legacy3/wowlab-sub002/cooldown"
	"github.com/legacy3/wowlab-sub002/simtime"
	"github.com/legacy3/wowlab-sub002/stats"
)

// Kind distinguishes how long a pet sticks around.
type Kind uint8

const (
	// Permanent pets survive an iteration reset (hunter pets, warlock
	// demons summoned for the whole fight).
	Permanent Kind = iota
	// Guardian pets are temporary but not a plain timed summon (e.g. a
	// talent-granted helper with its own dismiss condition).
	Guardian
	// Summon pets expire at a fixed time after being summoned.
	Summon
)

// Pet is a player-owned unit with its own stats, buffs, and cooldowns.
// Grounded on original_source/crates/engine/src/actor/pet.rs.
type Pet struct {
	ID    int
	Owner int
	Kind  Kind
	Name  string

	Stats *stats.Cache
	Buffs aura.TargetAuras

	Cooldowns map[int]*cooldown.Cooldown

	NextAuto  simtime.Time
	IsActive  bool
	ExpiresAt simtime.Time
	HasExpiry bool

	Target    int
	HasTarget bool

	attackPower float32
	spellPower  float32
}

// NewPet constructs an active, non-expiring pet.
func NewPet(id, owner int, kind Kind, name string) *Pet {
	return &Pet{
		ID:        id,
		Owner:     owner,
		Kind:      kind,
		Name:      name,
		Stats:     stats.NewCache(stats.Ratings{}),
		Cooldowns: make(map[int]*cooldown.Cooldown),
		IsActive:  true,
	}
}

// Temporary constructs a Summon-kind pet that expires duration after now.
func Temporary(id, owner int, name string, duration, now simtime.Time) *Pet {
	p := NewPet(id, owner, Summon, name)
	p.ExpiresAt = now.Add(duration)
	p.HasExpiry = true
	return p
}

// Reset restores the pet to its pre-iteration state.
func (p *Pet) Reset() {
	p.Buffs = aura.TargetAuras{}
	p.NextAuto = simtime.Zero
	p.IsActive = true
	p.HasTarget = false
	for _, cd := range p.Cooldowns {
		cd.Reset()
	}
}

// InheritStats copies a fraction of the owner's attack/spell power and
// the owner's raw haste/crit ratings onto the pet, per the reference
// pet-inheritance rule.
func (p *Pet) InheritStats(ownerAP, ownerSP, inheritance float32, ownerRatings stats.Ratings) {
	p.Stats.SetBase(stats.Ratings{
		Haste: ownerRatings.Haste,
		Crit:  ownerRatings.Crit,
	})
	p.attackPower = ownerAP * inheritance
	p.spellPower = ownerSP * inheritance
}

// AttackPower and SpellPower return the pet's inherited combat stats —
// unexported storage because they come from InheritStats, not gear, and
// don't belong in stats.Ratings.
func (p *Pet) AttackPower() float32 { return p.attackPower }
func (p *Pet) SpellPower() float32  { return p.spellPower }

// AddCooldown registers a cooldown for a spell.
func (p *Pet) AddCooldown(spell int, cd cooldown.Cooldown) {
	c := cd
	p.Cooldowns[spell] = &c
}

// IsValid reports whether the pet is active and, if it has an expiry,
// still before it.
func (p *Pet) IsValid(now simtime.Time) bool {
	if !p.IsActive {
		return false
	}
	if !p.HasExpiry {
		return true
	}
	return now.Before(p.ExpiresAt)
}

// AutoAttackSpeed scales a base swing time by the pet's haste multiplier.
func (p *Pet) AutoAttackSpeed(baseSpeed simtime.Time) simtime.Time {
	haste := p.Stats.Snapshot().HasteMult
	ms := float64(uint64(baseSpeed)) / float64(haste)
	if ms < 1 {
		ms = 1
	}
	return simtime.FromMillis(uint64(ms))
}

// ScheduleAuto advances the pet's next swing timer.
func (p *Pet) ScheduleAuto(now, baseSpeed simtime.Time) {
	p.NextAuto = now.Add(p.AutoAttackSpeed(baseSpeed))
}

// Manager owns every pet a player has summoned.
type Manager struct {
	pets   []*Pet
	nextID int
}

// NewManager constructs an empty pet manager.
func NewManager() *Manager {
	return &Manager{nextID: 1}
}

// Reset drops every non-permanent pet and resets the rest.
func (m *Manager) Reset() {
	kept := m.pets[:0]
	for _, p := range m.pets {
		if p.Kind == Permanent {
			p.Reset()
			kept = append(kept, p)
		}
	}
	m.pets = kept
}

// Summon creates and tracks a new pet, returning its assigned id.
func (m *Manager) Summon(owner int, kind Kind, name string) int {
	id := m.nextID
	m.nextID++
	m.pets = append(m.pets, NewPet(id, owner, kind, name))
	return id
}

// SummonTemporary creates and tracks a new expiring pet.
func (m *Manager) SummonTemporary(owner int, name string, duration, now simtime.Time) int {
	id := m.nextID
	m.nextID++
	m.pets = append(m.pets, Temporary(id, owner, name, duration, now))
	return id
}

// Get returns the pet with the given id, or nil.
func (m *Manager) Get(id int) *Pet {
	for _, p := range m.pets {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// Active returns every pet valid at now.
func (m *Manager) Active(now simtime.Time) []*Pet {
	var active []*Pet
	for _, p := range m.pets {
		if p.IsValid(now) {
			active = append(active, p)
		}
	}
	return active
}

// Cleanup evicts every pet that is neither valid nor permanent.
func (m *Manager) Cleanup(now simtime.Time) {
	kept := m.pets[:0]
	for _, p := range m.pets {
		if p.IsValid(now) || p.Kind == Permanent {
			kept = append(kept, p)
		}
	}
	m.pets = kept
}

// Dismiss marks a pet inactive without removing it until the next
// Cleanup pass.
func (m *Manager) Dismiss(id int) {
	if p := m.Get(id); p != nil {
		p.IsActive = false
	}
}

// ActiveCount returns the number of pets valid at now.
func (m *Manager) ActiveCount(now simtime.Time) int {
	n := 0
	for _, p := range m.pets {
		if p.IsValid(now) {
			n++
		}
	}
	return n
}
