package actor

import (
	"strconv"

	"github.com/legacy3/wowlab-sub002/aura"
	"github.com/legacy3/wowlab-sub002/simtime"
)

// Enemy is a damageable target: health pool, armor, debuffs, and the
// movement/casting flags a rotation can query. Grounded on
// original_source/crates/engine/src/actor/enemy.rs.
type Enemy struct {
	ID   int
	Name string

	MaxHealth     float32
	CurrentHealth float32
	Armor         float32
	IsBoss        bool

	Debuffs aura.TargetAuras

	DiesAt    simtime.Time
	HasDiesAt bool

	Distance   float32
	IsCasting  bool
	IsMoving   bool
}

// defaultBossHealth/defaultBossArmor mirror the reference raid-boss
// preset: 10M health, level-83-equivalent armor.
const (
	defaultBossHealth = 10_000_000.0
	defaultBossArmor  = 11300.0
	defaultDistance   = 5.0
)

// NewEnemy constructs a raid-boss-preset enemy with the given id/name.
func NewEnemy(id int, name string) *Enemy {
	return &Enemy{
		ID:            id,
		Name:          name,
		MaxHealth:     defaultBossHealth,
		CurrentHealth: defaultBossHealth,
		Armor:         defaultBossArmor,
		IsBoss:        true,
		Distance:      defaultDistance,
	}
}

// RaidBoss is an alias for NewEnemy: the full raid-boss preset.
func RaidBoss(id int, name string) *Enemy {
	return NewEnemy(id, name)
}

// DungeonBoss presets a smaller boss health pool.
func DungeonBoss(id int, name string) *Enemy {
	e := NewEnemy(id, name)
	e.MaxHealth = 2_000_000.0
	e.CurrentHealth = 2_000_000.0
	return e
}

// Trash presets a non-boss trash mob.
func Trash(id int) *Enemy {
	e := NewEnemy(id, "Trash")
	e.MaxHealth = 500_000.0
	e.CurrentHealth = 500_000.0
	e.IsBoss = false
	return e
}

// Reset restores health to full and clears debuffs/flags for a new
// iteration.
func (e *Enemy) Reset() {
	e.CurrentHealth = e.MaxHealth
	e.Debuffs = aura.TargetAuras{}
	e.IsCasting = false
	e.IsMoving = false
}

// TimeToPercent returns the time, at a constant dps, until the enemy
// reaches the given health percentage. Returns Zero if already there or
// below, Max if dps is non-positive.
func (e *Enemy) TimeToPercent(percent, dps float32) simtime.Time {
	targetHealth := e.MaxHealth * (percent / 100.0)
	damageNeeded := e.CurrentHealth - targetHealth
	if damageNeeded <= 0 {
		return simtime.Zero
	}
	if dps <= 0 {
		return simtime.Max
	}
	return simtime.FromSeconds(float64(damageNeeded / dps))
}

// TimeToDie returns the time, at a constant dps, until current health
// reaches zero.
func (e *Enemy) TimeToDie(dps float32) simtime.Time {
	if dps <= 0 {
		return simtime.Max
	}
	return simtime.FromSeconds(float64(e.CurrentHealth / dps))
}

// HealthPercent returns current health as a fraction of max (0..1).
func (e *Enemy) HealthPercent() float32 {
	return e.CurrentHealth / e.MaxHealth
}

// IsAlive reports whether the enemy still has health remaining.
func (e *Enemy) IsAlive() bool {
	return e.CurrentHealth > 0
}

// IsBelow reports whether health percent (0..1) is under the given
// fraction.
func (e *Enemy) IsBelow(fraction float32) bool {
	return e.HealthPercent() < fraction
}

// TakeDamage subtracts amount from current health, floored at zero.
func (e *Enemy) TakeDamage(amount float32) {
	e.CurrentHealth -= amount
	if e.CurrentHealth < 0 {
		e.CurrentHealth = 0
	}
}

// ArmorMitigation computes the fraction of physical damage absorbed by
// armor at the given attacker level, per the standard armor formula with
// a boss-armor-constant bump for boss-tier targets.
func (e *Enemy) ArmorMitigation(attackerLevel uint8) float32 {
	k := float32(attackerLevel) * 467.5
	if e.IsBoss {
		k += 16593.0
	}
	return e.Armor / (e.Armor + k)
}

// EnemyManager owns every enemy in the encounter and tracks the primary
// target.
type EnemyManager struct {
	enemies []*Enemy
	Primary int
}

// NewEnemyManager constructs an empty enemy manager.
func NewEnemyManager() *EnemyManager {
	return &EnemyManager{}
}

// WithBosses constructs a manager pre-populated with count raid bosses.
func WithBosses(count int) *EnemyManager {
	m := NewEnemyManager()
	for i := 0; i < count; i++ {
		m.Add(RaidBoss(i, "Boss "+strconv.Itoa(i+1)))
	}
	return m
}

// Add appends an enemy to the encounter.
func (m *EnemyManager) Add(e *Enemy) {
	m.enemies = append(m.enemies, e)
}

// Get returns the enemy at id, or nil if out of range.
func (m *EnemyManager) Get(id int) *Enemy {
	if id < 0 || id >= len(m.enemies) {
		return nil
	}
	return m.enemies[id]
}

// PrimaryTarget returns the primary target enemy, or nil if unset/out of
// range.
func (m *EnemyManager) PrimaryTarget() *Enemy {
	return m.Get(m.Primary)
}

// Reset restores every enemy to its pre-iteration state.
func (m *EnemyManager) Reset() {
	for _, e := range m.enemies {
		e.Reset()
	}
}

// AliveCount returns the number of enemies with health remaining.
func (m *EnemyManager) AliveCount() int {
	n := 0
	for _, e := range m.enemies {
		if e.IsAlive() {
			n++
		}
	}
	return n
}

// Alive returns every enemy still alive.
func (m *EnemyManager) Alive() []*Enemy {
	var alive []*Enemy
	for _, e := range m.enemies {
		if e.IsAlive() {
			alive = append(alive, e)
		}
	}
	return alive
}

// Count returns the total enemy count, alive or not.
func (m *EnemyManager) Count() int {
	return len(m.enemies)
}

// AverageHealthPercent returns the mean health percent across alive
// enemies, zero if none are alive.
func (m *EnemyManager) AverageHealthPercent() float32 {
	alive := m.Alive()
	if len(alive) == 0 {
		return 0
	}
	var total float32
	for _, e := range alive {
		total += e.HealthPercent()
	}
	return total / float32(len(alive))
}
