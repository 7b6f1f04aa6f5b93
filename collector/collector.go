// Package collector accumulates per-spell damage statistics during one
// simulation iteration and renders sorted damage/proc/cooldown
// breakdowns from them. Grounded on
// original_source/crates/engine_new/src/results/collector.rs
// (SpellStats/StatsCollector) and
// original_source/crates/engine/src/results/breakdown.rs
// (DamageBreakdown/ProcBreakdown/CooldownBreakdown).
package collector

import (
	"sort"
	"strconv"

	"github.com/legacy3/wowlab-sub002/simtime"
)

// SpellStats accumulates the hit/crit/damage counters for one spell
// (spec.md §4.9): {count, crits, total_damage, max_hit, min_hit,
// tick_count, tick_damage}.
type SpellStats struct {
	Spell       int
	Count       uint32
	Crits       uint32
	TotalDamage float64
	MaxHit      float32
	MinHit      float32
	TickCount   uint32
	TickDamage  float64
}

func newSpellStats(spell int) SpellStats {
	return SpellStats{Spell: spell, MinHit: maxFloat32}
}

const maxFloat32 = 3.402823466e+38

// Record updates the direct-hit or periodic-tick bucket for one damage
// instance.
func (s *SpellStats) Record(amount float32, isCrit, isPeriodic bool) {
	if isPeriodic {
		s.TickCount++
		s.TickDamage += float64(amount)
		return
	}

	s.Count++
	s.TotalDamage += float64(amount)
	if amount > s.MaxHit {
		s.MaxHit = amount
	}
	if amount < s.MinHit {
		s.MinHit = amount
	}
	if isCrit {
		s.Crits++
	}
}

// Average returns average direct-hit damage.
func (s *SpellStats) Average() float32 {
	if s.Count == 0 {
		return 0
	}
	return float32(s.TotalDamage / float64(s.Count))
}

// CritRate returns the fraction of direct hits that crit.
func (s *SpellStats) CritRate() float32 {
	if s.Count == 0 {
		return 0
	}
	return float32(s.Crits) / float32(s.Count)
}

// Total returns direct plus periodic damage.
func (s *SpellStats) Total() float64 {
	return s.TotalDamage + s.TickDamage
}

// DamageRecord is one optional trace-event entry (spec.md §4.9: "An
// optional event trace... disabled by default to avoid allocations on
// the hot path").
type DamageRecord struct {
	Time       simtime.Time
	Spell      int
	Target     int
	Amount     float32
	IsCrit     bool
	IsPeriodic bool
}

// Collector accumulates statistics across one simulation iteration.
// Per-spell lookup is a map (unlike aura's small-slice containers) since
// spell cardinality is not bounded tightly enough to make linear scan
// worthwhile, and the collector is read only once per iteration to build
// a breakdown, never on the per-event hot path's inner loop.
type Collector struct {
	spells      map[int]*SpellStats
	order       []int // first-seen order, for stable iteration
	events      []DamageRecord
	TotalDamage float64
	start       simtime.Time
	end         simtime.Time
	traceOn     bool
}

// New constructs an empty collector. traceOn enables the optional
// per-event trace.
func New(traceOn bool) *Collector {
	return &Collector{spells: make(map[int]*SpellStats), traceOn: traceOn}
}

// Reset clears all accumulated state for a fresh iteration.
func (c *Collector) Reset() {
	for k := range c.spells {
		delete(c.spells, k)
	}
	c.order = c.order[:0]
	c.events = c.events[:0]
	c.TotalDamage = 0
	c.start = simtime.Zero
	c.end = simtime.Zero
}

// SetStart records the fight's start time.
func (c *Collector) SetStart(t simtime.Time) { c.start = t }

// SetEnd records the fight's end time.
func (c *Collector) SetEnd(t simtime.Time) { c.end = t }

// Duration returns end minus start.
func (c *Collector) Duration() simtime.Time { return c.end.Sub(c.start) }

// DPS returns total damage divided by duration, zero if duration is
// non-positive.
func (c *Collector) DPS() float64 {
	d := c.Duration().Seconds()
	if d <= 0 {
		return 0
	}
	return c.TotalDamage / d
}

// RecordDamage updates totals, the per-spell bucket, and (if enabled)
// appends a trace event.
func (c *Collector) RecordDamage(time simtime.Time, spell, target int, amount float32, isCrit, isPeriodic bool) {
	c.TotalDamage += float64(amount)
	c.end = time

	stats, ok := c.spells[spell]
	if !ok {
		s := newSpellStats(spell)
		stats = &s
		c.spells[spell] = stats
		c.order = append(c.order, spell)
	}
	stats.Record(amount, isCrit, isPeriodic)

	if c.traceOn {
		c.events = append(c.events, DamageRecord{
			Time: time, Spell: spell, Target: target,
			Amount: amount, IsCrit: isCrit, IsPeriodic: isPeriodic,
		})
	}
}

// Spell returns the accumulated stats for a spell, if any were recorded.
func (c *Collector) Spell(spell int) (*SpellStats, bool) {
	s, ok := c.spells[spell]
	return s, ok
}

// Spells returns every tracked spell's stats, in first-seen order.
func (c *Collector) Spells() []*SpellStats {
	out := make([]*SpellStats, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.spells[id])
	}
	return out
}

// Events returns the trace, empty unless tracing was enabled.
func (c *Collector) Events() []DamageRecord { return c.events }

// BreakdownEntry is one row of a rendered damage breakdown.
type BreakdownEntry struct {
	Spell    int
	Name     string
	Damage   float64
	DPS      float64
	Percent  float32
	Count    uint32
	Average  float32
	CritRate float32
}

// DamageBreakdown is the complete, sorted damage summary for one
// iteration (spec.md §6, §4.9).
type DamageBreakdown struct {
	Entries     []BreakdownEntry
	TotalDamage float64
	TotalDPS    float64
	DurationSec float32
}

// BuildDamageBreakdown renders a DamageBreakdown from c, resolving spell
// names through nameOf (falling back to a synthetic name if absent), and
// sorting rows by total damage descending (spec.md §4.9).
func BuildDamageBreakdown(c *Collector, nameOf func(spell int) (string, bool)) DamageBreakdown {
	duration := c.Duration().Seconds()
	total := c.TotalDamage

	entries := make([]BreakdownEntry, 0, len(c.order))
	for _, id := range c.order {
		s := c.spells[id]
		name, ok := nameOf(id)
		if !ok {
			name = spellFallbackName(id)
		}

		damage := s.Total()
		var dps float64
		if duration > 0 {
			dps = damage / duration
		}
		var percent float32
		if total > 0 {
			percent = float32(damage / total * 100)
		}

		count := s.Count + s.TickCount
		var average float32
		if count > 0 {
			average = float32((s.TotalDamage + s.TickDamage) / float64(count))
		}

		entries = append(entries, BreakdownEntry{
			Spell:    id,
			Name:     name,
			Damage:   damage,
			DPS:      dps,
			Percent:  percent,
			Count:    count,
			Average:  average,
			CritRate: s.CritRate(),
		})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Damage > entries[j].Damage })

	var totalDPS float64
	if duration > 0 {
		totalDPS = total / duration
	}

	return DamageBreakdown{
		Entries:     entries,
		TotalDamage: total,
		TotalDPS:    totalDPS,
		DurationSec: float32(duration),
	}
}

func spellFallbackName(id int) string {
	return "Spell_" + strconv.Itoa(id)
}

// ProcEntry is one proc's uptime/rate row (spec.md §3 expansion, from
// breakdown.rs's ProcBreakdown).
type ProcEntry struct {
	Name    string
	Procs   uint32
	PPM     float32
	Uptime  float32
}

// ProcBreakdown is the complete per-proc summary for one iteration.
type ProcBreakdown struct {
	Entries []ProcEntry
}

// CooldownEntry is one cooldown's usage-efficiency row: uses versus the
// theoretical maximum possible over the fight.
type CooldownEntry struct {
	Spell        int
	Name         string
	Uses         uint32
	PossibleUses uint32
	Efficiency   float32
}

// CooldownBreakdown is the complete per-cooldown usage summary for one
// iteration.
type CooldownBreakdown struct {
	Entries []CooldownEntry
}

// NewCooldownEntry computes Efficiency = uses / possibleUses (zero if
// possibleUses is zero).
func NewCooldownEntry(spell int, name string, uses, possibleUses uint32) CooldownEntry {
	var eff float32
	if possibleUses > 0 {
		eff = float32(uses) / float32(possibleUses)
	}
	return CooldownEntry{Spell: spell, Name: name, Uses: uses, PossibleUses: possibleUses, Efficiency: eff}
}
