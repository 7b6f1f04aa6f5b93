package simcore

import (
	"github.com/legacy3/wowlab-sub002/actor"
	"github.com/legacy3/wowlab-sub002/aura"
	"github.com/legacy3/wowlab-sub002/collector"
	"github.com/legacy3/wowlab-sub002/damage"
	"github.com/legacy3/wowlab-sub002/event"
	"github.com/legacy3/wowlab-sub002/simrng"
	"github.com/legacy3/wowlab-sub002/simtime"
	"github.com/legacy3/wowlab-sub002/stats"
)

// resourceTickInterval is the fixed cadence (spec.md §4.2) at which the
// built-in ResourceTick handler regenerates the player's primary
// resource, scaled by haste.
const resourceTickInterval = simtime.Time(100)

// Config is the minimal, already-validated sim configuration the core
// consumes (spec.md §6). The richer, externally-loaded SimConfig (YAML,
// env, CLI flags, struct-tag validation) lives in the config package and
// is reduced to this shape before a Simulation is constructed, keeping
// the hot-loop core free of any config-loading dependency.
type Config struct {
	Duration    simtime.Time
	Seed        uint64
	TargetCount int
	PlayerSpec  string
	PlayerBase  stats.Ratings
	TraceEvents bool
}

// SimState is the aggregate state one simulation worker owns for the
// duration of an iteration: the event queue, rng, actors, aura tracker,
// damage multipliers, and accumulators. Grounded on
// original_source/crates/engine/src/sim/state.rs's SimState.
type SimState struct {
	Config Config

	Now      simtime.Time
	Finished bool
	Iteration uint64

	Queue *event.Queue
	Rng   *simrng.Rng

	Player  *actor.Player
	Pets    *actor.Manager
	Enemies *actor.EnemyManager

	Auras *aura.Tracker

	Multipliers damage.Multipliers

	Registry *Registry

	TotalDamage float64
	Casts       int

	// Spells accumulates per-spell damage statistics for the just-run
	// iteration (spec.md §4.9 / §3 expansion), read once at the end to
	// build a collector.DamageBreakdown — never consulted on the hot
	// dispatch path itself.
	Spells *collector.Collector

	Trace   []TraceEvent
	traceOn bool
}

// TraceEvent is one entry of the optional per-event trace (spec.md §4.9;
// disabled by default to avoid allocations on the hot path).
type TraceEvent struct {
	Time       simtime.Time
	Spell      int
	Target     int
	Amount     float32
	IsCrit     bool
	IsPeriodic bool
}

// NewState constructs a SimState in its pre-first-iteration shape:
// actors, aura tracker, and registry wired up, but no events scheduled
// yet (Reset schedules the per-iteration baseline).
func NewState(cfg Config, registry *Registry) *SimState {
	s := &SimState{
		Config:      cfg,
		Queue:       event.NewQueue(),
		Rng:         simrng.New(cfg.Seed),
		Player:      actor.NewPlayer(0, cfg.PlayerSpec, cfg.PlayerBase),
		Pets:        actor.NewManager(),
		Enemies:     actor.WithBosses(cfg.TargetCount),
		Auras:       aura.NewTracker(cfg.TargetCount),
		Multipliers: damage.NewMultipliers(),
		Registry:    registry,
		Spells:      collector.New(cfg.TraceEvents),
		traceOn:     cfg.TraceEvents,
	}
	return s
}

// Reset restores SimState to its pre-iteration shape for iteration i:
// reseeds the rng (base_seed XOR i, per spec.md §3/§5), clears the
// queue and every actor's transient state, and pre-schedules the three
// baseline events every iteration needs. Callers then invoke the spec
// handler's Init to let it schedule auto-attacks and summon pets.
func (s *SimState) Reset(i uint64) {
	s.Iteration = i
	s.Rng.Reseed(simrng.Split(s.Config.Seed, i))

	s.Queue.Clear()
	s.Now = simtime.Zero
	s.Finished = false
	s.TotalDamage = 0
	s.Casts = 0
	s.Trace = s.Trace[:0]

	s.Player.Reset()
	s.Pets.Reset()
	s.Enemies.Reset()
	s.Auras.Reset()
	s.Multipliers = damage.NewMultipliers()
	s.Spells.Reset()
	s.Spells.SetStart(simtime.Zero)

	s.Queue.Schedule(s.Config.Duration, event.Event{Kind: event.SimEnd})
	s.Queue.Schedule(resourceTickInterval, event.Event{Kind: event.ResourceTick})
	s.Queue.Schedule(simtime.Zero, event.Event{Kind: event.GcdEnd})
}

// RecordDamage accumulates a finished damage result against the running
// total and, if tracing is enabled, appends a TraceEvent.
func (s *SimState) RecordDamage(spell, target int, amount float32, isCrit, isPeriodic bool) {
	s.TotalDamage += float64(amount)
	s.Spells.RecordDamage(s.Now, spell, target, amount, isCrit, isPeriodic)
	if s.traceOn {
		s.Trace = append(s.Trace, TraceEvent{
			Time: s.Now, Spell: spell, Target: target,
			Amount: amount, IsCrit: isCrit, IsPeriodic: isPeriodic,
		})
	}
}

// DPS returns total damage divided by the configured fight duration.
func (s *SimState) DPS() float64 {
	d := s.Config.Duration.Seconds()
	if d <= 0 {
		return 0
	}
	return s.TotalDamage / d
}

// HasteMult returns the player's current haste multiplier, the scaling
// factor cooldowns/GCD/ticks read when Hasted is set.
func (s *SimState) HasteMult() float32 {
	return s.Player.Stats.Snapshot().HasteMult
}
