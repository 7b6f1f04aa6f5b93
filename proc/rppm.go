package proc

import (
	"github.com/legacy3/wowlab-sub002/simrng"
	"github.com/legacy3/wowlab-sub002/simtime"
)

// Rppm is a real-procs-per-minute proc state with bad-luck protection
// (BLP) and an optional internal cooldown, grounded 1:1 on
// original_source/crates/engine/src/proc/rppm.rs.
type Rppm struct {
	ProcID        int
	BasePPM       float32
	LastProc      simtime.Time
	HasLastProc   bool
	LastAttempt   simtime.Time
	HasLastAttempt bool
	BlpMultiplier float32
	HasteScaling  bool
	CritScaling   bool
	Icd           simtime.Time
	HasIcd        bool
}

// NewRppm constructs an Rppm with haste scaling on and crit scaling off,
// matching the original source's default builder.
func NewRppm(procID int, basePPM float32) *Rppm {
	return &Rppm{
		ProcID:        procID,
		BasePPM:       basePPM,
		BlpMultiplier: 1.0,
		HasteScaling:  true,
	}
}

func (r *Rppm) WithCritScaling() *Rppm {
	r.CritScaling = true
	return r
}

func (r *Rppm) WithIcd(icd simtime.Time) *Rppm {
	r.Icd = icd
	r.HasIcd = true
	return r
}

// Reset restores BLP to 1.0 and clears proc/attempt history.
func (r *Rppm) Reset() {
	r.BlpMultiplier = 1.0
	r.HasLastProc = false
	r.HasLastAttempt = false
}

// OnIcd reports whether t is still within the internal cooldown window
// after the last successful proc.
func (r *Rppm) OnIcd(t simtime.Time) bool {
	if !r.HasIcd || !r.HasLastProc {
		return false
	}
	return t < r.LastProc.Add(r.Icd)
}

// EffectivePPM scales BasePPM by haste and crit, per whichever scaling
// flags are enabled.
func (r *Rppm) EffectivePPM(haste, crit float32) float32 {
	ppm := r.BasePPM
	if r.HasteScaling {
		ppm *= haste
	}
	if r.CritScaling {
		ppm *= 1 + crit
	}
	return ppm
}

// ProcChance computes the clamped [0,1] proc probability at attempt time
// t, per spec.md §3's formula.
func (r *Rppm) ProcChance(t simtime.Time, haste, crit float32) float32 {
	effective := r.EffectivePPM(haste, crit)
	deltaSince := float32(60) // large default if no prior attempt
	if r.HasLastAttempt {
		deltaSince = float32(t.Sub(r.LastAttempt).Seconds())
	}
	if deltaSince < 0.1 {
		deltaSince = 0.1
	}
	chance := effective * deltaSince / 60.0 * r.BlpMultiplier
	if chance < 0 {
		return 0
	}
	if chance > 1 {
		return 1
	}
	return chance
}

// updateBlp grows the bad-luck-protection multiplier after a failed
// attempt, capped at 100x.
func (r *Rppm) updateBlp(deltaSinceAttempt float32) {
	r.BlpMultiplier *= 1 + 3*deltaSinceAttempt
	if r.BlpMultiplier > 100 {
		r.BlpMultiplier = 100
	}
}

// Attempt rolls the proc at time t. If on ICD, it returns false without
// rolling (and without touching BLP/attempt bookkeeping). On success, BLP
// resets to 1.0 and LastProc updates. On failure, BLP grows.
func (r *Rppm) Attempt(t simtime.Time, haste, crit float32, rng *simrng.Rng) bool {
	if r.OnIcd(t) {
		return false
	}

	deltaSince := float32(60)
	if r.HasLastAttempt {
		deltaSince = float32(t.Sub(r.LastAttempt).Seconds())
	}

	chance := r.ProcChance(t, haste, crit)
	r.LastAttempt = t
	r.HasLastAttempt = true

	if rng.Roll(chance) {
		r.BlpMultiplier = 1.0
		r.LastProc = t
		r.HasLastProc = true
		return true
	}

	r.updateBlp(deltaSince)
	return false
}

// CurrentBlp returns the current bad-luck-protection multiplier.
func (r *Rppm) CurrentBlp() float32 { return r.BlpMultiplier }

// TimeSinceProc returns the time since the last successful proc, or Max
// if there has never been one.
func (r *Rppm) TimeSinceProc(t simtime.Time) simtime.Time {
	if !r.HasLastProc {
		return simtime.Max
	}
	return t.Sub(r.LastProc)
}

// Fixed is a plain fixed-percentage proc with an optional ICD.
type Fixed struct {
	ProcID   int
	Chance   float32
	Icd      simtime.Time
	HasIcd   bool
	LastProc simtime.Time
	HasLast  bool
}

func NewFixed(procID int, chance float32) *Fixed {
	return &Fixed{ProcID: procID, Chance: chance}
}

func (f *Fixed) WithIcd(icd simtime.Time) *Fixed {
	f.Icd = icd
	f.HasIcd = true
	return f
}

func (f *Fixed) Reset() {
	f.HasLast = false
}

func (f *Fixed) OnIcd(t simtime.Time) bool {
	if !f.HasIcd || !f.HasLast {
		return false
	}
	return t < f.LastProc.Add(f.Icd)
}

// Attempt rolls the fixed-chance proc, respecting ICD.
func (f *Fixed) Attempt(t simtime.Time, rng *simrng.Rng) bool {
	if f.OnIcd(t) {
		return false
	}
	if rng.Roll(f.Chance) {
		f.LastProc = t
		f.HasLast = true
		return true
	}
	return false
}
