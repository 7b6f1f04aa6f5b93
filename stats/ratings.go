// Package stats implements secondary-stat ratings, the rating→percent
// diminishing-returns conversion, and a dirty-flag lazy cache over the
// derived combat stats a unit reads every event. Grounded on
// original_source/crates/engine/src/stats/ratings.rs; the teacher repo
// carries no analogous subsystem, so the Go idiom (plain struct + methods,
// package-level constants, no external stats library exists in the corpus)
// follows the rest of this repo's style instead.
package stats

// RatingType enumerates the secondary combat ratings a unit's gear
// contributes.
type RatingType uint8

const (
	Crit RatingType = iota
	Haste
	Mastery
	Versatility
	Leech
	Avoidance
	Speed
)

// Ratings holds raw rating values, as they come off gear, before any
// diminishing-returns conversion.
type Ratings struct {
	Crit        float32
	Haste       float32
	Mastery     float32
	Versatility float32
	Leech       float32
	Avoidance   float32
	Speed       float32
}

func (r *Ratings) Get(t RatingType) float32 {
	switch t {
	case Crit:
		return r.Crit
	case Haste:
		return r.Haste
	case Mastery:
		return r.Mastery
	case Versatility:
		return r.Versatility
	case Leech:
		return r.Leech
	case Avoidance:
		return r.Avoidance
	case Speed:
		return r.Speed
	default:
		return 0
	}
}

func (r *Ratings) Set(t RatingType, value float32) {
	switch t {
	case Crit:
		r.Crit = value
	case Haste:
		r.Haste = value
	case Mastery:
		r.Mastery = value
	case Versatility:
		r.Versatility = value
	case Leech:
		r.Leech = value
	case Avoidance:
		r.Avoidance = value
	case Speed:
		r.Speed = value
	}
}

func (r *Ratings) Add(t RatingType, value float32) {
	r.Set(t, r.Get(t)+value)
}

// baseRating80 is the rating cost of one pre-DR percentage point at level
// 80, per the original source.
const baseRating80 = 180.0

// drThreshold and drCoefficient bound the diminishing-returns curve
// applied to crit/haste/mastery/versatility once the pre-DR percentage
// crosses 30%.
const (
	drThreshold   = 30.0
	drCoefficient = 0.4
)

// hasDiminishingReturns reports whether a rating type is subject to DR.
// Leech, avoidance, and speed (the tertiary stats) are exempt.
func hasDiminishingReturns(t RatingType) bool {
	switch t {
	case Crit, Haste, Mastery, Versatility:
		return true
	default:
		return false
	}
}

// RatingToPercent converts a raw rating value into its effective
// percentage, applying diminishing returns above the 30% threshold for
// the stats it governs.
func RatingToPercent(rating float32, t RatingType) float32 {
	raw := rating / baseRating80
	return applyDiminishingReturns(raw, t)
}

func applyDiminishingReturns(rawPct float32, t RatingType) float32 {
	if !hasDiminishingReturns(t) {
		return rawPct
	}
	if rawPct <= drThreshold {
		return rawPct
	}
	over := rawPct - drThreshold
	return drThreshold + over*drCoefficient/(1+over*drCoefficient/100.0)
}
