package stats

// Derived holds the combat-ready percentages computed from Ratings, plus
// flat multipliers layered on top by auras/talents.
type Derived struct {
	CritChance     float32
	HasteMult      float32
	MasteryPercent float32
	Versatility    float32
	LeechPercent   float32
	AvoidancePct   float32
	SpeedPercent   float32
}

// Cache lazily recomputes Derived from Ratings plus external additive
// bonuses (from auras), only when something has marked it dirty. Every
// event that touches stat-affecting state should call Invalidate; every
// read should call Snapshot.
type Cache struct {
	base Ratings

	bonusCrit        float32
	bonusHaste       float32
	bonusMastery     float32
	bonusVersatility float32

	derived Derived
	dirty   bool
}

// NewCache constructs a stat cache seeded from base ratings, dirty so the
// first Snapshot call computes it.
func NewCache(base Ratings) *Cache {
	c := &Cache{base: base, dirty: true}
	return c
}

// SetBase replaces the raw ratings (e.g. on gear change) and marks dirty.
func (c *Cache) SetBase(r Ratings) {
	c.base = r
	c.dirty = true
}

// AddBonus layers a flat additive percentage bonus (e.g. from a buff) on
// top of the rating-derived value, and marks dirty.
func (c *Cache) AddBonus(t RatingType, percent float32) {
	switch t {
	case Crit:
		c.bonusCrit += percent
	case Haste:
		c.bonusHaste += percent
	case Mastery:
		c.bonusMastery += percent
	case Versatility:
		c.bonusVersatility += percent
	}
	c.dirty = true
}

// Invalidate forces the next Snapshot to recompute.
func (c *Cache) Invalidate() {
	c.dirty = true
}

// Snapshot returns the current derived stats, recomputing only if dirty.
func (c *Cache) Snapshot() Derived {
	if c.dirty {
		c.recompute()
	}
	return c.derived
}

func (c *Cache) recompute() {
	critPct := RatingToPercent(c.base.Crit, Crit) + c.bonusCrit
	hastePct := RatingToPercent(c.base.Haste, Haste) + c.bonusHaste
	masteryPct := RatingToPercent(c.base.Mastery, Mastery) + c.bonusMastery
	versPct := RatingToPercent(c.base.Versatility, Versatility) + c.bonusVersatility

	c.derived = Derived{
		CritChance:     critPct / 100.0,
		HasteMult:      1.0 + hastePct/100.0,
		MasteryPercent: masteryPct,
		Versatility:    versPct / 100.0,
		LeechPercent:   RatingToPercent(c.base.Leech, Leech),
		AvoidancePct:   RatingToPercent(c.base.Avoidance, Avoidance),
		SpeedPercent:   RatingToPercent(c.base.Speed, Speed),
	}
	c.dirty = false
}
