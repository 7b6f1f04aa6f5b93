// Package damage implements the scalar and 8-wide batch damage pipeline:
// layered multipliers, armor mitigation, and crit application. Grounded on
// original_source/crates/engine/src/combat/damage/{multipliers,simd}.rs.
package damage

// School identifies a damage type for per-school modifiers.
type School uint8

const (
	Physical School = iota
	Holy
	Fire
	Nature
	Frost
	Shadow
	Arcane
	Chaos
)

// Multipliers are the layered, multiplicatively-combined damage scalars
// applied to a hit. Defaults match the reference: everything at 1.0
// except Versatility (additive, starts at 0) and Crit (2.0 base).
type Multipliers struct {
	Action      float32
	DA          float32
	TA          float32
	Persistent  float32
	Player      float32
	Target      float32
	Versatility float32
	Pet         float32
	Crit        float32
}

// NewMultipliers returns the identity multiplier stack.
func NewMultipliers() Multipliers {
	return Multipliers{
		Action:     1.0,
		DA:         1.0,
		TA:         1.0,
		Persistent: 1.0,
		Player:     1.0,
		Target:     1.0,
		Pet:        1.0,
		Crit:       2.0,
	}
}

// TotalDA returns the combined multiplier for a direct-damage hit.
func (m Multipliers) TotalDA(isCrit bool) float32 {
	mult := m.Action * m.DA * m.Persistent * m.Player * m.Target * (1 + m.Versatility) * m.Pet
	if isCrit {
		mult *= m.Crit
	}
	return mult
}

// TotalTA returns the combined multiplier for a periodic-tick hit.
func (m Multipliers) TotalTA(isCrit bool) float32 {
	mult := m.Action * m.TA * m.Persistent * m.Player * m.Target * (1 + m.Versatility) * m.Pet
	if isCrit {
		mult *= m.Crit
	}
	return mult
}

// SchoolModifiers holds per-school additive modifiers from debuffs and
// talents.
type SchoolModifiers struct {
	Physical float32
	Holy     float32
	Fire     float32
	Nature   float32
	Frost    float32
	Shadow   float32
	Arcane   float32
	Chaos    float32
}

func (s *SchoolModifiers) Get(school School) float32 {
	switch school {
	case Physical:
		return s.Physical
	case Holy:
		return s.Holy
	case Fire:
		return s.Fire
	case Nature:
		return s.Nature
	case Frost:
		return s.Frost
	case Shadow:
		return s.Shadow
	case Arcane:
		return s.Arcane
	case Chaos:
		return s.Chaos
	default:
		return 0
	}
}

func (s *SchoolModifiers) Set(school School, value float32) {
	switch school {
	case Physical:
		s.Physical = value
	case Holy:
		s.Holy = value
	case Fire:
		s.Fire = value
	case Nature:
		s.Nature = value
	case Frost:
		s.Frost = value
	case Shadow:
		s.Shadow = value
	case Arcane:
		s.Arcane = value
	case Chaos:
		s.Chaos = value
	}
}
