// Package event implements the simulation's closed event-kind set and its
// stable time-ordered queue.
package event

import "github.com/legacy3/wowlab-sub002/simtime"

// Kind is the closed tagged-union of event kinds the dispatcher
// understands. Dispatch on Kind is a plain switch, never dynamic
// dispatch — only the per-spec handler callbacks it fans out to are
// polymorphic (see simcore.SpecHandler).
type Kind uint8

const (
	SimEnd Kind = iota
	GcdEnd
	CastComplete
	SpellDamage
	AuraExpire
	AuraTick
	CooldownReady
	ChargeReady
	AutoAttack
	PetAttack
	ResourceTick
	ProcIcdEnd
)

func (k Kind) String() string {
	switch k {
	case SimEnd:
		return "SimEnd"
	case GcdEnd:
		return "GcdEnd"
	case CastComplete:
		return "CastComplete"
	case SpellDamage:
		return "SpellDamage"
	case AuraExpire:
		return "AuraExpire"
	case AuraTick:
		return "AuraTick"
	case CooldownReady:
		return "CooldownReady"
	case ChargeReady:
		return "ChargeReady"
	case AutoAttack:
		return "AutoAttack"
	case PetAttack:
		return "PetAttack"
	case ResourceTick:
		return "ResourceTick"
	case ProcIcdEnd:
		return "ProcIcdEnd"
	default:
		return "Unknown"
	}
}

// Event is a single scheduled occurrence. Fields not relevant to Kind are
// simply left at their zero value; this mirrors the Rust source's enum
// variants without needing a variant-per-struct hierarchy in Go.
type Event struct {
	Kind       Kind
	Time       simtime.Time
	Spell      int
	Target     int
	Aura       int
	Unit       int
	Pet        int
	Proc       int
	SnapshotID int
	Stacks     int

	seq uint64
}

// Seq returns the insertion sequence number assigned when the event was
// scheduled, used only for diagnostics and stable tie-breaking.
func (e Event) Seq() uint64 { return e.seq }
