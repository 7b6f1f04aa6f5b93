package huntermbm

import (
	"github.com/legacy3/wowlab-sub002/resource"
	"github.com/legacy3/wowlab-sub002/rotation"
	"github.com/legacy3/wowlab-sub002/simcore"
)

// stateResolver implements both rotation.Resolver (property slots) and
// rotation.MethodEvaluator (method-call slots, spec.md §6) over a live
// SimState. It only handles the namespace/path combinations this
// handler's rotation actually references (see rotation.go); every other
// combination resolves to the zero Value, which is safe because Schema
// only ever asks for slots discovered by walking the same literal
// rotation.
type stateResolver struct {
	state   *simcore.SimState
	handler *Handler
}

// ResolveProperty resolves a $<namespace>.<path> property reference.
func (r stateResolver) ResolveProperty(namespace string, path []string) rotation.Value {
	switch namespace {
	case "resource":
		if len(path) != 1 {
			return rotation.Value{}
		}
		pool, ok := r.state.Player.Resources.Get(resourceTypeByName(path[0]))
		if !ok {
			return rotation.FloatValue(0)
		}
		return rotation.FloatValue(float64(pool.Current))

	case "combat":
		if len(path) == 1 && path[0] == "time" {
			return rotation.FloatValue(r.state.Now.Seconds())
		}

	case "cooldown":
		if len(path) != 2 {
			return rotation.Value{}
		}
		name, field := path[0], path[1]
		switch field {
		case "ready":
			return rotation.BoolValue(r.handler.isSpellReady(r.state, name))
		case "remaining":
			return rotation.FloatValue(r.handler.cooldownRemaining(r.state, name))
		case "charges":
			return rotation.IntValue(int64(r.handler.cooldownCharges(r.state, name)))
		}

	case "buff":
		if len(path) != 2 {
			return rotation.Value{}
		}
		name, field := path[0], path[1]
		def, ok := r.handler.Registry.AuraByName(name)
		switch field {
		case "active":
			return rotation.BoolValue(ok && r.state.Auras.Player.Has(def.ID, r.state.Now))
		case "remaining":
			if !ok {
				return rotation.FloatValue(0)
			}
			inst := r.state.Auras.Player.Get(def.ID)
			if inst == nil {
				return rotation.FloatValue(0)
			}
			return rotation.FloatValue(inst.Remaining(r.state.Now).Seconds())
		}

	case "target":
		if len(path) == 1 && path[0] == "health_percent" {
			if e := r.state.Enemies.PrimaryTarget(); e != nil {
				return rotation.FloatValue(float64(e.HealthPercent()))
			}
			return rotation.FloatValue(1)
		}
	}

	return rotation.Value{}
}

// EvaluateMethod resolves a $<namespace>.<path>.<method>(args) call,
// the one concrete method slot this handler's rotation hoists:
// target.time_to_percent(percent), backed by actor.Enemy.TimeToPercent.
func (r stateResolver) EvaluateMethod(namespace string, path []string, method string, args []rotation.Value, state *rotation.State) rotation.Value {
	if namespace == "target" && len(path) == 0 && method == "time_to_percent" && len(args) == 1 {
		e := r.state.Enemies.PrimaryTarget()
		if e == nil {
			return rotation.FloatValue(0)
		}
		var dps float32
		if secs := r.state.Now.Seconds(); secs > 0 {
			dps = float32(r.state.TotalDamage / secs)
		}
		return rotation.FloatValue(e.TimeToPercent(float32(args[0].AsFloat()), dps).Seconds())
	}
	return rotation.Value{}
}

func resourceTypeByName(name string) resource.Type {
	switch name {
	case "energy":
		return resource.Energy
	case "rage":
		return resource.Rage
	default:
		return resource.Focus
	}
}
