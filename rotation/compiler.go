package rotation

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/legacy3/wowlab-sub002/simerr"
)

// DecisionKind is the closed set of things a rotation can tell the
// simulation to do on a given tick, per spec.md §4.3's Action type.
type DecisionKind uint8

const (
	DecisionNone DecisionKind = iota
	DecisionCast
	DecisionWait
	DecisionWaitGcd
)

// Decision is the final, extracted output of one rotation evaluation.
type Decision struct {
	Kind    DecisionKind
	Spell   string
	Seconds float64
}

func (d Decision) String() string {
	switch d.Kind {
	case DecisionCast:
		return "cast:" + d.Spell
	case DecisionWait:
		return "wait:" + strconv.FormatFloat(d.Seconds, 'f', -1, 64)
	case DecisionWaitGcd:
		return "wait_gcd"
	default:
		return "none"
	}
}

// Compiler is the rotation decision procedure: a schema discovered once
// at compile time plus the priority-list AST it walks every tick. It
// mirrors original_source/crates/engine/src/rotation/compiler.rs's
// RotationCompiler, minus the Rhai text front end — this repo's
// rotations are Go AST literals (see ast.go), so "compile" here means
// "discover the schema and set up the decision cache", not "parse a
// script".
//
// A LRU cache memoizes the final Decision for a given resolved-state key,
// so repeated identical ticks (e.g. many workers sharing static talent
// state, or a rotation re-evaluated before and after a no-op tick) skip
// the fold-and-walk entirely.
type Compiler struct {
	rotation *Rotation
	schema   *Schema
	cache    *lru.Cache[string, Decision]
}

// NewCompiler builds a Compiler over r: it walks every reachable
// expression once to build the Schema, and sizes a memoization cache for
// repeated per-tick evaluations.
func NewCompiler(r *Rotation, cacheSize int) (*Compiler, error) {
	if r == nil || len(r.Actions) == 0 {
		return nil, fmt.Errorf("%w: empty priority list", simerr.RotationCompile)
	}
	for _, a := range r.Actions {
		if err := validateAction(a, r); err != nil {
			return nil, err
		}
	}
	for name, list := range r.Lists {
		for _, a := range list {
			if err := validateAction(a, r); err != nil {
				return nil, fmt.Errorf("list %q: %w", name, err)
			}
		}
	}

	if cacheSize <= 0 {
		cacheSize = 256
	}
	cache, err := lru.New[string, Decision](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("rotation: %w", err)
	}

	preprocessed, schema := Preprocess(r)

	return &Compiler{
		rotation: preprocessed,
		schema:   schema,
		cache:    cache,
	}, nil
}

func validateAction(a Action, r *Rotation) error {
	if a.Kind == ActionCall || a.Kind == ActionRun {
		if _, ok := r.Lists[a.List]; !ok {
			return fmt.Errorf("%w: unknown list %q referenced", simerr.RotationCompile, a.List)
		}
	}
	return nil
}

// Schema returns the discovered variable schema.
func (c *Compiler) Schema() *Schema { return c.schema }

// NewState constructs a fresh per-iteration decision state bound to this
// compiler's schema.
func (c *Compiler) NewState() *State { return NewState(c.schema) }

// scopeKey builds a stable memoization key from state's currently
// resolved values and user variables. Determinism requires iterating the
// schema's slot/var lists (already in discovery order) rather than a Go
// map, whose iteration order is randomized.
func (c *Compiler) scopeKey(state *State) string {
	var b strings.Builder
	for _, p := range c.schema.Properties() {
		v := state.value(p.VarName)
		fmt.Fprintf(&b, "%s:%d:%.6f;", p.VarName, v.Type, v.AsFloat())
	}
	for _, m := range c.schema.MethodCalls() {
		v := state.value(m.VarName)
		fmt.Fprintf(&b, "%s:%d:%.6f;", m.VarName, v.Type, v.AsFloat())
	}
	names := append([]string(nil), c.schema.UserVars()...)
	sort.Strings(names)
	for _, n := range names {
		v := state.userVar(n)
		fmt.Fprintf(&b, "%s=%.6f;", n, v.AsFloat())
	}
	return b.String()
}

// Decide runs the per-tick evaluation described in spec.md §4.3: the
// caller must already have called state.Refresh(resolver, evaluator) so
// every property/method slot holds this tick's injected value. Decide then
// constant-folds each candidate condition over that resolved scope and
// walks the priority list depth-first, returning the first action whose
// (folded) condition is true.
func (c *Compiler) Decide(state *State) Decision {
	c.evaluateNamedVariables(state)

	key := c.scopeKey(state)
	if cached, ok := c.cache.Get(key); ok {
		return cached
	}
	d := c.walk(c.rotation.Actions, state, 0)
	c.cache.Add(key, d)
	return d
}

// evaluateNamedVariables resolves every rotation.Variables entry into a
// user variable before the priority list is walked, in a fixed
// alphabetical order for determinism. Named variables are flat macros
// over property/method slots (the schema), not a dependency chain over
// each other — that matches every rotation this project ships, and
// keeps evaluation order from ever mattering.
func (c *Compiler) evaluateNamedVariables(state *State) {
	if len(c.rotation.Variables) == 0 {
		return
	}
	names := make([]string, 0, len(c.rotation.Variables))
	for name := range c.rotation.Variables {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		state.SetUserVar(name, Evaluate(c.rotation.Variables[name], state))
	}
}

func (c *Compiler) walk(actions []Action, state *State, depth int) Decision {
	if depth > MaxDepth {
		return Decision{Kind: DecisionWaitGcd}
	}

	for _, a := range actions {
		folded := FoldAction(a, state, alwaysKnown)
		if folded.HasCond {
			// Every property/method slot the schema knows about was
			// already folded to a literal; a lingering non-literal means
			// the condition reads a user variable mutated earlier in
			// this same walk, so it falls back to direct evaluation.
			var truthy bool
			if folded.Condition.Op == OpBool {
				truthy = folded.Condition.BoolVal
			} else {
				truthy = Evaluate(folded.Condition, state).AsBool()
			}
			if !truthy {
				continue
			}
		}

		switch a.Kind {
		case ActionCast:
			return Decision{Kind: DecisionCast, Spell: a.Spell}
		case ActionUseTrinket, ActionUseItem:
			return Decision{Kind: DecisionCast, Spell: a.Spell}
		case ActionCall, ActionRun:
			list := c.rotation.Lists[a.List]
			d := c.walk(list, state, depth+1)
			if d.Kind != DecisionNone {
				return d
			}
		case ActionSetVar:
			state.SetUserVar(a.VarName, Evaluate(a.Value, state))
		case ActionModifyVar:
			applyVarOp(state, a)
		case ActionWait:
			return Decision{Kind: DecisionWait, Seconds: a.Seconds}
		case ActionWaitUntil:
			return Decision{Kind: DecisionWaitGcd}
		case ActionPool:
			return Decision{Kind: DecisionWaitGcd}
		}
	}

	return Decision{Kind: DecisionNone}
}

func applyVarOp(state *State, a Action) {
	if a.VarOp == VarReset {
		state.ResetUserVar(a.VarName)
		return
	}
	current := state.userVar(a.VarName)
	operand := Evaluate(a.Value, state)
	var result Value
	switch a.VarOp {
	case VarSet:
		result = operand
	case VarAdd:
		result = FloatValue(current.AsFloat() + operand.AsFloat())
	case VarSub:
		result = FloatValue(current.AsFloat() - operand.AsFloat())
	case VarMul:
		result = FloatValue(current.AsFloat() * operand.AsFloat())
	case VarDiv:
		result = FloatValue(SafeDiv(current.AsFloat(), operand.AsFloat()))
	case VarMin:
		result = FloatValue(minF(current.AsFloat(), operand.AsFloat()))
	case VarMax:
		result = FloatValue(maxF(current.AsFloat(), operand.AsFloat()))
	default:
		result = current
	}
	state.SetUserVar(a.VarName, result)
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// alwaysKnown marks every slot as foldable, since Decide only ever runs
// after state.Refresh has resolved the full schema — there are no
// partially-dynamic slots left by the time the priority list is walked.
func alwaysKnown(string) bool { return true }
