package rotation

import (
	"fmt"
	"sort"
	"strings"
)

// PropertySlot is one namespaced state reference a rotation reads
// directly, flattened from $<namespace>.<path> into a single variable
// name, per spec.md §4.3 and
// original_source/crates/engine_new/src/rotation/schema.rs's doc comment
// on StateSchema.
type PropertySlot struct {
	Namespace string
	Path      []string
	VarName   string
}

// MethodCall is one namespaced method invocation a rotation reads,
// hoisted out of the expression tree into a fresh slot (__m0, __m1, ...)
// evaluated exactly once per tick by a MethodEvaluator, per spec.md §4.3
// and the external evaluator interface in §6. Args is preserved as
// expressions, not pre-evaluated values, because an argument may itself
// reference a property slot resolved the same tick.
type MethodCall struct {
	Namespace string
	Path      []string
	Method    string
	Args      []Expr
	VarName   string
}

// MethodEvaluator is the external hook a SpecHandler injects to resolve
// method-slot calls against live simulation state (spec.md §6): given
// the namespace/path/method a rotation referenced and its evaluated
// arguments, it returns the call's result. The rotation package has no
// knowledge of what a namespace/method pair means; only the SpecHandler
// does.
type MethodEvaluator interface {
	EvaluateMethod(namespace string, path []string, method string, args []Value, state *State) Value
}

// propertyVarName flattens a namespaced property reference into the slot
// name PropertySlot/Schema use, e.g. Property("talent", "foo", "enabled")
// flattens to "talent_foo_enabled".
func propertyVarName(namespace string, path []string) string {
	var b strings.Builder
	b.WriteString(namespace)
	for _, p := range path {
		b.WriteByte('_')
		b.WriteString(p)
	}
	return b.String()
}

// methodCallKey identifies a method call for hoisting dedup: two
// identical calls in the same rotation (same namespace/path/method/args)
// share one slot rather than re-evaluating twice per tick.
func methodCallKey(namespace string, path []string, method string, args []Expr) string {
	var b strings.Builder
	b.WriteString(namespace)
	b.WriteByte('|')
	b.WriteString(strings.Join(path, "."))
	b.WriteByte('|')
	b.WriteString(method)
	for _, a := range args {
		b.WriteByte('|')
		writeExprKey(&b, a)
	}
	return b.String()
}

// writeExprKey renders an already-rewritten (OpProperty/OpMethodCall
// free) expression into a stable string for method-call dedup keys.
func writeExprKey(b *strings.Builder, e Expr) {
	fmt.Fprintf(b, "%d(", e.Op)
	switch e.Op {
	case OpBool:
		fmt.Fprintf(b, "%v", e.BoolVal)
	case OpInt:
		fmt.Fprintf(b, "%d", e.IntVal)
	case OpFloat:
		fmt.Fprintf(b, "%g", e.FloatVal)
	case OpVar:
		b.WriteString(e.VarName)
	case OpUserVar:
		b.WriteString(e.UserVar)
	}
	for _, a := range e.Args {
		writeExprKey(b, a)
		b.WriteByte(',')
	}
	b.WriteByte(')')
}

// preprocessCtx accumulates the property/method/user-variable slots
// discovered while rewriting a Rotation's expression trees.
type preprocessCtx struct {
	props    []PropertySlot
	propSeen map[string]bool

	methods    []MethodCall
	methodSeen map[string]int

	userVars    []string
	userVarSeen map[string]bool
}

func newPreprocessCtx() *preprocessCtx {
	return &preprocessCtx{
		propSeen:    make(map[string]bool),
		methodSeen:  make(map[string]int),
		userVarSeen: make(map[string]bool),
	}
}

// Preprocess walks every expression reachable from r (named variables,
// in lists, then the entry action list — named-variable and list keys
// are visited in sorted order so slot numbering never depends on Go's
// randomized map iteration) and rewrites every OpProperty/OpMethodCall
// node into a flat OpVar slot reference, exactly as
// original_source/crates/engine_new/src/rotation/tests.rs's
// preprocess_tests describes: namespaced paths flatten into property
// slots, method calls hoist into fresh __m0, __m1, ... slots in the
// order they're first encountered. It returns the rewritten rotation
// (safe for a Compiler to walk directly) and the Schema describing every
// slot discovered.
func Preprocess(r *Rotation) (*Rotation, *Schema) {
	ctx := newPreprocessCtx()

	variables := make(map[string]Expr, len(r.Variables))
	for _, name := range sortedKeys(r.Variables) {
		variables[name] = ctx.rewrite(r.Variables[name])
	}

	lists := make(map[string][]Action, len(r.Lists))
	for _, name := range sortedActionListKeys(r.Lists) {
		lists[name] = ctx.rewriteActions(r.Lists[name])
	}

	actions := ctx.rewriteActions(r.Actions)

	out := &Rotation{Name: r.Name, Variables: variables, Lists: lists, Actions: actions}
	schema := &Schema{
		properties:  ctx.props,
		methodCalls: ctx.methods,
		userVars:    ctx.userVars,
	}
	return out, schema
}

func sortedKeys(m map[string]Expr) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedActionListKeys(m map[string][]Action) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (c *preprocessCtx) rewriteActions(actions []Action) []Action {
	out := make([]Action, len(actions))
	for i, a := range actions {
		out[i] = a
		if a.HasCond {
			out[i].Condition = c.rewrite(a.Condition)
		}
		if a.HasValue {
			out[i].Value = c.rewrite(a.Value)
		}
	}
	return out
}

func (c *preprocessCtx) rewrite(e Expr) Expr {
	switch e.Op {
	case OpProperty:
		name := propertyVarName(e.Namespace, e.Path)
		if !c.propSeen[name] {
			c.propSeen[name] = true
			c.props = append(c.props, PropertySlot{
				Namespace: e.Namespace,
				Path:      append([]string(nil), e.Path...),
				VarName:   name,
			})
		}
		return Expr{Op: OpVar, VarName: name}

	case OpMethodCall:
		args := make([]Expr, len(e.Args))
		for i, a := range e.Args {
			args[i] = c.rewrite(a)
		}
		key := methodCallKey(e.Namespace, e.Path, e.Method, args)
		if idx, ok := c.methodSeen[key]; ok {
			return Expr{Op: OpVar, VarName: c.methods[idx].VarName}
		}
		varName := fmt.Sprintf("__m%d", len(c.methods))
		c.methodSeen[key] = len(c.methods)
		c.methods = append(c.methods, MethodCall{
			Namespace: e.Namespace,
			Path:      append([]string(nil), e.Path...),
			Method:    e.Method,
			Args:      args,
			VarName:   varName,
		})
		return Expr{Op: OpVar, VarName: varName}

	case OpUserVar:
		if !c.userVarSeen[e.UserVar] {
			c.userVarSeen[e.UserVar] = true
			c.userVars = append(c.userVars, e.UserVar)
		}
		return e

	case OpBool, OpInt, OpFloat, OpVar:
		return e

	default:
		out := e
		out.Args = make([]Expr, len(e.Args))
		for i, a := range e.Args {
			out.Args[i] = c.rewrite(a)
		}
		return out
	}
}
