package rotation_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/legacy3/wowlab-sub002/rotation"
)

// fakeResolver resolves every namespaced property to a fixed table,
// exercising the "caller injects values into property slots" contract
// from spec.md §4.3 without any simcore dependency.
type fakeResolver struct {
	values map[string]rotation.Value
}

func propKey(namespace string, path ...string) string {
	key := namespace
	for _, p := range path {
		key += "." + p
	}
	return key
}

func (f fakeResolver) ResolveProperty(namespace string, path []string) rotation.Value {
	if v, ok := f.values[propKey(namespace, path...)]; ok {
		return v
	}
	return rotation.Value{}
}

// fakeMethodEvaluator resolves every method-slot call to the same fixed
// value and counts the calls, exercising the §6 external
// "rotation method-call evaluator" interface.
type fakeMethodEvaluator struct {
	calls int
	value rotation.Value
}

func (f *fakeMethodEvaluator) EvaluateMethod(namespace string, path []string, method string, args []rotation.Value, state *rotation.State) rotation.Value {
	f.calls++
	return f.value
}

func cdReady(name string) rotation.Expr      { return rotation.Property("cooldown", name, "ready") }
func resourceProp(name string) rotation.Expr { return rotation.Property("resource", name) }

func simpleRotation() *rotation.Rotation {
	return &rotation.Rotation{
		Name: "test",
		Actions: []rotation.Action{
			{
				Kind:      rotation.ActionCast,
				Spell:     "kill_command",
				Condition: cdReady("kill_command"),
				HasCond:   true,
			},
			{
				Kind:      rotation.ActionCast,
				Spell:     "cobra_shot",
				Condition: rotation.Gte(resourceProp("focus"), rotation.Float(35)),
				HasCond:   true,
			},
			{Kind: rotation.ActionWaitUntil},
		},
	}
}

func TestSchemaDiscoversEveryReferencedProperty(t *testing.T) {
	_, schema := rotation.Preprocess(simpleRotation())
	require.Len(t, schema.Properties(), 2)

	names := []string{schema.Properties()[0].VarName, schema.Properties()[1].VarName}
	require.Contains(t, names, "cooldown_kill_command_ready")
	require.Contains(t, names, "resource_focus")
}

func TestDecideReturnsFirstTrueAction(t *testing.T) {
	compiler, err := rotation.NewCompiler(simpleRotation(), 16)
	require.NoError(t, err)

	state := compiler.NewState()
	state.Refresh(fakeResolver{values: map[string]rotation.Value{
		propKey("cooldown", "kill_command", "ready"): rotation.BoolValue(true),
		propKey("resource", "focus"):                 rotation.FloatValue(10),
	}}, nil)

	d := compiler.Decide(state)
	require.Equal(t, rotation.DecisionCast, d.Kind)
	require.Equal(t, "kill_command", d.Spell)
	require.Equal(t, "cast:kill_command", d.String())
}

func TestDecideFallsThroughToLaterAction(t *testing.T) {
	compiler, err := rotation.NewCompiler(simpleRotation(), 16)
	require.NoError(t, err)

	state := compiler.NewState()
	state.Refresh(fakeResolver{values: map[string]rotation.Value{
		propKey("cooldown", "kill_command", "ready"): rotation.BoolValue(false),
		propKey("resource", "focus"):                 rotation.FloatValue(40),
	}}, nil)

	d := compiler.Decide(state)
	require.Equal(t, rotation.DecisionCast, d.Kind)
	require.Equal(t, "cobra_shot", d.Spell)
}

func TestDecideFallsBackToWaitGcdWhenNothingQualifies(t *testing.T) {
	compiler, err := rotation.NewCompiler(simpleRotation(), 16)
	require.NoError(t, err)

	state := compiler.NewState()
	state.Refresh(fakeResolver{values: map[string]rotation.Value{
		propKey("cooldown", "kill_command", "ready"): rotation.BoolValue(false),
		propKey("resource", "focus"):                 rotation.FloatValue(10),
	}}, nil)

	d := compiler.Decide(state)
	require.Equal(t, rotation.DecisionWaitGcd, d.Kind)
	require.Equal(t, "wait_gcd", d.String())
}

func TestDecideIsDeterministicForIdenticalScope(t *testing.T) {
	compiler, err := rotation.NewCompiler(simpleRotation(), 16)
	require.NoError(t, err)

	resolver := fakeResolver{values: map[string]rotation.Value{
		propKey("cooldown", "kill_command", "ready"): rotation.BoolValue(true),
		propKey("resource", "focus"):                 rotation.FloatValue(10),
	}}

	s1 := compiler.NewState()
	s1.Refresh(resolver, nil)
	s2 := compiler.NewState()
	s2.Refresh(resolver, nil)

	require.Equal(t, compiler.Decide(s1), compiler.Decide(s2))
}

func TestEmptyRotationRejectedAtCompile(t *testing.T) {
	_, err := rotation.NewCompiler(&rotation.Rotation{}, 16)
	require.Error(t, err)
}

func TestCallingUnknownListIsRejectedAtCompile(t *testing.T) {
	r := &rotation.Rotation{
		Actions: []rotation.Action{
			{Kind: rotation.ActionCall, List: "missing"},
		},
	}
	_, err := rotation.NewCompiler(r, 16)
	require.Error(t, err)
}

func TestNamedVariablesResolveBeforeTheActionList(t *testing.T) {
	r := &rotation.Rotation{
		Variables: map[string]rotation.Expr{
			"pool_focus": rotation.Gte(resourceProp("focus"), rotation.Float(50)),
		},
		Actions: []rotation.Action{
			{
				Kind:      rotation.ActionCast,
				Spell:     "cobra_shot",
				Condition: rotation.UserVar("pool_focus"),
				HasCond:   true,
			},
			{Kind: rotation.ActionWaitUntil},
		},
	}
	compiler, err := rotation.NewCompiler(r, 16)
	require.NoError(t, err)

	state := compiler.NewState()
	state.Refresh(fakeResolver{values: map[string]rotation.Value{
		propKey("resource", "focus"): rotation.FloatValue(60),
	}}, nil)

	d := compiler.Decide(state)
	require.Equal(t, rotation.DecisionCast, d.Kind)
	require.Equal(t, "cobra_shot", d.Spell)
}

// methodRotation exercises a single hoisted method-call slot gating the
// one action it names.
func methodRotation() *rotation.Rotation {
	return &rotation.Rotation{
		Actions: []rotation.Action{
			{
				Kind:  rotation.ActionCast,
				Spell: "kill_shot",
				Condition: rotation.Lt(
					rotation.Method("target", nil, "time_to_percent", rotation.Float(20)),
					rotation.Float(3),
				),
				HasCond: true,
			},
			{Kind: rotation.ActionWaitUntil},
		},
	}
}

func TestPreprocessHoistsMethodCallIntoASlot(t *testing.T) {
	_, schema := rotation.Preprocess(methodRotation())
	require.Len(t, schema.MethodCalls(), 1)

	call := schema.MethodCalls()[0]
	require.Equal(t, "target", call.Namespace)
	require.Equal(t, "time_to_percent", call.Method)
	require.Equal(t, "__m0", call.VarName)
}

func TestPreprocessDedupesIdenticalMethodCalls(t *testing.T) {
	r := &rotation.Rotation{
		Actions: []rotation.Action{
			{
				Kind: rotation.ActionCast, Spell: "a", HasCond: true,
				Condition: rotation.Lt(rotation.Method("target", nil, "time_to_percent", rotation.Float(20)), rotation.Float(3)),
			},
			{
				Kind: rotation.ActionCast, Spell: "b", HasCond: true,
				Condition: rotation.Gt(rotation.Method("target", nil, "time_to_percent", rotation.Float(20)), rotation.Float(1)),
			},
			{Kind: rotation.ActionWaitUntil},
		},
	}
	_, schema := rotation.Preprocess(r)
	require.Len(t, schema.MethodCalls(), 1, "identical namespace/path/method/args calls share one slot")
}

func TestMethodEvaluatorRunsOncePerTickRegardlessOfReferenceCount(t *testing.T) {
	r := &rotation.Rotation{
		Actions: []rotation.Action{
			{
				Kind: rotation.ActionCast, Spell: "a", HasCond: true,
				Condition: rotation.And(
					rotation.Lt(rotation.Method("target", nil, "time_to_percent", rotation.Float(20)), rotation.Float(3)),
					rotation.Lt(rotation.Method("target", nil, "time_to_percent", rotation.Float(20)), rotation.Float(5)),
				),
			},
			{Kind: rotation.ActionWaitUntil},
		},
	}
	compiler, err := rotation.NewCompiler(r, 16)
	require.NoError(t, err)

	eval := &fakeMethodEvaluator{value: rotation.FloatValue(1)}
	state := compiler.NewState()
	state.Refresh(fakeResolver{}, eval)

	require.Equal(t, 1, eval.calls)

	d := compiler.Decide(state)
	require.Equal(t, rotation.DecisionCast, d.Kind)
	require.Equal(t, "a", d.Spell)
}

func TestMethodSlotMissingEvaluatorResolvesToZeroValue(t *testing.T) {
	compiler, err := rotation.NewCompiler(methodRotation(), 16)
	require.NoError(t, err)

	state := compiler.NewState()
	state.Refresh(fakeResolver{}, nil)

	d := compiler.Decide(state)
	require.Equal(t, rotation.DecisionCast, d.Kind, "a nil evaluator resolves the slot to 0, which still satisfies 0 < 3")
	require.Equal(t, "kill_shot", d.Spell)
}
