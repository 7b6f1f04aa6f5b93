// Package rotation implements the rotation decision engine: an expression
// AST, a preprocessing pass that flattens namespaced property/method
// references into slots, a two-pass constant-folding optimizer, and the
// state schema a SpecHandler's priority list evaluates against each
// decision point. Grounded on
// original_source/crates/engine/src/rotation/{ast,eval,compiler}.rs and
// crates/engine_new/src/rotation/schema.rs's StateSchema/GameState split
// between property slots and hoisted method-call slots.
//
// The original source parses rotations from a Rhai script, and its
// preprocessing pass (crates/engine_new/src/rotation/schema.rs's doc
// comment, tests.rs's preprocess_tests) operates on that script's text:
// a namespaced reference like $talent.foo.enabled flattens into a plain
// variable, and a call like $target.time_to_percent(20) hoists into a
// fresh __m0 slot recorded with its namespace/path/method/args. No
// scripting-VM or parser-combinator library exists anywhere in this
// corpus to stand in for Rhai (see DESIGN.md), so rotations here are
// authored as Go AST literals built with the constructor functions below,
// and Preprocess (preprocess.go) performs the identical flatten/hoist
// transform as an AST-to-AST rewrite instead of a text-to-AST one.
package rotation

// ValueType is the dynamic type a resolved Value carries.
type ValueType uint8

const (
	TBool ValueType = iota
	TInt
	TFloat
)

// Expr is the rotation condition/value expression tree. Rotations are
// authored with OpProperty/OpMethodCall nodes (via Property/Method);
// Preprocess rewrites every one of those into an OpVar referencing a
// flattened property slot or a hoisted method-call slot before a
// Compiler ever walks the tree.
type Expr struct {
	Op       ExprOp
	BoolVal  bool
	IntVal   int64
	FloatVal float64

	VarName string // OpVar: the property/method slot this node reads

	Namespace string   // OpProperty, OpMethodCall: e.g. "cooldown", "target"
	Path      []string // OpProperty, OpMethodCall: the dotted path under Namespace
	Method    string   // OpMethodCall: the method name

	UserVar string // OpUserVar
	Args    []Expr // operator operands, or OpMethodCall's call arguments
}

type ExprOp uint8

const (
	OpBool ExprOp = iota
	OpInt
	OpFloat
	OpVar
	OpUserVar
	OpProperty
	OpMethodCall

	OpAnd
	OpOr
	OpNot

	OpGt
	OpGte
	OpLt
	OpLte
	OpEq
	OpNe

	OpAdd
	OpSub
	OpMul
	OpDiv
	OpMod

	OpFloor
	OpCeil
	OpAbs
	OpMin
	OpMax
)

func Bool(v bool) Expr         { return Expr{Op: OpBool, BoolVal: v} }
func Int(v int64) Expr         { return Expr{Op: OpInt, IntVal: v} }
func Float(v float64) Expr     { return Expr{Op: OpFloat, FloatVal: v} }
func UserVar(name string) Expr { return Expr{Op: OpUserVar, UserVar: name} }

// Property references a namespaced state leaf, e.g.
// Property("cooldown", "kill_command", "ready") authors the rotation
// reference $cooldown.kill_command.ready. Preprocess flattens this into a
// property slot (spec.md §4.3) resolved once per tick via Resolver.
func Property(namespace string, path ...string) Expr {
	return Expr{Op: OpProperty, Namespace: namespace, Path: path}
}

// Method references a namespaced method call, e.g.
// Method("target", nil, "time_to_percent", Float(20)) authors the
// rotation reference $target.time_to_percent(20). Preprocess hoists this
// into a method-call slot (spec.md §4.3, §6) evaluated once per tick via
// a MethodEvaluator.
func Method(namespace string, path []string, method string, args ...Expr) Expr {
	return Expr{Op: OpMethodCall, Namespace: namespace, Path: path, Method: method, Args: args}
}

func And(args ...Expr) Expr { return Expr{Op: OpAnd, Args: args} }
func Or(args ...Expr) Expr  { return Expr{Op: OpOr, Args: args} }
func Not(a Expr) Expr       { return Expr{Op: OpNot, Args: []Expr{a}} }

func Gt(a, b Expr) Expr  { return Expr{Op: OpGt, Args: []Expr{a, b}} }
func Gte(a, b Expr) Expr { return Expr{Op: OpGte, Args: []Expr{a, b}} }
func Lt(a, b Expr) Expr  { return Expr{Op: OpLt, Args: []Expr{a, b}} }
func Lte(a, b Expr) Expr { return Expr{Op: OpLte, Args: []Expr{a, b}} }
func Eq(a, b Expr) Expr  { return Expr{Op: OpEq, Args: []Expr{a, b}} }
func Ne(a, b Expr) Expr  { return Expr{Op: OpNe, Args: []Expr{a, b}} }

func Add(a, b Expr) Expr { return Expr{Op: OpAdd, Args: []Expr{a, b}} }
func Sub(a, b Expr) Expr { return Expr{Op: OpSub, Args: []Expr{a, b}} }
func Mul(a, b Expr) Expr { return Expr{Op: OpMul, Args: []Expr{a, b}} }
func Div(a, b Expr) Expr { return Expr{Op: OpDiv, Args: []Expr{a, b}} }
func Mod(a, b Expr) Expr { return Expr{Op: OpMod, Args: []Expr{a, b}} }

func Floor(a Expr) Expr  { return Expr{Op: OpFloor, Args: []Expr{a}} }
func Ceil(a Expr) Expr   { return Expr{Op: OpCeil, Args: []Expr{a}} }
func Abs(a Expr) Expr    { return Expr{Op: OpAbs, Args: []Expr{a}} }
func Min(a, b Expr) Expr { return Expr{Op: OpMin, Args: []Expr{a, b}} }
func Max(a, b Expr) Expr { return Expr{Op: OpMax, Args: []Expr{a, b}} }

// IsBoolExpr reports whether this expression statically produces a bool,
// mirroring the original source's is_bool_var check used for type
// validation during preprocessing. Property/method slots are dynamically
// typed (the schema doesn't know a slot's type until Resolver/
// MethodEvaluator return a Value), so only operators with a fixed bool
// result are reported here.
func (e Expr) IsBoolExpr() bool {
	switch e.Op {
	case OpBool, OpAnd, OpOr, OpNot, OpGt, OpGte, OpLt, OpLte, OpEq, OpNe:
		return true
	default:
		return false
	}
}

// VarOp is a runtime-variable modification operation.
type VarOp uint8

const (
	VarSet VarOp = iota
	VarAdd
	VarSub
	VarMul
	VarDiv
	VarMin
	VarMax
	VarReset
)

// Action is one entry in a rotation's priority list.
type Action struct {
	Kind      ActionKind
	Spell     string
	List      string
	VarName   string
	VarOp     VarOp
	Value     Expr
	HasValue  bool
	Seconds   float64
	Slot      uint8
	Condition Expr
	HasCond   bool
}

type ActionKind uint8

const (
	ActionCast ActionKind = iota
	ActionCall
	ActionRun
	ActionSetVar
	ActionModifyVar
	ActionWait
	ActionWaitUntil
	ActionPool
	ActionUseTrinket
	ActionUseItem
)

// Rotation is a complete rotation definition: named variables, named
// sub-lists, and a top-level priority list.
type Rotation struct {
	Name      string
	Variables map[string]Expr
	Lists     map[string][]Action
	Actions   []Action
}
