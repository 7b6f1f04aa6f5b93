package rotation

// isLiteral reports whether e is already a constant leaf.
func isLiteral(e Expr) bool {
	switch e.Op {
	case OpBool, OpInt, OpFloat:
		return true
	default:
		return false
	}
}

func literalOf(v Value) Expr {
	switch v.Type {
	case TBool:
		return Bool(v.Bool)
	case TInt:
		return Int(v.Int)
	default:
		return Float(v.Float)
	}
}

// FoldConstants performs bottom-up constant folding: any OpVar whose slot
// is known (isKnown reports true and state carries its resolved value) is
// replaced by a literal, and any operator whose operands are all literals
// after folding is evaluated immediately and replaced by its result. This
// is the Go-native analog of the reference compiler's two-pass
// optimize/optimize_partial split: call it once with only
// static/unchanging slots marked known to bake those in, then again per
// decision point with the full dynamic state to fold everything else.
func FoldConstants(e Expr, state *State, isKnown func(string) bool) Expr {
	switch e.Op {
	case OpVar:
		if isKnown(e.VarName) {
			return literalOf(state.value(e.VarName))
		}
		return e
	case OpBool, OpInt, OpFloat, OpUserVar:
		return e
	}

	folded := make([]Expr, len(e.Args))
	allLiteral := true
	for i, a := range e.Args {
		folded[i] = FoldConstants(a, state, isKnown)
		if !isLiteral(folded[i]) {
			allLiteral = false
		}
	}
	out := Expr{Op: e.Op, Args: folded}

	if !allLiteral {
		return out
	}

	// All operands are now literals: fold the operator itself.
	switch e.Op {
	case OpAnd, OpOr, OpNot, OpGt, OpGte, OpLt, OpLte, OpEq, OpNe,
		OpAdd, OpSub, OpMul, OpDiv, OpMod, OpFloor, OpCeil, OpAbs, OpMin, OpMax:
		return literalOf(evaluate(out, nil, 0))
	default:
		return out
	}
}

// FoldAction folds both the condition and (if present) the value
// expression of an action.
func FoldAction(a Action, state *State, isKnown func(string) bool) Action {
	out := a
	if a.HasCond {
		out.Condition = FoldConstants(a.Condition, state, isKnown)
	}
	if a.HasValue {
		out.Value = FoldConstants(a.Value, state, isKnown)
	}
	return out
}
