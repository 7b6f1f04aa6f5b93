package rotation

// Schema records every property slot, method-call slot, and
// user-variable name a rotation references, discovered once at compile
// time by Preprocess. The simulation driver uses this to know exactly
// which state to resolve before each decision point, instead of
// resolving every possible path unconditionally. Grounded on
// original_source/crates/engine_new/src/rotation/schema.rs's StateSchema.
type Schema struct {
	properties  []PropertySlot
	methodCalls []MethodCall
	userVars    []string
}

// Properties returns every distinct namespaced property the rotation
// reads, in first-discovered (lexical) order.
func (s *Schema) Properties() []PropertySlot { return s.properties }

// MethodCalls returns every distinct namespaced method call the rotation
// hoisted, in first-discovered (lexical) order — the same order their
// __m<N> slot names were assigned in.
func (s *Schema) MethodCalls() []MethodCall { return s.methodCalls }

// UserVars returns every distinct user-defined variable name the
// rotation reads or writes.
func (s *Schema) UserVars() []string { return s.userVars }
