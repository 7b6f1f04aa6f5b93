// Package simerr defines the error taxonomy shared across the simulation
// core. Each Kind names a design category rather than a concrete type;
// callers match on it with errors.Is.
package simerr

import "errors"

// Kind is a sentinel representing one error category from the design's
// error taxonomy. Wrap it with fmt.Errorf("%w: detail", Kind) so the
// detail survives while errors.Is(err, Kind) keeps working.
type Kind error

var (
	// ConfigInvalid means the config cannot be normalized (unknown spec,
	// negative duration, inconsistent stats). Surfaced before run begins.
	ConfigInvalid Kind = errors.New("config invalid")

	// RotationCompile means a syntax or reference error in the rotation
	// script. Surfaced at compile time.
	RotationCompile Kind = errors.New("rotation compile error")

	// DataMissing means a referenced spell/aura id is not in the resolver.
	// Fatal to the iteration; the batch worker aborts and records it.
	DataMissing Kind = errors.New("data missing")

	// CastRejected is not an error in the traditional sense — it is a
	// decision outcome meaning the chosen action is not legal right now.
	// The simulation treats it as a wait and proceeds.
	CastRejected Kind = errors.New("cast rejected")

	// InvariantViolated signals an internal contract broken (aura missing
	// on tick, cooldown underflow). The iteration aborts; the batch worker
	// marks it failed and continues with the next.
	InvariantViolated Kind = errors.New("invariant violated")

	// ProcRejected is a recoverable-locally decision outcome: a proc did
	// not trigger (failed roll, on ICD).
	ProcRejected Kind = errors.New("proc rejected")

	// TransientResolverError is a recoverable-locally failure talking to
	// the external data resolver.
	TransientResolverError Kind = errors.New("transient resolver error")
)
