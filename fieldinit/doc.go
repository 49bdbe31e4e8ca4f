// Package fieldinit decides whether and how to construct a default instance
// for an uninitialized field, using constructor discovery and a deterministic
// tie-break policy, then reports what it did.
//
// # Model
//
// Constructors are registered funcs (func(deps...) T or
// func(deps...) (T, error)) held in a Registry, keyed by constructed type —
// the Go analog of a type's declared constructor list. A FieldInitializer is
// bound to (owner, field, strategy) at construction time:
//
//   - NewInitializer binds the no-arg strategy: the type's zero-parameter
//     constructor, or zero-value construction when no constructors are
//     registered at all (the implicit default constructor).
//   - NewParameterizedInitializer binds the parameterized strategy: candidates
//     are ranked by parameter count descending, then by the count of
//     parameters the MockabilityOracle judges mockable, then by registration
//     order. The strategy never falls back to no-arg construction.
//
// Eligibility checks run once at construction time, only if the field is
// currently absent: unnamed types, unexported foreign types, interfaces,
// enum-like defined types and abstract structs are rejected with a
// rule-specific IneligibleTypeError. An already populated field of an
// ineligible type is accepted unchanged.
//
// # Concurrency
//
// Everything is single-threaded and synchronous. The field is an exclusively
// borrowed resource for the lifetime of one Initialize call; the owner must
// not be mutated concurrently during fixture setup.
//
// # Errors
//
// All failures are typed and terminal for the single field being initialized:
// IneligibleTypeError, NoDefaultConstructorError,
// NoParameterizedConstructorError, ConstructorPanicError, InstantiationError,
// InitializationError, plus the sentinels ErrAccessDenied, ErrArgumentMismatch,
// ErrNotAFunc, ErrBadConstructor and ErrNilResolver. Nothing is retried;
// construction is attempted exactly once per call.
package fieldinit
