// Package ofi provides opinionated field initialization for test fixtures.
//
// The library solves one narrow problem: given an object and one of its
// uninitialized fields, decide whether and how to construct a default instance
// for the field's declared type, then report what was done. It exists to
// support fixture wiring, where a test harness must populate collaborator
// fields before injecting mocks into them (e.g. a field of type Service that
// itself has injectable sub-fields).
//
// Two interchangeable strategies are provided:
//
//   - no-arg construction: the field type's zero-parameter constructor, or the
//     implicit zero value when no constructors are registered for the type
//   - parameterized construction: the best-ranked multi-parameter constructor,
//     with arguments supplied by a caller-provided resolver
//
// Constructor discovery is registry-based, ranking is deterministic, and all
// failures map to a closed set of typed errors you can assert in tests.
//
// See the fieldinit package for the library surface and examples/ for
// end-to-end fixture wiring.
package ofi
