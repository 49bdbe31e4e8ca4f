package fieldinit

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrNotAStructPointer is returned when a field handle is requested on an
	// owner that is not a non-nil pointer to a struct.
	ErrNotAStructPointer = errors.New("fieldinit: owner must be a non-nil pointer to a struct")

	// ErrAccessDenied is returned when a privileged get/set/construct operation
	// cannot be performed on the underlying field or constructor.
	ErrAccessDenied = errors.New("fieldinit: access denied")

	// ErrArgumentMismatch is returned when resolver-supplied arguments do not
	// match a constructor's signature. This signals a resolver defect, not a
	// user error: the resolver's contract is to supply type-correct values for
	// the exact types it was given.
	ErrArgumentMismatch = errors.New("fieldinit: internal error: resolver provided incorrect argument types")

	// ErrNotAFunc is returned when a non-func value is registered as a constructor.
	ErrNotAFunc = errors.New("fieldinit: constructor must be a func")

	// ErrBadConstructor is returned when a func cannot serve as a constructor
	// (wrong result shape, variadic, or error-typed constructed value).
	ErrBadConstructor = errors.New("fieldinit: constructor must be non-variadic and return exactly one value, optionally with a trailing error")

	// ErrNilResolver is returned when a parameterized initializer is created
	// with a nil argument resolver.
	ErrNilResolver = errors.New("fieldinit: nil argument resolver")
)

// EligibilityRule identifies the structural rule an ineligible field type violated.
type EligibilityRule int

const (
	// RuleUnnamedType rejects unnamed (anonymous) types.
	RuleUnnamedType EligibilityRule = iota
	// RuleUnexportedForeign rejects unexported types declared outside the owner's package.
	RuleUnexportedForeign
	// RuleInterface rejects interface types.
	RuleInterface
	// RuleEnumLike rejects named types with a basic underlying kind (Go's enum idiom).
	RuleEnumLike
	// RuleAbstractStruct rejects structs that embed an anonymous interface.
	RuleAbstractStruct
)

// String returns a short identifier for the rule.
func (r EligibilityRule) String() string {
	switch r {
	case RuleUnnamedType:
		return "unnamed-type"
	case RuleUnexportedForeign:
		return "unexported-foreign-type"
	case RuleInterface:
		return "interface"
	case RuleEnumLike:
		return "enum-like"
	case RuleAbstractStruct:
		return "abstract-struct"
	default:
		return "unknown"
	}
}

// IneligibleTypeError is returned when a field's declared type cannot be
// default-constructed. It is raised only for absent fields; an already
// populated field of an otherwise-ineligible type is accepted.
type IneligibleTypeError struct {
	// Rule is the violated eligibility rule.
	Rule EligibilityRule

	// TypeName is the offending field type's name.
	TypeName string

	// FieldName is the name of the field being initialized.
	FieldName string
}

// Error implements the error interface.
func (e IneligibleTypeError) Error() string {
	// Example: fieldinit: the type 'Drivable' is an interface
	return "fieldinit: the type '" + e.TypeName + "' is " + e.ruleClause()
}

func (e IneligibleTypeError) ruleClause() string {
	switch e.Rule {
	case RuleUnnamedType:
		return "an unnamed type"
	case RuleUnexportedForeign:
		return "an unexported type of another package"
	case RuleInterface:
		return "an interface"
	case RuleEnumLike:
		return "an enum-like defined type"
	case RuleAbstractStruct:
		return "an abstract struct (it embeds an interface)"
	default:
		return "not an eligible type"
	}
}

// NoDefaultConstructorError is returned by the no-arg strategy when the field
// type registered constructors but none of them is zero-parameter.
type NoDefaultConstructorError struct {
	// TypeName is the field type's name.
	TypeName string
}

// Error implements the error interface.
func (e NoDefaultConstructorError) Error() string {
	// Example: fieldinit: the type 'Car' has no default constructor
	return "fieldinit: the type '" + e.TypeName + "' has no default constructor"
}

// NoParameterizedConstructorError is returned by the parameterized strategy
// when the field type has no constructor with one or more parameters. The
// strategy never falls back to no-arg construction.
type NoParameterizedConstructorError struct {
	// FieldName is the name of the field being initialized.
	FieldName string

	// TypeName is the field type's name.
	TypeName string
}

// Error implements the error interface.
func (e NoParameterizedConstructorError) Error() string {
	// Example: fieldinit: the field "engine" of type 'Engine' has no parameterized constructor
	return "fieldinit: the field " + strconv.Quote(e.FieldName) +
		" of type '" + e.TypeName + "' has no parameterized constructor"
}

// ConstructorPanicError is returned when the constructor body itself panicked.
// The recovered panic value is preserved in Cause.
type ConstructorPanicError struct {
	// TypeName is the constructed type's name.
	TypeName string

	// Cause is the recovered panic value.
	Cause any
}

// Error implements the error interface.
func (e ConstructorPanicError) Error() string {
	return fmt.Sprintf("fieldinit: the constructor of type '%s' has raised a panic (see cause): %v", e.TypeName, e.Cause)
}

// Unwrap exposes the panic value when it is an error.
func (e ConstructorPanicError) Unwrap() error {
	if err, ok := e.Cause.(error); ok {
		return err
	}
	return nil
}

// InstantiationError is returned when a constructor with a (T, error) shape
// returned a non-nil error.
type InstantiationError struct {
	// TypeName is the constructed type's name.
	TypeName string

	// Cause is the error returned by the constructor.
	Cause error
}

// Error implements the error interface.
func (e InstantiationError) Error() string {
	return fmt.Sprintf("fieldinit: instantiation of type '%s' failed: %v", e.TypeName, e.Cause)
}

// Unwrap exposes the constructor's error.
func (e InstantiationError) Unwrap() error { return e.Cause }

// UnknownFieldError is returned when the owner struct has no field with the
// requested name.
type UnknownFieldError struct {
	// TypeName is the owner struct type's name.
	TypeName string

	// FieldName is the requested field name.
	FieldName string
}

// Error implements the error interface.
func (e UnknownFieldError) Error() string {
	// Example: fieldinit: type 'Fixture' has no field "engine"
	return "fieldinit: type '" + e.TypeName + "' has no field " + strconv.Quote(e.FieldName)
}

// InitializationError wraps a low-level access failure with the field name and
// type it occurred on. The underlying cause is preserved for errors.Is/As.
type InitializationError struct {
	// FieldName is the name of the field being initialized.
	FieldName string

	// TypeName is the field type's name.
	TypeName string

	// Cause is the underlying access failure.
	Cause error
}

// Error implements the error interface.
func (e InitializationError) Error() string {
	return fmt.Sprintf("fieldinit: problems initializing field %s of type '%s': %v",
		strconv.Quote(e.FieldName), e.TypeName, e.Cause)
}

// Unwrap exposes the underlying access failure.
func (e InitializationError) Unwrap() error { return e.Cause }
