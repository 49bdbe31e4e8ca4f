package fieldinit

import (
	"errors"
	"reflect"
	"unicode"
	"unicode/utf8"
)

// settings collects the injectable collaborators of a FieldInitializer.
type settings struct {
	registry *Registry
	accessor MemberAccessor
	oracle   MockabilityOracle
}

// Option customizes a FieldInitializer's collaborators.
type Option func(*settings)

// WithRegistry sets the constructor registry. A nil registry is ignored.
func WithRegistry(r *Registry) Option {
	return func(s *settings) {
		if r != nil {
			s.registry = r
		}
	}
}

// WithAccessor sets the member accessor. A nil accessor is ignored.
func WithAccessor(a MemberAccessor) Option {
	return func(s *settings) {
		if a != nil {
			s.accessor = a
		}
	}
}

// WithOracle sets the mockability oracle used for constructor ranking. A nil
// oracle is ignored.
func WithOracle(o MockabilityOracle) Option {
	return func(s *settings) {
		if o != nil {
			s.oracle = o
		}
	}
}

func newSettings(opts []Option) settings {
	cfg := settings{
		registry: NewRegistry(),
		accessor: ReflectAccessor{},
		oracle:   DefaultOracle(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// FieldInitializer initializes one field with a type instance if the field is
// currently absent. If the field already holds a value, that value is returned
// unmodified. Each initializer is single-use: create it, call Initialize once,
// discard it.
//
// The initializer assumes single-threaded, single-owner use: the owner object
// must not be mutated concurrently during fixture setup. This is a documented
// precondition, not an enforced guarantee.
type FieldInitializer struct {
	field        Field
	accessor     MemberAccessor
	instantiator constructorInstantiator
}

// NewInitializer prepares an initializer bound to the no-arg strategy.
//
// It fails fast when the field is currently absent and its declared type
// cannot be default-constructed (unnamed, unexported foreign, interface,
// enum-like, or abstract). An already populated field of an otherwise
// ineligible type is accepted; the checks are skipped entirely.
func NewInitializer(owner any, fieldName string, opts ...Option) (*FieldInitializer, error) {
	field, cfg, err := prepare(owner, fieldName, opts)
	if err != nil {
		return nil, err
	}
	return bind(field, cfg, noArgInstantiator{
		field:    field,
		registry: cfg.registry,
		accessor: cfg.accessor,
	})
}

// NewParameterizedInitializer prepares an initializer bound to the
// parameterized strategy, resolving constructor arguments through resolve.
// The same fail-fast eligibility rules as NewInitializer apply.
func NewParameterizedInitializer(owner any, fieldName string, resolve ArgumentResolver, opts ...Option) (*FieldInitializer, error) {
	if resolve == nil {
		return nil, ErrNilResolver
	}
	field, cfg, err := prepare(owner, fieldName, opts)
	if err != nil {
		return nil, err
	}
	return bind(field, cfg, parameterizedInstantiator{
		field:    field,
		registry: cfg.registry,
		accessor: cfg.accessor,
		oracle:   cfg.oracle,
		resolve:  resolve,
	})
}

func prepare(owner any, fieldName string, opts []Option) (Field, settings, error) {
	cfg := newSettings(opts)
	field, err := FieldOf(owner, fieldName)
	if err != nil {
		return Field{}, settings{}, err
	}
	return field, cfg, nil
}

// bind runs the eligibility gate (only when the field is absent) and wraps the
// chosen instantiator.
func bind(field Field, cfg settings, inst constructorInstantiator) (*FieldInitializer, error) {
	absent, err := NewReader(field, cfg.accessor).IsAbsent()
	if err != nil {
		return nil, wrapAccess(field, err)
	}
	if absent {
		if gerr := checkEligible(field); gerr != nil {
			return nil, gerr
		}
	}
	return &FieldInitializer{field: field, accessor: cfg.accessor, instantiator: inst}, nil
}

// Initialize initializes the field if it is absent and returns the actual
// field instance. Construction is attempted exactly once per call; all
// failures are terminal for this field.
func (fi *FieldInitializer) Initialize() (Report, error) {
	current, err := fi.accessor.Get(fi.field)
	if err != nil {
		return Report{}, wrapAccess(fi.field, err)
	}
	if !isAbsent(current) {
		return Report{instance: current}, nil
	}
	report, err := fi.instantiator.instantiate()
	if err != nil {
		return Report{}, wrapAccess(fi.field, err)
	}
	return report, nil
}

// wrapAccess qualifies low-level access failures with the field name and type.
// Domain failures (ineligibility, missing constructors, constructor panics)
// pass through unchanged.
func wrapAccess(field Field, err error) error {
	if errors.Is(err, ErrAccessDenied) {
		return InitializationError{
			FieldName: field.Name(),
			TypeName:  field.TypeName(),
			Cause:     err,
		}
	}
	return err
}

// checkEligible rejects field types that are structurally impossible to
// default-construct. The checks are ordered but independent; the first match
// short-circuits. Pointer types are judged by their element type.
func checkEligible(field Field) error {
	base := field.Type()
	if base.Kind() == reflect.Ptr {
		base = base.Elem()
	}
	checks := []func(Field, reflect.Type) *IneligibleTypeError{
		checkNotUnnamed,
		checkNotUnexportedForeign,
		checkNotInterface,
		checkNotEnumLike,
		checkNotAbstract,
	}
	for _, check := range checks {
		if err := check(field, base); err != nil {
			return *err
		}
	}
	return nil
}

func checkNotUnnamed(field Field, t reflect.Type) *IneligibleTypeError {
	if t.Name() == "" {
		return &IneligibleTypeError{Rule: RuleUnnamedType, TypeName: t.String(), FieldName: field.Name()}
	}
	return nil
}

// checkNotUnexportedForeign rejects unexported types declared outside the
// owner's package: the engine could construct them, but the surrounding
// fixture code cannot legally name them, so wiring into such a field is a
// declaration mistake.
func checkNotUnexportedForeign(field Field, t reflect.Type) *IneligibleTypeError {
	name := t.Name()
	if name == "" || t.PkgPath() == "" {
		return nil
	}
	r, _ := utf8.DecodeRuneInString(name)
	if unicode.IsLower(r) && t.PkgPath() != field.ownerPkgPath() {
		return &IneligibleTypeError{Rule: RuleUnexportedForeign, TypeName: name, FieldName: field.Name()}
	}
	return nil
}

func checkNotInterface(field Field, t reflect.Type) *IneligibleTypeError {
	if t.Kind() == reflect.Interface {
		return &IneligibleTypeError{Rule: RuleInterface, TypeName: typeName(t), FieldName: field.Name()}
	}
	return nil
}

// checkNotEnumLike rejects named types with a basic underlying kind, the Go
// idiom for enums and unit-carrying values; a zero of such a type is a
// meaningless default for a collaborator slot.
func checkNotEnumLike(field Field, t reflect.Type) *IneligibleTypeError {
	if t.Name() == "" {
		return nil
	}
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128,
		reflect.String:
		return &IneligibleTypeError{Rule: RuleEnumLike, TypeName: t.Name(), FieldName: field.Name()}
	}
	return nil
}

// checkNotAbstract rejects structs embedding an anonymous interface: their
// zero value carries a nil method set, so default construction produces an
// instance that panics on first use.
func checkNotAbstract(field Field, t reflect.Type) *IneligibleTypeError {
	if t.Kind() != reflect.Struct {
		return nil
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous && f.Type.Kind() == reflect.Interface {
			return &IneligibleTypeError{Rule: RuleAbstractStruct, TypeName: t.Name(), FieldName: field.Name()}
		}
	}
	return nil
}
