package fieldinit

import (
	"fmt"
	"reflect"
	"unsafe"
)

// MemberAccessor performs privileged get/set/construct operations on fields
// and constructors. Implementations must normalize low-level reflection
// failures into the package's closed error set: ErrAccessDenied,
// ErrArgumentMismatch, ConstructorPanicError and InstantiationError.
//
// The default implementation is ReflectAccessor; tests can substitute a fake
// via WithAccessor to exercise failure paths without real reflection.
type MemberAccessor interface {
	// Get reads the field's current value.
	Get(field Field) (reflect.Value, error)

	// Set writes value into the field.
	Set(field Field, value reflect.Value) error

	// NewInstance invokes the constructor with the given arguments.
	NewInstance(ctor Constructor, args []reflect.Value) (reflect.Value, error)
}

// ReflectAccessor is the default MemberAccessor. It bypasses field visibility
// for unexported fields via unsafe addressing, mirroring what a fixture engine
// needs to wire collaborators declared as private members.
type ReflectAccessor struct{}

// Get implements MemberAccessor.
func (ReflectAccessor) Get(field Field) (reflect.Value, error) {
	return privileged(field)
}

// Set implements MemberAccessor. An invalid value is treated as the zero value
// of the field's type.
func (ReflectAccessor) Set(field Field, value reflect.Value) error {
	fv, err := privileged(field)
	if err != nil {
		return err
	}
	if !value.IsValid() {
		value = reflect.Zero(fv.Type())
	}
	if !value.Type().AssignableTo(fv.Type()) {
		return fmt.Errorf("%w: cannot assign %s to field %s of type %s",
			ErrAccessDenied, value.Type(), field.Name(), fv.Type())
	}
	fv.Set(value)
	return nil
}

// NewInstance implements MemberAccessor. Arguments are validated against the
// constructor signature before the call: a count or assignability mismatch is
// a resolver defect (ErrArgumentMismatch), while a panic raised inside the
// constructor body becomes a ConstructorPanicError with the cause preserved.
// A (T, error) constructor returning a non-nil error maps to InstantiationError.
func (ReflectAccessor) NewInstance(ctor Constructor, args []reflect.Value) (out reflect.Value, err error) {
	if !ctor.fn.IsValid() {
		return reflect.Value{}, ErrAccessDenied
	}
	params := ctor.params
	if len(args) != len(params) {
		return reflect.Value{}, fmt.Errorf("%w: got %d argument(s) for constructor %s of type %s",
			ErrArgumentMismatch, len(args), ctor, typeName(ctor.out))
	}
	call := make([]reflect.Value, len(args))
	for i, a := range args {
		if !a.IsValid() {
			// untyped nil from the resolver: use the parameter's zero value
			call[i] = reflect.Zero(params[i])
			continue
		}
		if !a.Type().AssignableTo(params[i]) {
			return reflect.Value{}, fmt.Errorf("%w: argument %d is %s, want %s, for constructor %s of type %s",
				ErrArgumentMismatch, i, a.Type(), params[i], ctor, typeName(ctor.out))
		}
		call[i] = a
	}

	defer func() {
		if rec := recover(); rec != nil {
			out = reflect.Value{}
			err = ConstructorPanicError{TypeName: typeName(ctor.out), Cause: rec}
		}
	}()
	results := ctor.fn.Call(call)
	if ctor.returnsErr {
		if cerr, _ := results[1].Interface().(error); cerr != nil {
			return reflect.Value{}, InstantiationError{TypeName: typeName(ctor.out), Cause: cerr}
		}
	}
	return results[0], nil
}

// privileged resolves the field slot to an addressable, settable value,
// upgrading unexported fields through unsafe addressing.
func privileged(field Field) (reflect.Value, error) {
	if !field.valid() {
		return reflect.Value{}, ErrAccessDenied
	}
	fv := field.slot()
	if !fv.IsValid() {
		return reflect.Value{}, ErrAccessDenied
	}
	if fv.CanSet() {
		return fv, nil
	}
	if !fv.CanAddr() {
		return reflect.Value{}, ErrAccessDenied
	}
	return reflect.NewAt(fv.Type(), unsafe.Pointer(fv.UnsafeAddr())).Elem(), nil
}
