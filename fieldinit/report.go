package fieldinit

import "reflect"

// Report describes the outcome of a single field initialization.
//
// Exactly one of {already-present, WasInitialized, WasParameterized} holds for
// any successful initialization; the two flags are never both true.
type Report struct {
	instance         reflect.Value
	wasInitialized   bool
	wasParameterized bool
}

// Instance returns the resolved field value. It is never nil after a
// successful initialization of a pointer-typed field.
func (r Report) Instance() any {
	if !r.instance.IsValid() {
		return nil
	}
	return r.instance.Interface()
}

// Value returns the resolved field value as a reflect.Value.
func (r Report) Value() reflect.Value { return r.instance }

// WasInitialized reports whether a new instance was created via the no-arg strategy.
func (r Report) WasInitialized() bool { return r.wasInitialized }

// WasParameterized reports whether a new instance was created via the
// parameterized strategy.
func (r Report) WasParameterized() bool { return r.wasParameterized }
