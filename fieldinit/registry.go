package fieldinit

import (
	"fmt"
	"reflect"
)

var errType = reflect.TypeOf((*error)(nil)).Elem()

// Constructor wraps a constructor func for one type. Valid shapes are
//
//	func(p1, ..., pn) T
//	func(p1, ..., pn) (T, error)
//
// where T is the constructed type. Variadic funcs are rejected: the engine
// ranks constructors by a fixed arity, which a variadic signature does not have.
type Constructor struct {
	fn         reflect.Value
	out        reflect.Type
	params     []reflect.Type
	returnsErr bool
}

// NewConstructor validates fn and wraps it as a Constructor.
func NewConstructor(fn any) (Constructor, error) {
	if fn == nil {
		return Constructor{}, ErrNotAFunc
	}
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func {
		return Constructor{}, fmt.Errorf("%w, got %s", ErrNotAFunc, v.Type())
	}
	t := v.Type()
	if t.IsVariadic() {
		return Constructor{}, fmt.Errorf("%w: %s is variadic", ErrBadConstructor, t)
	}
	returnsErr := false
	switch t.NumOut() {
	case 1:
	case 2:
		if t.Out(1) != errType {
			return Constructor{}, fmt.Errorf("%w: %s", ErrBadConstructor, t)
		}
		returnsErr = true
	default:
		return Constructor{}, fmt.Errorf("%w: %s", ErrBadConstructor, t)
	}
	out := t.Out(0)
	if out == errType {
		return Constructor{}, fmt.Errorf("%w: %s constructs an error", ErrBadConstructor, t)
	}
	params := make([]reflect.Type, t.NumIn())
	for i := range params {
		params[i] = t.In(i)
	}
	return Constructor{fn: v, out: out, params: params, returnsErr: returnsErr}, nil
}

// Type returns the constructed type.
func (c Constructor) Type() reflect.Type { return c.out }

// Arity returns the number of parameters.
func (c Constructor) Arity() int { return len(c.params) }

// ParamTypes returns a copy of the parameter type list.
func (c Constructor) ParamTypes() []reflect.Type {
	out := make([]reflect.Type, len(c.params))
	copy(out, c.params)
	return out
}

// String renders the constructor's signature.
func (c Constructor) String() string {
	if !c.fn.IsValid() {
		return "<invalid constructor>"
	}
	return c.fn.Type().String()
}

// Registry holds the declared constructors of the types the engine may need to
// instantiate, keyed by constructed type in registration order. Registration
// order is the documented final tie-break when ranking constructors.
//
// A Registry is not safe for concurrent mutation; the engine assumes
// single-threaded fixture setup.
type Registry struct {
	ctors map[reflect.Type][]Constructor
}

// NewRegistry builds an empty Registry.
func NewRegistry() *Registry {
	return &Registry{ctors: map[reflect.Type][]Constructor{}}
}

// Register validates fn and appends it to the constructor list of its
// constructed type. A type may register any number of constructors.
func (r *Registry) Register(fn any) error {
	c, err := NewConstructor(fn)
	if err != nil {
		return err
	}
	if r.ctors == nil {
		r.ctors = map[reflect.Type][]Constructor{}
	}
	r.ctors[c.out] = append(r.ctors[c.out], c)
	return nil
}

// MustRegister registers fn and returns the registry for chaining. It panics
// on invalid constructors; useful in test setup where registration mistakes
// should fail fast.
func (r *Registry) MustRegister(fn any) *Registry {
	if err := r.Register(fn); err != nil {
		panic(err)
	}
	return r
}

// ConstructorsFor returns a copy of the constructors registered for t, in
// registration order.
func (r *Registry) ConstructorsFor(t reflect.Type) []Constructor {
	if r == nil || r.ctors == nil {
		return nil
	}
	src := r.ctors[t]
	if len(src) == 0 {
		return nil
	}
	out := make([]Constructor, len(src))
	copy(out, src)
	return out
}

// Has reports whether at least one constructor is registered for t.
func (r *Registry) Has(t reflect.Type) bool {
	if r == nil || r.ctors == nil {
		return false
	}
	return len(r.ctors[t]) > 0
}
