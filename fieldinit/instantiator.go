package fieldinit

import (
	"reflect"
	"sort"
)

// ArgumentResolver supplies argument values for a list of constructor
// parameter types, best effort. It does not validate count or type
// compatibility; that happens at the actual construction call. A nil entry
// stands for the parameter's zero value.
type ArgumentResolver func(types []reflect.Type) []any

// constructorInstantiator is the polymorphic instantiation capability bound at
// initializer construction time. Exactly two variants exist: no-arg and
// parameterized.
type constructorInstantiator interface {
	instantiate() (Report, error)
}

// RankConstructors orders candidate constructors with a two-key stable sort:
// parameter count descending, then count of mockable parameters descending.
// Stability makes the final tie-break the input (registration) order. The
// input slice is not modified.
func RankConstructors(ctors []Constructor, oracle MockabilityOracle) []Constructor {
	out := make([]Constructor, len(ctors))
	copy(out, ctors)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Arity() != out[j].Arity() {
			return out[i].Arity() > out[j].Arity()
		}
		return mockableParams(out[i], oracle) > mockableParams(out[j], oracle)
	})
	return out
}

func mockableParams(c Constructor, oracle MockabilityOracle) int {
	if oracle == nil {
		return 0
	}
	n := 0
	for _, p := range c.params {
		if oracle.IsMockable(p) {
			n++
		}
	}
	return n
}

// noArgInstantiator builds the field via a zero-parameter constructor. A type
// with no registered constructors gets zero-value construction, the implicit
// default constructor; a type that registered only parameterized constructors
// has no default constructor.
type noArgInstantiator struct {
	field    Field
	registry *Registry
	accessor MemberAccessor
}

func (n noArgInstantiator) instantiate() (Report, error) {
	ctors := n.registry.ConstructorsFor(n.field.Type())
	if len(ctors) == 0 {
		got, err := writeAndReread(n.accessor, n.field, zeroInstance(n.field.Type()))
		if err != nil {
			return Report{}, err
		}
		return Report{instance: got, wasInitialized: true}, nil
	}
	for _, c := range ctors {
		if c.Arity() != 0 {
			continue
		}
		instance, err := n.accessor.NewInstance(c, nil)
		if err != nil {
			return Report{}, err
		}
		got, err := writeAndReread(n.accessor, n.field, instance)
		if err != nil {
			return Report{}, err
		}
		return Report{instance: got, wasInitialized: true}, nil
	}
	return Report{}, NoDefaultConstructorError{TypeName: n.field.TypeName()}
}

// parameterizedInstantiator builds the field via the best-ranked
// multi-parameter constructor, resolving arguments through the caller-supplied
// resolver.
type parameterizedInstantiator struct {
	field    Field
	registry *Registry
	accessor MemberAccessor
	oracle   MockabilityOracle
	resolve  ArgumentResolver
}

func (p parameterizedInstantiator) instantiate() (Report, error) {
	ctor, err := p.bestConstructor()
	if err != nil {
		return Report{}, err
	}
	params := ctor.ParamTypes()
	raw := p.resolve(params)
	args := make([]reflect.Value, len(raw))
	for i, a := range raw {
		if a == nil {
			continue // stays invalid; the accessor zeroes it
		}
		args[i] = reflect.ValueOf(a)
	}
	instance, err := p.accessor.NewInstance(ctor, args)
	if err != nil {
		return Report{}, err
	}
	got, err := writeAndReread(p.accessor, p.field, instance)
	if err != nil {
		return Report{}, err
	}
	return Report{instance: got, wasParameterized: true}, nil
}

// bestConstructor picks the top-ranked candidate. The arity check runs after
// ranking: a registry holding only a zero-parameter constructor must fail here
// rather than silently fall back to no-arg construction.
func (p parameterizedInstantiator) bestConstructor() (Constructor, error) {
	ranked := RankConstructors(p.registry.ConstructorsFor(p.field.Type()), p.oracle)
	if len(ranked) == 0 || ranked[0].Arity() == 0 {
		return Constructor{}, NoParameterizedConstructorError{
			FieldName: p.field.Name(),
			TypeName:  p.field.TypeName(),
		}
	}
	return ranked[0], nil
}

// writeAndReread stores the constructed instance into the field and returns
// the value read back from it, so the report always reflects the field's
// actual content.
func writeAndReread(accessor MemberAccessor, field Field, v reflect.Value) (reflect.Value, error) {
	if err := accessor.Set(field, v); err != nil {
		return reflect.Value{}, err
	}
	return accessor.Get(field)
}

// zeroInstance builds the implicit default instance for a type with no
// registered constructors. Every nilable kind yields a non-nil instance, so a
// successful initialization never leaves the field absent: pointer types get a
// fresh element, maps, slices and channels get empty instances, and func types
// get a no-op func returning zero values.
func zeroInstance(t reflect.Type) reflect.Value {
	switch t.Kind() {
	case reflect.Ptr:
		return reflect.New(t.Elem())
	case reflect.Map:
		return reflect.MakeMap(t)
	case reflect.Slice:
		return reflect.MakeSlice(t, 0, 0)
	case reflect.Chan:
		return reflect.MakeChan(t, 0)
	case reflect.Func:
		return reflect.MakeFunc(t, func([]reflect.Value) []reflect.Value {
			out := make([]reflect.Value, t.NumOut())
			for i := range out {
				out[i] = reflect.Zero(t.Out(i))
			}
			return out
		})
	default:
		return reflect.Zero(t)
	}
}
