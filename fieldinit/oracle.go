package fieldinit

import "reflect"

// MockabilityOracle reports whether a type is eligible to be mocked. The
// engine consults it only for constructor ranking (preferring constructors
// whose parameters look like injectable collaborators); it is never used for
// correctness-critical decisions.
type MockabilityOracle interface {
	IsMockable(t reflect.Type) bool
}

// OracleFunc adapts a plain func into a MockabilityOracle.
type OracleFunc func(t reflect.Type) bool

// IsMockable implements MockabilityOracle.
func (f OracleFunc) IsMockable(t reflect.Type) bool { return f(t) }

// DefaultOracle returns the built-in mockability heuristic: interfaces, func
// types and pointers to structs are mockable; basic and value kinds are not.
func DefaultOracle() MockabilityOracle { return defaultOracle{} }

type defaultOracle struct{}

func (defaultOracle) IsMockable(t reflect.Type) bool {
	if t == nil {
		return false
	}
	switch t.Kind() {
	case reflect.Interface, reflect.Func:
		return true
	case reflect.Ptr:
		return t.Elem().Kind() == reflect.Struct
	default:
		return false
	}
}
