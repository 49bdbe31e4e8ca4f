package fieldinit_test

import (
	"reflect"

	"github.com/sghaida/ofi/fieldinit"
)

// Engine is a concrete collaborator with a usable zero value.
type Engine struct {
	Cylinders int
}

// Gearbox is a second collaborator used in ranking tests.
type Gearbox struct {
	Ratios int
}

// Car carries a Brand marker so tests can observe which constructor ran.
type Car struct {
	Engine  *Engine
	Gearbox *Gearbox
	Brand   string
}

// Drivable is used to exercise the interface eligibility rule.
type Drivable interface {
	Drive() string
}

// Color is an enum-like defined type.
type Color int

// Vehicle embeds an interface, the abstract-struct shape.
type Vehicle struct {
	Drivable
	Wheels int
}

func newCarRegistry() *fieldinit.Registry {
	return fieldinit.NewRegistry().
		MustRegister(func() *Car { return &Car{Brand: "no-arg"} }).
		MustRegister(func(e *Engine) *Car { return &Car{Engine: e, Brand: "one-arg"} }).
		MustRegister(func(e *Engine, g *Gearbox) *Car { return &Car{Engine: e, Gearbox: g, Brand: "two-arg"} })
}

// zeroResolver supplies nil for every parameter; the accessor turns each nil
// into the parameter's zero value.
func zeroResolver(types []reflect.Type) []any {
	return make([]any, len(types))
}

// denyAccessor fails every operation with ErrAccessDenied.
type denyAccessor struct{}

func (denyAccessor) Get(fieldinit.Field) (reflect.Value, error) {
	return reflect.Value{}, fieldinit.ErrAccessDenied
}

func (denyAccessor) Set(fieldinit.Field, reflect.Value) error {
	return fieldinit.ErrAccessDenied
}

func (denyAccessor) NewInstance(fieldinit.Constructor, []reflect.Value) (reflect.Value, error) {
	return reflect.Value{}, fieldinit.ErrAccessDenied
}

// denySetAccessor reads normally but refuses writes, so eligibility and
// selection succeed while the write-back fails.
type denySetAccessor struct {
	fieldinit.ReflectAccessor
}

func (denySetAccessor) Set(fieldinit.Field, reflect.Value) error {
	return fieldinit.ErrAccessDenied
}
