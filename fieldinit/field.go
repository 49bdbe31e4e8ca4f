package fieldinit

import "reflect"

// Field is an opaque handle to one mutable slot on an owner struct: the owner
// instance, the field's declared type, and read/write capability through a
// MemberAccessor. The handle is borrowed for the duration of one
// initialization; it does not own the field.
type Field struct {
	owner reflect.Value // addressable struct value
	sf    reflect.StructField
}

// FieldOf builds a handle to the named field of owner. The owner must be a
// non-nil pointer to a struct; the field may be unexported.
func FieldOf(owner any, name string) (Field, error) {
	if owner == nil {
		return Field{}, ErrNotAStructPointer
	}
	v := reflect.ValueOf(owner)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return Field{}, ErrNotAStructPointer
	}
	elem := v.Elem()
	if elem.Kind() != reflect.Struct {
		return Field{}, ErrNotAStructPointer
	}
	sf, ok := elem.Type().FieldByName(name)
	if !ok {
		return Field{}, UnknownFieldError{TypeName: typeName(elem.Type()), FieldName: name}
	}
	return Field{owner: elem, sf: sf}, nil
}

// Name returns the field's name.
func (f Field) Name() string { return f.sf.Name }

// Type returns the field's declared type.
func (f Field) Type() reflect.Type { return f.sf.Type }

// TypeName returns a short display name for the field's declared type.
func (f Field) TypeName() string { return typeName(f.sf.Type) }

func (f Field) valid() bool { return f.owner.IsValid() }

// slot returns the raw field value inside the owner. The result may be
// read-only for unexported fields; the accessor upgrades it when needed.
func (f Field) slot() reflect.Value { return f.owner.FieldByIndex(f.sf.Index) }

func (f Field) ownerPkgPath() string {
	if !f.owner.IsValid() {
		return ""
	}
	return f.owner.Type().PkgPath()
}

// typeName renders a short display name for a type, preferring the defined
// name over the fully qualified string.
func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	if t.Name() != "" {
		return t.Name()
	}
	if t.Kind() == reflect.Ptr && t.Elem().Name() != "" {
		return "*" + t.Elem().Name()
	}
	return t.String()
}

// Reader reads the current value of a field and reports whether it is absent.
type Reader struct {
	field    Field
	accessor MemberAccessor
}

// NewReader builds a Reader over the field using the given accessor.
func NewReader(field Field, accessor MemberAccessor) Reader {
	return Reader{field: field, accessor: accessor}
}

// IsAbsent performs a single privileged read and reports whether the field
// currently holds the absent sentinel. It never mutates state; accessor
// failures propagate unchanged.
func (r Reader) IsAbsent() (bool, error) {
	v, err := r.accessor.Get(r.field)
	if err != nil {
		return false, err
	}
	return isAbsent(v), nil
}

// isAbsent reports whether a value is the absent sentinel. Only nilable kinds
// can be absent; a value-struct or basic-kind field always counts as present.
func isAbsent(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return v.IsNil()
	}
	return false
}
