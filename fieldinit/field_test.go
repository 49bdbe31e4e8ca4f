package fieldinit_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/sghaida/ofi/fieldinit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldOf_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		owner any
		field string

		// wantIs nil means an UnknownFieldError is expected instead
		wantIs error
	}{
		{name: "nil owner", owner: nil, field: "Engine", wantIs: fieldinit.ErrNotAStructPointer},
		{name: "non-pointer owner", owner: Car{}, field: "Engine", wantIs: fieldinit.ErrNotAStructPointer},
		{name: "nil pointer owner", owner: (*Car)(nil), field: "Engine", wantIs: fieldinit.ErrNotAStructPointer},
		{name: "pointer to non-struct", owner: new(int), field: "Engine", wantIs: fieldinit.ErrNotAStructPointer},
		{name: "unknown field", owner: &Car{}, field: "Nope"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := fieldinit.FieldOf(tc.owner, tc.field)
			require.Error(t, err)

			if tc.wantIs != nil {
				assert.True(t, errors.Is(err, tc.wantIs))
				return
			}

			var unknown fieldinit.UnknownFieldError
			require.True(t, errors.As(err, &unknown))
			assert.Equal(t, "Car", unknown.TypeName)
			assert.Equal(t, "Nope", unknown.FieldName)
		})
	}
}

func TestFieldOf_Metadata(t *testing.T) {
	t.Parallel()

	car := &Car{}
	field, err := fieldinit.FieldOf(car, "Engine")
	require.NoError(t, err)

	assert.Equal(t, "Engine", field.Name())
	assert.Equal(t, reflect.TypeOf((*Engine)(nil)), field.Type())
	assert.Equal(t, "*Engine", field.TypeName())
}

func TestReader_IsAbsent(t *testing.T) {
	t.Parallel()

	type holder struct {
		Ptr    *Engine
		Iface  Drivable
		Bag    map[string]int
		List   []string
		Plain  Engine
		Amount int
	}

	populated := &holder{
		Ptr:   &Engine{},
		Iface: nil,
		Bag:   map[string]int{},
	}

	cases := []struct {
		name  string
		owner *holder
		field string
		want  bool
	}{
		{name: "nil pointer field", owner: &holder{}, field: "Ptr", want: true},
		{name: "set pointer field", owner: populated, field: "Ptr", want: false},
		{name: "nil interface field", owner: populated, field: "Iface", want: true},
		{name: "nil map field", owner: &holder{}, field: "Bag", want: true},
		{name: "empty non-nil map field", owner: populated, field: "Bag", want: false},
		{name: "nil slice field", owner: &holder{}, field: "List", want: true},
		{name: "value struct field is always present", owner: &holder{}, field: "Plain", want: false},
		{name: "basic field is always present", owner: &holder{}, field: "Amount", want: false},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			field, err := fieldinit.FieldOf(tc.owner, tc.field)
			require.NoError(t, err)

			got, err := fieldinit.NewReader(field, fieldinit.ReflectAccessor{}).IsAbsent()
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestReader_PropagatesAccessorErrors(t *testing.T) {
	t.Parallel()

	field, err := fieldinit.FieldOf(&Car{}, "Engine")
	require.NoError(t, err)

	_, err = fieldinit.NewReader(field, denyAccessor{}).IsAbsent()
	require.Error(t, err)
	// not normalized here: the reader propagates the accessor error unchanged
	assert.True(t, errors.Is(err, fieldinit.ErrAccessDenied))

	var wrapped fieldinit.InitializationError
	assert.False(t, errors.As(err, &wrapped))
}
