package native

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroValueIsEmpty(t *testing.T) {
	var v Value

	assert.True(t, v.IsEmpty())
	assert.Equal(t, KindNull, v.Kind())
	assert.Equal(t, Null(), v)
	assert.Equal(t, "null", v.String())
	assert.True(t, Object(nil).IsEmpty())
}

func TestNewValue(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
		want Value
	}{
		{"nil", nil, Null()},
		{"bool", true, Bool(true)},
		{"int", 3, Int(3)},
		{"int32", int32(-4), Int(-4)},
		{"float", 1.5, Float(1.5)},
		{"string", "hi", String("hi")},
		{"value", Int(9), Int(9)},
		{"slice", []interface{}{1, "a"}, Array(Int(1), String("a"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewValue(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := NewValue(struct{}{})
	assert.Error(t, err)

	_, err = NewValue([]interface{}{1, struct{}{}})
	assert.Error(t, err)
}

func TestValueAccessors(t *testing.T) {
	i, ok := Int(5).Int()
	assert.True(t, ok)
	assert.Equal(t, int64(5), i)

	f, ok := Int(5).Float()
	assert.True(t, ok)
	assert.Equal(t, 5.0, f)

	_, ok = String("5").Int()
	assert.False(t, ok)

	s, ok := String("x").Text()
	assert.True(t, ok)
	assert.Equal(t, "x", s)

	r := &recorder{}
	o, ok := Object(r).Object()
	assert.True(t, ok)
	assert.Same(t, r, o)

	_, ok = Int(1).Object()
	assert.False(t, ok)

	assert.Equal(t, "[1, two, true, 2.5]", Array(Int(1), String("two"), Bool(true), Float(2.5)).String())
}

func TestArrayCopiesInput(t *testing.T) {
	in := []Value{Int(1)}
	v := Array(in...)
	in[0] = Int(2)

	elems, ok := v.Array()
	require.True(t, ok)
	assert.Equal(t, Int(1), elems[0])
}
