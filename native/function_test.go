package native

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFunctionShapes(t *testing.T) {
	calls := 0

	fns := []struct {
		fn    *Function
		shape Shape
		want  Value
	}{
		{NewVoidFunction("a", func() { calls++ }), ShapeNoArgsVoid, Null()},
		{NewVoidFunctionWithParams("b", func(p *Parameters) { calls += p.Len() }), ShapeArgsVoid, Null()},
		{NewValueFunction("c", func() Value { calls++; return String("c") }), ShapeNoArgsValue, String("c")},
		{NewValueFunctionWithParams("d", func(p *Parameters) Value { calls++; return p.At(0) }), ShapeArgsValue, Int(1)},
	}

	for _, tt := range fns {
		t.Run(tt.fn.Name(), func(t *testing.T) {
			before := calls

			entry := &FunctionEntry{}
			tt.fn.Initialize(entry, "")

			assert.Equal(t, tt.shape, tt.fn.Shape())
			assert.Equal(t, Public, entry.Flags)
			assert.Equal(t, tt.fn.Name(), entry.Key())
			assert.Equal(t, tt.shape.Returns(), entry.Returns)

			got := entry.Handler(NewParameters(&recorder{}, Int(1)))
			assert.Equal(t, tt.want, got)
			assert.Equal(t, before+1, calls)
		})
	}
}

func TestCallableInterface(t *testing.T) {
	callables := []Callable{
		NewVoidFunction("f", func() {}),
		NewVoidMethod("m", (*recorder).touch, 0),
		NewAbstractMethod("a", 0),
	}

	for _, c := range callables {
		entry := &FunctionEntry{}
		c.Initialize(entry, "K")

		assert.NotNil(t, entry.Handler)
		assert.True(t, entry.Flags.Has(Public))
	}
}
