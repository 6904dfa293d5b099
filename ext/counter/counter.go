// Package counter is a small extension exposing a Counter class, a Countable interface
// and a pair of free functions. It binds one method of every callable shape.
package counter

import (
	"github.com/pkg/errors"

	"github.com/suborbital/extkit/native"
)

const (
	ExtensionName    = "counter"
	ExtensionVersion = "1.2.0"
)

// Counter is the native object behind the script class "Counter"
type Counter struct {
	count  int64
	resets int
}

// NewCounter creates a zeroed Counter
func NewCounter() *Counter {
	return &Counter{}
}

// Count returns the current count
func (c *Counter) Count() int64 {
	return c.count
}

func (c *Counter) increment() {
	c.count++
}

func (c *Counter) add(p *native.Parameters) {
	n, _ := p.At(0).Int()
	c.count += n
}

func (c *Counter) value() native.Value {
	return native.Int(c.count)
}

func (c *Counter) addAndGet(p *native.Parameters) native.Value {
	c.add(p)
	return c.value()
}

func (c *Counter) reset() {
	c.count = 0
	c.resets++
}

func (c *Counter) resetCount() native.Value {
	return native.Int(int64(c.resets))
}

// Extension builds the counter extension
func Extension() (*native.Extension, error) {
	ext := native.NewExtension(ExtensionName, ExtensionVersion)

	if err := ext.Requires(">= 1.0, < 2.0"); err != nil {
		return nil, errors.Wrap(err, "failed to Requires")
	}

	countable := native.NewInterface("Countable")
	if err := countable.Add(native.NewAbstractMethod("value", native.Public)); err != nil {
		return nil, errors.Wrap(err, "failed to Add")
	}

	counter := native.NewClass("Counter", NewCounter)

	methods := []*native.Method{
		native.NewVoidMethod("increment", (*Counter).increment, native.Public),
		native.NewVoidMethodWithParams("add", (*Counter).add, native.Final, native.ByVal("n", native.TypeInt, true)),
		native.NewValueMethod("value", (*Counter).value, 0),
		native.NewValueMethodWithParams("addAndGet", (*Counter).addAndGet, native.Public, native.ByVal("n", native.TypeInt, true)),
		native.NewVoidMethod("reset", (*Counter).reset, native.Private),
		native.NewValueMethod("resets", (*Counter).resetCount, native.Protected),
		native.NewValueMethod("zero", func(*Counter) native.Value { return native.Int(0) }, native.Static),
	}

	for _, m := range methods {
		if err := counter.Add(m); err != nil {
			return nil, errors.Wrap(err, "failed to Add")
		}
	}

	for _, c := range []*native.Class{countable, counter} {
		if err := ext.Add(c); err != nil {
			return nil, errors.Wrap(err, "failed to Add class")
		}
	}

	functions := []*native.Function{
		native.NewValueFunction("counter_version", func() native.Value {
			return native.String(ExtensionVersion)
		}),
		native.NewValueFunctionWithParams("counter_sum", sum,
			native.ByVal("a", native.TypeInt, true),
			native.ByVal("b", native.TypeInt, false),
			native.ByVal("c", native.TypeInt, false),
		),
	}

	for _, fn := range functions {
		if err := ext.Function(fn); err != nil {
			return nil, errors.Wrap(err, "failed to Function")
		}
	}

	return ext, nil
}

func sum(p *native.Parameters) native.Value {
	var total int64

	for _, v := range p.Values() {
		n, _ := v.Int()
		total += n
	}

	return native.Int(total)
}
