package native

// Base is a native object instance that methods are invoked on
type Base interface{}

// Parameters is the call context handed to a descriptor: the target object and the ordered call-site values.
// A nil *Parameters behaves like an empty call with no object.
type Parameters struct {
	object Base
	values []Value
}

// NewParameters creates a call context for object (nil for static methods and functions)
func NewParameters(object Base, values ...Value) *Parameters {
	p := &Parameters{
		object: object,
		values: values,
	}

	return p
}

// Object returns the instance the call targets
func (p *Parameters) Object() Base {
	if p == nil {
		return nil
	}

	return p.object
}

// Len returns the number of call-site values
func (p *Parameters) Len() int {
	if p == nil {
		return 0
	}

	return len(p.values)
}

// At returns the value at index i, or the empty Value when i is out of range
func (p *Parameters) At(i int) Value {
	if p == nil || i < 0 || i >= len(p.values) {
		return Value{}
	}

	return p.values[i]
}

// Values returns a copy of the call-site values
func (p *Parameters) Values() []Value {
	if p == nil {
		return nil
	}

	vals := make([]Value, len(p.values))
	copy(vals, p.values)

	return vals
}
