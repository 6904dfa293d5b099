package native

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Kind identifies what a Value holds
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	}

	return "unknown"
}

// Value is the polymorphic value passed between scripts and native code.
// The zero Value is null and is what void callbacks hand back to the host.
type Value struct {
	kind Kind
	data interface{}
}

// Null returns the empty Value
func Null() Value {
	return Value{}
}

// Bool returns a boolean Value
func Bool(b bool) Value {
	return Value{kind: KindBool, data: b}
}

// Int returns an integer Value
func Int(i int64) Value {
	return Value{kind: KindInt, data: i}
}

// Float returns a floating point Value
func Float(f float64) Value {
	return Value{kind: KindFloat, data: f}
}

// String returns a string Value
func String(s string) Value {
	return Value{kind: KindString, data: s}
}

// Array returns an array Value holding a copy of vals
func Array(vals ...Value) Value {
	a := make([]Value, len(vals))
	copy(a, vals)

	return Value{kind: KindArray, data: a}
}

// Object wraps a native object instance
func Object(b Base) Value {
	if b == nil {
		return Value{}
	}

	return Value{kind: KindObject, data: b}
}

// NewValue converts a Go scalar, slice or Value into a Value
func NewValue(in interface{}) (Value, error) {
	switch v := in.(type) {
	case nil:
		return Null(), nil
	case Value:
		return v, nil
	case bool:
		return Bool(v), nil
	case int:
		return Int(int64(v)), nil
	case int32:
		return Int(int64(v)), nil
	case int64:
		return Int(v), nil
	case uint32:
		return Int(int64(v)), nil
	case float32:
		return Float(float64(v)), nil
	case float64:
		return Float(v), nil
	case string:
		return String(v), nil
	case []Value:
		return Array(v...), nil
	case []interface{}:
		vals := make([]Value, len(v))
		for i := range v {
			val, err := NewValue(v[i])
			if err != nil {
				return Value{}, errors.Wrapf(err, "element %d", i)
			}

			vals[i] = val
		}

		return Array(vals...), nil
	}

	return Value{}, errors.Errorf("cannot convert %T to a Value", in)
}

// Kind returns the kind of value held
func (v Value) Kind() Kind {
	return v.kind
}

// IsEmpty returns true for the null Value
func (v Value) IsEmpty() bool {
	return v.kind == KindNull
}

// Bool returns the boolean held by v
func (v Value) Bool() (bool, bool) {
	b, ok := v.data.(bool)
	return b, ok
}

// Int returns the integer held by v
func (v Value) Int() (int64, bool) {
	i, ok := v.data.(int64)
	return i, ok
}

// Float returns the number held by v, widening integers
func (v Value) Float() (float64, bool) {
	switch n := v.data.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	}

	return 0, false
}

// Text returns the string held by v
func (v Value) Text() (string, bool) {
	s, ok := v.data.(string)
	return s, ok
}

// Array returns the elements held by v
func (v Value) Array() ([]Value, bool) {
	a, ok := v.data.([]Value)
	return a, ok
}

// Object returns the native object held by v
func (v Value) Object() (Base, bool) {
	if v.kind != KindObject {
		return nil, false
	}

	return v.data, true
}

// String renders v the way a script would print it
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindBool:
		return strconv.FormatBool(v.data.(bool))
	case KindInt:
		return strconv.FormatInt(v.data.(int64), 10)
	case KindFloat:
		return strconv.FormatFloat(v.data.(float64), 'g', -1, 64)
	case KindString:
		return v.data.(string)
	case KindArray:
		elems := v.data.([]Value)
		parts := make([]string, len(elems))
		for i := range elems {
			parts[i] = elems[i].String()
		}

		return "[" + strings.Join(parts, ", ") + "]"
	case KindObject:
		return fmt.Sprintf("object(%T)", v.data)
	}

	return ""
}
