// Package bridge exposes a Runtime's function table to WebAssembly guests as host functions.
//
// Every public, non-abstract entry becomes an import in the "env" module named "Class.method"
// (or just the function name for free functions). Instance methods take the object handle as their
// first i32 parameter, followed by one i32 per declared argument. Entries that return a value
// return it as an i32.
package bridge

import (
	"context"

	"github.com/pkg/errors"

	"github.com/suborbital/extkit/host"
	"github.com/suborbital/extkit/native"
)

// ImportModule is the Wasm module name host functions are registered under
const ImportModule = "env"

type innerFunc func(args ...interface{}) (interface{}, error)

// HostFn describes a host function callable from within a Wasm module
type HostFn struct {
	Name     string
	ArgCount int
	Returns  bool
	HostFn   innerFunc
}

// NewHostFn creates a new host function
func NewHostFn(name string, argCount int, returns bool, fn innerFunc) HostFn {
	h := HostFn{
		Name:     name,
		ArgCount: argCount,
		Returns:  returns,
		HostFn:   fn,
	}

	return h
}

// ImportName returns the name a Wasm guest imports an entry under
func ImportName(entry *native.FunctionEntry) string {
	if entry.Class == "" {
		return entry.Name
	}

	return entry.Class + "." + entry.Name
}

// HostFunctions converts the callable entries of rt's function table into host functions.
// Abstract and non-public entries are left out, as are entries with an argument that cannot hold an i32.
func HostFunctions(ctx context.Context, rt *host.Runtime) []HostFn {
	fns := []HostFn{}

	for _, entry := range rt.Table().Entries() {
		if entry.Abstract() || !entry.Flags.Has(native.Public) || !takesInts(entry.Args) {
			continue
		}

		fns = append(fns, toHostFn(ctx, rt, entry))
	}

	return fns
}

func toHostFn(ctx context.Context, rt *host.Runtime, entry *native.FunctionEntry) HostFn {
	takesHandle := entry.Class != "" && !entry.Static()

	argCount := entry.Args.Len()
	if takesHandle {
		argCount++
	}

	fn := func(args ...interface{}) (interface{}, error) {
		var handle host.Handle

		if takesHandle {
			h, err := toInt32(args[0])
			if err != nil {
				return nil, errors.Wrap(err, "object handle")
			}

			handle = host.Handle(h)
			args = args[1:]
		}

		vals := make([]native.Value, len(args))
		for i := range args {
			v, err := toInt32(args[i])
			if err != nil {
				return nil, errors.Wrapf(err, "argument %d", i+1)
			}

			vals[i] = native.Int(int64(v))
		}

		result, err := rt.Invoke(ctx, entry, handle, vals...)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to Invoke %s", entry.Key())
		}

		if !entry.Returns {
			return nil, nil
		}

		return fromValue(result)
	}

	return NewHostFn(ImportName(entry), argCount, entry.Returns, fn)
}

// takesInts reports whether every argument accepts the Int values built from a guest's i32 params
func takesInts(args native.Arguments) bool {
	for _, arg := range args {
		if !arg.Type.Accepts(native.KindInt) {
			return false
		}
	}

	return true
}

func toInt32(arg interface{}) (int32, error) {
	switch v := arg.(type) {
	case int32:
		return v, nil
	case int64:
		return int32(v), nil
	case int:
		return int32(v), nil
	}

	return 0, errors.Errorf("expected an i32, got %T", arg)
}

// fromValue narrows a method result to the single i32 a Wasm import can return
func fromValue(v native.Value) (int32, error) {
	switch v.Kind() {
	case native.KindNull:
		return 0, nil
	case native.KindBool:
		if b, _ := v.Bool(); b {
			return 1, nil
		}

		return 0, nil
	case native.KindInt:
		i, _ := v.Int()
		return int32(i), nil
	}

	return 0, errors.Errorf("cannot return a %s value to a Wasm guest", v.Kind())
}
