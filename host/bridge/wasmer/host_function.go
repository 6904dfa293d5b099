//go:build wasmer
// +build wasmer

package bridgewasmer

import (
	"github.com/wasmerio/wasmer-go/wasmer"

	"github.com/suborbital/extkit/host/bridge"
)

// wasmerHostFn describes a host function callable from within a guest module
type wasmerHostFn struct {
	name   string
	args   []wasmer.ValueKind
	ret    []wasmer.ValueKind
	hostFn func(...wasmer.Value) (interface{}, error)
}

// toWasmerHostFn creates a wasmer-specific representation of a bridge host function
func toWasmerHostFn(hostFn bridge.HostFn) *wasmerHostFn {
	retVals := []wasmer.ValueKind{}
	if hostFn.Returns {
		retVals = append(retVals, wasmer.I32)
	}

	args := make([]wasmer.ValueKind, hostFn.ArgCount)
	for i := 0; i < hostFn.ArgCount; i++ {
		args[i] = wasmer.I32
	}

	hfn := &wasmerHostFn{
		name: hostFn.Name,
		args: args,
		ret:  retVals,
		hostFn: func(wasmerArgs ...wasmer.Value) (interface{}, error) {
			funcArgs := make([]interface{}, len(wasmerArgs))
			for i, a := range wasmerArgs {
				funcArgs[i] = a.I32()
			}

			return hostFn.HostFn(funcArgs...)
		},
	}

	return hfn
}

// addHostFns registers a list of host functions with an import object
func addHostFns(imports *wasmer.ImportObject, store *wasmer.Store, fns ...bridge.HostFn) {
	externMap := map[string]wasmer.IntoExtern{}

	for _, fn := range fns {
		h := toWasmerHostFn(fn)
		externMap[h.name] = h.toWasmerFn(store)
	}

	imports.Register(bridge.ImportModule, externMap)
}

func (h *wasmerHostFn) toWasmerFn(store *wasmer.Store) *wasmer.Function {
	return wasmer.NewFunction(
		store,
		wasmer.NewFunctionType(wasmer.NewValueTypes(h.args...), wasmer.NewValueTypes(h.ret...)),
		h.innerFn(),
	)
}

// innerFn wraps the host fn in a Wasmer fn
func (h *wasmerHostFn) innerFn() func([]wasmer.Value) ([]wasmer.Value, error) {
	return func(argL []wasmer.Value) ([]wasmer.Value, error) {
		result, err := h.hostFn(argL...)
		if err != nil {
			return nil, err
		}

		retVals := []wasmer.Value{}
		if len(h.ret) > 0 && result != nil {
			retVals = append(retVals, wasmer.NewValue(result, wasmer.I32))
		}

		return retVals, nil
	}
}
