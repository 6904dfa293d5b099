package bridgewasmtime

import (
	"github.com/bytecodealliance/wasmtime-go"
	"github.com/pkg/errors"

	"github.com/suborbital/extkit/host/bridge"
)

var i32Type = wasmtime.NewValType(wasmtime.KindI32)

// addHostFns adds a list of host functions to a linker
func addHostFns(linker *wasmtime.Linker, fns ...bridge.HostFn) error {
	for i := range fns {
		// we create a copy inside the loop otherwise things get overwritten
		fn := fns[i]

		// every parameter crosses the boundary as an i32: the object handle and then each declared argument
		params := make([]*wasmtime.ValType, fn.ArgCount)
		for i := 0; i < fn.ArgCount; i++ {
			params[i] = i32Type
		}

		returns := []*wasmtime.ValType{}
		if fn.Returns {
			returns = append(returns, i32Type)
		}

		fnType := wasmtime.NewFuncType(params, returns)

		wasmtimeFunc := func(_ *wasmtime.Caller, args []wasmtime.Val) ([]wasmtime.Val, *wasmtime.Trap) {
			hostArgs := make([]interface{}, fn.ArgCount)
			for i := range hostArgs {
				hostArgs[i] = args[i].I32()
			}

			result, err := fn.HostFn(hostArgs...)
			if err != nil {
				return nil, wasmtime.NewTrap(errors.Wrapf(err, "failed to HostFn for %s", fn.Name).Error())
			}

			// void entries return nothing, so nil check before trying to convert it
			returnVals := []wasmtime.Val{}
			if fn.Returns && result != nil {
				returnVals = append(returnVals, wasmtime.ValI32(result.(int32)))
			}

			return returnVals, nil
		}

		if err := linker.FuncNew(bridge.ImportModule, fn.Name, fnType, wasmtimeFunc); err != nil {
			return errors.Wrapf(err, "failed to FuncNew %s", fn.Name)
		}
	}

	return nil
}
