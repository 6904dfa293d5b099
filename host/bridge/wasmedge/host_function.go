//go:build wasmedge
// +build wasmedge

// we compile-exclude wasmedge by default as tests will fail unless WasmEdge is installed

package bridgewasmedge

import (
	"github.com/second-state/WasmEdge-go/wasmedge"

	"github.com/suborbital/extkit/host/bridge"
)

// toWasmEdgeHostFn creates a new WasmEdge host function from a bridge host fn
func toWasmEdgeHostFn(hostFn bridge.HostFn) func(data interface{}, frame *wasmedge.CallingFrame, params []interface{}) ([]interface{}, wasmedge.Result) {
	return func(data interface{}, frame *wasmedge.CallingFrame, params []interface{}) ([]interface{}, wasmedge.Result) {
		hostResult, hostErr := hostFn.HostFn(params...)
		if hostErr != nil {
			return nil, wasmedge.Result_Fail
		}

		if !hostFn.Returns {
			return nil, wasmedge.Result_Success
		}

		return []interface{}{hostResult}, wasmedge.Result_Success
	}
}

// addHostFns adds a list of host functions to an import module
func addHostFns(imports *wasmedge.Module, fns ...bridge.HostFn) {
	for _, fn := range fns {
		argsType := make([]wasmedge.ValType, fn.ArgCount)
		for i := 0; i < fn.ArgCount; i++ {
			argsType[i] = wasmedge.ValType_I32
		}

		retType := []wasmedge.ValType{}
		if fn.Returns {
			retType = append(retType, wasmedge.ValType_I32)
		}

		funcType := wasmedge.NewFunctionType(argsType, retType)

		imports.AddFunction(fn.Name, wasmedge.NewFunction(funcType, toWasmEdgeHostFn(fn), nil, 0))
	}
}
