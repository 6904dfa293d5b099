//go:build wasmer
// +build wasmer

// Package bridgewasmer runs Wasm guests under Wasmer with a Runtime's function table mounted as imports.
package bridgewasmer

import (
	"context"

	"github.com/pkg/errors"
	"github.com/wasmerio/wasmer-go/wasmer"

	"github.com/suborbital/extkit/host"
	"github.com/suborbital/extkit/host/bridge"
)

// Instance is an instantiated guest module
type Instance struct {
	inst *wasmer.Instance
}

// New compiles wasm and instantiates it with rt's host functions available under the "env" module
func New(ctx context.Context, rt *host.Runtime, wasm []byte) (*Instance, error) {
	store := wasmer.NewStore(wasmer.NewEngine())

	module, err := wasmer.NewModule(store, wasm)
	if err != nil {
		return nil, errors.Wrap(err, "failed to NewModule")
	}

	imports := wasmer.NewImportObject()
	addHostFns(imports, store, bridge.HostFunctions(ctx, rt)...)

	inst, err := wasmer.NewInstance(module, imports)
	if err != nil {
		return nil, errors.Wrap(err, "failed to NewInstance")
	}

	return &Instance{inst: inst}, nil
}

// Call calls an exported guest function
func (i *Instance) Call(fn string, args ...interface{}) (interface{}, error) {
	wasmFunc, err := i.inst.Exports.GetFunction(fn)
	if err != nil {
		return nil, errors.Wrapf(err, "function %s not found", fn)
	}

	result, err := wasmFunc(args...)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to call %s", fn)
	}

	return result, nil
}
