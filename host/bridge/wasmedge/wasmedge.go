//go:build wasmedge
// +build wasmedge

// Package bridgewasmedge runs Wasm guests under WasmEdge with a Runtime's function table mounted as imports.
package bridgewasmedge

import (
	"context"

	"github.com/pkg/errors"
	"github.com/second-state/WasmEdge-go/wasmedge"

	"github.com/suborbital/extkit/host"
	"github.com/suborbital/extkit/host/bridge"
)

// Instance is an instantiated guest module
type Instance struct {
	imports *wasmedge.Module
	vm      *wasmedge.VM
}

// New loads wasm into a WasmEdge VM with rt's host functions available under the "env" module
func New(ctx context.Context, rt *host.Runtime, wasm []byte) (*Instance, error) {
	// Set not to print debug info
	wasmedge.SetLogErrorLevel()

	imports := wasmedge.NewModule(bridge.ImportModule)
	addHostFns(imports, bridge.HostFunctions(ctx, rt)...)

	vm := wasmedge.NewVM()

	if err := vm.RegisterModule(imports); err != nil {
		return nil, errors.Wrap(err, "failed to RegisterModule")
	}

	if err := vm.LoadWasmBuffer(wasm); err != nil {
		return nil, errors.Wrap(err, "failed to LoadWasmBuffer")
	}

	if err := vm.Validate(); err != nil {
		return nil, errors.Wrap(err, "failed to Validate")
	}

	if err := vm.Instantiate(); err != nil {
		return nil, errors.Wrap(err, "failed to Instantiate")
	}

	i := &Instance{
		imports: imports,
		vm:      vm,
	}

	return i, nil
}

// Call calls an exported guest function
func (i *Instance) Call(fn string, args ...interface{}) (interface{}, error) {
	res, err := i.vm.Execute(fn, args...)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to Execute %s", fn)
	}

	if len(res) == 0 {
		return nil, nil
	}

	return res[0], nil
}

// Close releases the VM and the import module
func (i *Instance) Close() {
	i.vm.Release()
	i.imports.Release()
}
