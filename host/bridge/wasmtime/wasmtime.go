// Package bridgewasmtime runs Wasm guests under Wasmtime with a Runtime's function table mounted as imports.
package bridgewasmtime

import (
	"context"

	"github.com/bytecodealliance/wasmtime-go"
	"github.com/pkg/errors"

	"github.com/suborbital/extkit/host"
	"github.com/suborbital/extkit/host/bridge"
)

// Instance is an instantiated guest module
type Instance struct {
	inst  *wasmtime.Instance
	store *wasmtime.Store
}

// New compiles wasm and instantiates it with rt's host functions available under the "env" module
func New(ctx context.Context, rt *host.Runtime, wasm []byte) (*Instance, error) {
	engine := wasmtime.NewEngine()

	module, err := wasmtime.NewModule(engine, wasm)
	if err != nil {
		return nil, errors.Wrap(err, "failed to NewModule")
	}

	// Create a linker with WASI functions defined within it
	linker := wasmtime.NewLinker(engine)
	if err := linker.DefineWasi(); err != nil {
		return nil, errors.Wrap(err, "failed to DefineWasi")
	}

	if err := addHostFns(linker, bridge.HostFunctions(ctx, rt)...); err != nil {
		return nil, errors.Wrap(err, "failed to addHostFns")
	}

	store := wasmtime.NewStore(engine)
	store.SetWasi(wasmtime.NewWasiConfig())

	inst, err := linker.Instantiate(store, module)
	if err != nil {
		return nil, errors.Wrap(err, "failed to linker.Instantiate")
	}

	i := &Instance{
		inst:  inst,
		store: store,
	}

	return i, nil
}

// Call calls an exported guest function
func (i *Instance) Call(fn string, args ...interface{}) (interface{}, error) {
	wasmFunc := i.inst.GetFunc(i.store, fn)
	if wasmFunc == nil {
		return nil, errors.Errorf("function %s not found", fn)
	}

	result, err := wasmFunc.Call(i.store, args...)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to call %s", fn)
	}

	return result, nil
}
