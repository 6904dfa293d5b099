package host

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/suborbital/extkit/native"
	"github.com/suborbital/vektor/vlog"
)

// Runtime is the scripting host side of an extension: it owns the function table and the live
// objects, and routes script calls to the native descriptors that were registered into it
type Runtime struct {
	UUID string

	apiVersion string
	table      *FunctionTable
	classes    map[string]*native.Class
	extensions map[string]*native.Extension
	objects    objectStore

	log    *vlog.Logger
	tracer trace.Tracer

	lock sync.RWMutex
}

// NewRuntime creates a Runtime with an empty function table
func NewRuntime(mods ...Modifier) *Runtime {
	r := &Runtime{
		UUID:       uuid.New().String(),
		table:      NewFunctionTable(),
		classes:    map[string]*native.Class{},
		extensions: map[string]*native.Extension{},
	}

	for _, mod := range mods {
		mod(r)
	}

	r.finalize()

	return r
}

// Table returns the runtime's function table
func (r *Runtime) Table() *FunctionTable {
	return r.table
}

// Logger returns the runtime's logger
func (r *Runtime) Logger() *vlog.Logger {
	return r.log
}

// Load checks an extension against the host API version and registers its classes and functions
func (r *Runtime) Load(ext *native.Extension) error {
	if err := ext.Compatible(r.apiVersion); err != nil {
		return errors.Wrap(err, "failed to Compatible")
	}

	r.lock.Lock()
	defer r.lock.Unlock()

	if _, exists := r.extensions[ext.Name()]; exists {
		return errors.Errorf("extension %s is already loaded", ext.Name())
	}

	classes := ext.Classes()

	for _, c := range classes {
		if _, exists := r.classes[c.Name()]; exists {
			return errors.Wrapf(native.ErrDuplicateClass, "%s", c.Name())
		}
	}

	// entries are staged first so a failed load leaves the table and classes untouched
	staged := &stagedEntries{}

	for _, c := range classes {
		if err := c.Initialize(staged); err != nil {
			return errors.Wrapf(err, "failed to Initialize class %s", c.Name())
		}
	}

	for _, fn := range ext.Functions() {
		entry := &native.FunctionEntry{}
		fn.Initialize(entry, "")

		staged.entries = append(staged.entries, entry)
	}

	if err := r.table.AddAll(staged.entries...); err != nil {
		return errors.Wrapf(err, "failed to register extension %s", ext.Name())
	}

	for _, c := range classes {
		r.classes[c.Name()] = c
	}

	r.extensions[ext.Name()] = ext

	r.log.Info(fmt.Sprintf("loaded extension %s v%s with %d classes and %d functions", ext.Name(), ext.Version(), len(classes), len(ext.Functions())))

	return nil
}

// Classes returns the names of every registered class, sorted
func (r *Runtime) Classes() []string {
	r.lock.RLock()
	defer r.lock.RUnlock()

	names := maps.Keys(r.classes)
	slices.Sort(names)

	return names
}

// Class returns a registered class by name
func (r *Runtime) Class(name string) (*native.Class, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	c, ok := r.classes[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownClass, "%s", name)
	}

	return c, nil
}

// New constructs an instance of className and returns its handle
func (r *Runtime) New(className string) (Handle, error) {
	class, err := r.Class(className)
	if err != nil {
		return 0, err
	}

	value, err := class.Construct()
	if err != nil {
		return 0, errors.Wrap(err, "failed to Construct")
	}

	h, err := r.objects.add(&object{class: class, value: value})
	if err != nil {
		return 0, errors.Wrap(err, "failed to add object")
	}

	r.log.Debug(fmt.Sprintf("created %s object %d", className, h))

	return h, nil
}

// Object returns the native value behind a handle
func (r *Runtime) Object(h Handle) (native.Base, error) {
	obj, err := r.objects.get(h)
	if err != nil {
		return nil, err
	}

	return obj.value, nil
}

// ClassOf returns the class name of the object behind a handle
func (r *Runtime) ClassOf(h Handle) (string, error) {
	obj, err := r.objects.get(h)
	if err != nil {
		return "", err
	}

	return obj.class.Name(), nil
}

// Destroy releases an object; its handle is invalid afterwards
func (r *Runtime) Destroy(h Handle) error {
	if _, err := r.objects.remove(h); err != nil {
		return err
	}

	r.log.Debug(fmt.Sprintf("destroyed object %d", h))

	return nil
}

// Objects returns the number of live objects
func (r *Runtime) Objects() int {
	return r.objects.len()
}

// Call invokes method on the object behind h
func (r *Runtime) Call(ctx context.Context, h Handle, method string, args ...native.Value) (native.Value, error) {
	obj, err := r.objects.get(h)
	if err != nil {
		return native.Null(), err
	}

	entry, err := r.resolve(obj.class.Name(), method)
	if err != nil {
		return native.Null(), err
	}

	target := obj.value
	if entry.Static() {
		target = nil
	}

	return r.dispatch(ctx, entry, target, args)
}

// CallStatic invokes a static method of class without an object
func (r *Runtime) CallStatic(ctx context.Context, class, method string, args ...native.Value) (native.Value, error) {
	entry, err := r.resolve(class, method)
	if err != nil {
		return native.Null(), err
	}

	if !entry.Static() {
		r.log.Warn(fmt.Sprintf("refused static call to %s", entry.Key()))
		return native.Null(), errors.Wrapf(ErrNotStatic, "%s", entry.Key())
	}

	return r.dispatch(ctx, entry, nil, args)
}

// CallFunction invokes a free function by name
func (r *Runtime) CallFunction(ctx context.Context, name string, args ...native.Value) (native.Value, error) {
	entry, err := r.resolve("", name)
	if err != nil {
		return native.Null(), err
	}

	return r.dispatch(ctx, entry, nil, args)
}

// Invoke dispatches directly to a table entry on behalf of an already-resolved caller such as a Wasm bridge
func (r *Runtime) Invoke(ctx context.Context, entry *native.FunctionEntry, h Handle, args ...native.Value) (native.Value, error) {
	var target native.Base

	// abstract entries are refused by dispatch before any object is needed
	if entry.Class != "" && !entry.Static() && !entry.Abstract() {
		obj, err := r.objects.get(h)
		if err != nil {
			return native.Null(), err
		}

		class, err := r.Class(entry.Class)
		if err != nil {
			return native.Null(), err
		}

		// the handler asserts its receiver type, so the object must belong to the entry's class
		if obj.class != class || !class.Owns(obj.value) {
			return native.Null(), errors.Wrapf(ErrUnknownMethod, "%s has no method %s", obj.class.Name(), entry.Name)
		}

		target = obj.value
	}

	return r.dispatch(ctx, entry, target, args)
}

// stagedEntries collects a loading extension's entries before they reach the table
type stagedEntries struct {
	entries []*native.FunctionEntry
}

func (s *stagedEntries) Add(entry *native.FunctionEntry) error {
	s.entries = append(s.entries, entry)
	return nil
}

func (r *Runtime) resolve(class, name string) (*native.FunctionEntry, error) {
	entry, ok := r.table.Lookup(class, name)
	if !ok {
		return nil, errors.Wrapf(ErrUnknownMethod, "%s", native.EntryKey(class, name))
	}

	return entry, nil
}

// dispatch enforces the calling rules the descriptors themselves leave to the host and then
// hands the call to the entry's handler
func (r *Runtime) dispatch(ctx context.Context, entry *native.FunctionEntry, target native.Base, args []native.Value) (result native.Value, err error) {
	_, span := r.tracer.Start(ctx, entry.Key(), trace.WithAttributes(
		attribute.String("extkit.class", entry.Class),
		attribute.String("extkit.method", entry.Name),
		attribute.Int("extkit.args", len(args)),
	))
	defer span.End()

	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
	}()

	if entry.Abstract() {
		r.log.Warn(fmt.Sprintf("refused call to abstract %s", entry.Key()))
		return native.Null(), errors.Wrapf(ErrAbstractMethod, "%s", entry.Key())
	}

	if !accessible(ctx, entry) {
		r.log.Warn(fmt.Sprintf("refused call to %s %s from %q", entry.Flags.Visibility(), entry.Key(), CallerClass(ctx)))
		return native.Null(), errors.Wrapf(ErrNotAccessible, "%s %s", entry.Flags.Visibility(), entry.Key())
	}

	if err := entry.Args.Check(args); err != nil {
		return native.Null(), errors.Wrapf(err, "%s", entry.Key())
	}

	defer func() {
		if rec := recover(); rec != nil {
			result = native.Null()
			err = errors.Wrapf(ErrNativePanic, "%s: %v", entry.Key(), rec)
			r.log.ErrorString(err.Error())
		}
	}()

	r.log.Debug(fmt.Sprintf("calling %s with %d args", entry.Key(), len(args)))

	result = entry.Handler(native.NewParameters(target, args...))

	span.SetAttributes(attribute.String("extkit.result", result.Kind().String()))

	return result, nil
}
