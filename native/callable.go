package native

// Handler is the uniform entry point a host calls for a registered function table entry
type Handler func(params *Parameters) Value

// FunctionEntry is one slot of the host's function table, filled in by Callable.Initialize
type FunctionEntry struct {
	Name         string
	Class        string
	Flags        Flags
	Args         Arguments
	RequiredArgs int
	Returns      bool
	Handler      Handler
}

// Key returns the name the entry is stored under, "Class::name" for methods
func (e *FunctionEntry) Key() string {
	return EntryKey(e.Class, e.Name)
}

// Abstract returns true if the entry is a declaration without a native implementation
func (e *FunctionEntry) Abstract() bool {
	return e.Flags.Has(Abstract)
}

// Static returns true if the entry can be called without an object
func (e *FunctionEntry) Static() bool {
	return e.Flags.Has(Static)
}

// EntryKey builds a function table key from a class and function name
func EntryKey(class, name string) string {
	if class == "" {
		return name
	}

	return class + "::" + name
}

// Callable is the registration and dispatch protocol shared by every native descriptor
type Callable interface {
	Name() string
	Arguments() Arguments
	Initialize(entry *FunctionEntry, className string)
	Invoke(params *Parameters) Value
}

// Registrar accepts populated function table entries
type Registrar interface {
	Add(entry *FunctionEntry) error
}

// callable holds the state common to methods and functions
type callable struct {
	name string
	args Arguments
}

// Name returns the script-visible name
func (c *callable) Name() string {
	return c.name
}

// Arguments returns a copy of the declared arguments
func (c *callable) Arguments() Arguments {
	return c.args.clone()
}

// initialize fills the parts of entry that do not depend on the concrete descriptor
func (c *callable) initialize(entry *FunctionEntry, className string, flags Flags, handler Handler) {
	entry.Name = c.name
	entry.Class = className
	entry.Flags = flags
	entry.Args = c.args.clone()
	entry.RequiredArgs = c.args.Required()
	entry.Handler = handler
}
