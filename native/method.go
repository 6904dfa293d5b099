package native

// Shape identifies which native calling convention a descriptor is bound to
type Shape uint8

const (
	ShapeNoArgsVoid Shape = iota
	ShapeArgsVoid
	ShapeNoArgsValue
	ShapeArgsValue
	ShapeAbstract
)

func (s Shape) String() string {
	switch s {
	case ShapeNoArgsVoid:
		return "void()"
	case ShapeArgsVoid:
		return "void(params)"
	case ShapeNoArgsValue:
		return "value()"
	case ShapeArgsValue:
		return "value(params)"
	case ShapeAbstract:
		return "abstract"
	}

	return "unknown"
}

// Returns reports whether calls through s produce the callback's own value
func (s Shape) Returns() bool {
	return s == ShapeNoArgsValue || s == ShapeArgsValue
}

// TakesParams reports whether the callback receives the call context
func (s Shape) TakesParams() bool {
	return s == ShapeArgsVoid || s == ShapeArgsValue
}

// methodCallback is the closed set of native method signatures.
// Only the variants below implement it, so a Method's shape can never disagree with its callback.
type methodCallback interface {
	shape() Shape
}

type (
	methodNoArgsVoid  func(Base)
	methodArgsVoid    func(Base, *Parameters)
	methodNoArgsValue func(Base) Value
	methodArgsValue   func(Base, *Parameters) Value
)

func (methodNoArgsVoid) shape() Shape  { return ShapeNoArgsVoid }
func (methodArgsVoid) shape() Shape    { return ShapeArgsVoid }
func (methodNoArgsValue) shape() Shape { return ShapeNoArgsValue }
func (methodArgsValue) shape() Shape   { return ShapeArgsValue }

// Method is a native class method that scripts can call on an object
type Method struct {
	callable
	flags    Flags
	callback methodCallback
}

// NewVoidMethod binds a method that takes no arguments and returns nothing
func NewVoidMethod[T Base](name string, cb func(T), flags Flags, args ...Argument) *Method {
	fn := methodNoArgsVoid(func(b Base) {
		cb(receiver[T](b))
	})

	return newMethod(name, fn, flags, args)
}

// NewVoidMethodWithParams binds a method that takes the call context and returns nothing
func NewVoidMethodWithParams[T Base](name string, cb func(T, *Parameters), flags Flags, args ...Argument) *Method {
	fn := methodArgsVoid(func(b Base, p *Parameters) {
		cb(receiver[T](b), p)
	})

	return newMethod(name, fn, flags, args)
}

// NewValueMethod binds a method that takes no arguments and returns a Value
func NewValueMethod[T Base](name string, cb func(T) Value, flags Flags, args ...Argument) *Method {
	fn := methodNoArgsValue(func(b Base) Value {
		return cb(receiver[T](b))
	})

	return newMethod(name, fn, flags, args)
}

// NewValueMethodWithParams binds a method that takes the call context and returns a Value
func NewValueMethodWithParams[T Base](name string, cb func(T, *Parameters) Value, flags Flags, args ...Argument) *Method {
	fn := methodArgsValue(func(b Base, p *Parameters) Value {
		return cb(receiver[T](b), p)
	})

	return newMethod(name, fn, flags, args)
}

// NewAbstractMethod declares a method without an implementation, for abstract classes and interfaces.
// The class the method is added to marks it Abstract.
func NewAbstractMethod(name string, flags Flags, args ...Argument) *Method {
	return newMethod(name, nil, flags, args)
}

func newMethod(name string, cb methodCallback, flags Flags, args []Argument) *Method {
	m := &Method{
		callable: callable{
			name: name,
			args: Arguments(args).clone(),
		},
		flags:    flags,
		callback: cb,
	}

	return m
}

// receiver converts the host's object into the receiver type the callback was written for.
// Static methods are called with a nil object and get the zero T.
func receiver[T Base](b Base) T {
	t, _ := b.(T)
	return t
}

// Shape returns the calling convention the method was constructed with
func (m *Method) Shape() Shape {
	if m.callback == nil {
		return ShapeAbstract
	}

	return m.callback.shape()
}

// Flags returns the access flags, normalized once Initialize has run
func (m *Method) Flags() Flags {
	return m.flags
}

// Initialize normalizes the access flags and fills entry for the class named className.
// Calling it again yields the same entry since normalized flags are stable.
func (m *Method) Initialize(entry *FunctionEntry, className string) {
	// without a visibility bit the host would warn about methods declared only "final" or "abstract"
	m.flags = NormalizeFlags(m.flags)

	m.callable.initialize(entry, className, m.flags, m.Invoke)
	entry.Returns = m.Shape().Returns()
}

// Invoke calls the bound native method on the object carried by params
func (m *Method) Invoke(params *Parameters) Value {
	base := params.Object()

	switch cb := m.callback.(type) {
	case methodNoArgsVoid:
		cb(base)
		return Value{}
	case methodArgsVoid:
		cb(base, params)
		return Value{}
	case methodNoArgsValue:
		return cb(base)
	case methodArgsValue:
		return cb(base, params)
	}

	// declaration only, the host is expected never to route a call here
	return Value{}
}
