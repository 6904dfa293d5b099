package native

type functionCallback interface {
	shape() Shape
}

type (
	funcNoArgsVoid  func()
	funcArgsVoid    func(*Parameters)
	funcNoArgsValue func() Value
	funcArgsValue   func(*Parameters) Value
)

func (funcNoArgsVoid) shape() Shape  { return ShapeNoArgsVoid }
func (funcArgsVoid) shape() Shape    { return ShapeArgsVoid }
func (funcNoArgsValue) shape() Shape { return ShapeNoArgsValue }
func (funcArgsValue) shape() Shape   { return ShapeArgsValue }

// Function is a native free function; it shares the registration and dispatch protocol of Method
// but never receives an object
type Function struct {
	callable
	callback functionCallback
}

// NewVoidFunction binds a function that takes no arguments and returns nothing
func NewVoidFunction(name string, cb func(), args ...Argument) *Function {
	return newFunction(name, funcNoArgsVoid(cb), args)
}

// NewVoidFunctionWithParams binds a function that takes the call context and returns nothing
func NewVoidFunctionWithParams(name string, cb func(*Parameters), args ...Argument) *Function {
	return newFunction(name, funcArgsVoid(cb), args)
}

// NewValueFunction binds a function that takes no arguments and returns a Value
func NewValueFunction(name string, cb func() Value, args ...Argument) *Function {
	return newFunction(name, funcNoArgsValue(cb), args)
}

// NewValueFunctionWithParams binds a function that takes the call context and returns a Value
func NewValueFunctionWithParams(name string, cb func(*Parameters) Value, args ...Argument) *Function {
	return newFunction(name, funcArgsValue(cb), args)
}

func newFunction(name string, cb functionCallback, args []Argument) *Function {
	f := &Function{
		callable: callable{
			name: name,
			args: Arguments(args).clone(),
		},
		callback: cb,
	}

	return f
}

// Shape returns the calling convention the function was constructed with
func (f *Function) Shape() Shape {
	return f.callback.shape()
}

// Initialize fills entry; free functions are always public
func (f *Function) Initialize(entry *FunctionEntry, className string) {
	f.callable.initialize(entry, className, Public, f.Invoke)
	entry.Returns = f.Shape().Returns()
}

// Invoke calls the bound function, ignoring any object in params
func (f *Function) Invoke(params *Parameters) Value {
	switch cb := f.callback.(type) {
	case funcNoArgsVoid:
		cb()
	case funcArgsVoid:
		cb(params)
	case funcNoArgsValue:
		return cb()
	case funcArgsValue:
		return cb(params)
	}

	return Value{}
}
