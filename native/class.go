package native

import "github.com/pkg/errors"

// Class groups the methods of one script-visible class along with how to construct its instances
type Class struct {
	name      string
	construct func() Base
	owns      func(Base) bool
	methods   []*Method
	index     map[string]*Method
	iface     bool
}

// NewClass creates a class whose instances are built by construct.
// A nil construct produces a class that scripts cannot instantiate.
func NewClass[T Base](name string, construct func() T) *Class {
	c := &Class{
		name:  name,
		owns:  func(b Base) bool { _, ok := b.(T); return ok },
		index: map[string]*Method{},
	}

	if construct != nil {
		c.construct = func() Base { return construct() }
	}

	return c
}

// NewInterface creates an interface: no constructor, and every method must be abstract
func NewInterface(name string) *Class {
	c := &Class{
		name:  name,
		owns:  func(Base) bool { return false },
		index: map[string]*Method{},
		iface: true,
	}

	return c
}

// Name returns the class name
func (c *Class) Name() string {
	return c.name
}

// IsInterface returns true for classes created with NewInterface
func (c *Class) IsInterface() bool {
	return c.iface
}

// Add declares a method on the class
func (c *Class) Add(m *Method) error {
	if _, exists := c.index[m.Name()]; exists {
		return errorf(ErrDuplicateMethod, "%s", EntryKey(c.name, m.Name()))
	}

	if c.iface && m.Shape() != ShapeAbstract {
		return errorf(ErrInterfaceMethod, "%s", EntryKey(c.name, m.Name()))
	}

	// a declaration without a body is abstract in the class that declares it
	if m.Shape() == ShapeAbstract {
		m.flags |= Abstract
	}

	c.methods = append(c.methods, m)
	c.index[m.Name()] = m

	return nil
}

// Methods returns the declared methods in declaration order
func (c *Class) Methods() []*Method {
	methods := make([]*Method, len(c.methods))
	copy(methods, c.methods)

	return methods
}

// Lookup finds a declared method by name
func (c *Class) Lookup(name string) (*Method, bool) {
	m, ok := c.index[name]
	return m, ok
}

// Instantiable returns true if the class has a constructor and no abstract methods
func (c *Class) Instantiable() bool {
	if c.iface || c.construct == nil {
		return false
	}

	for _, m := range c.methods {
		if m.Shape() == ShapeAbstract {
			return false
		}
	}

	return true
}

// Construct creates a new instance of the class
func (c *Class) Construct() (Base, error) {
	if !c.Instantiable() {
		return nil, errorf(ErrNotInstantiable, "%s", c.name)
	}

	return c.construct(), nil
}

// Owns returns true if b is an instance of the class's native type
func (c *Class) Owns(b Base) bool {
	return c.owns(b)
}

// Initialize registers an entry for every method with reg
func (c *Class) Initialize(reg Registrar) error {
	for _, m := range c.methods {
		entry := &FunctionEntry{}
		m.Initialize(entry, c.name)

		if err := reg.Add(entry); err != nil {
			return errors.Wrapf(err, "failed to Add %s", entry.Key())
		}
	}

	return nil
}
