package native

import (
	"github.com/hashicorp/go-version"
	"github.com/pkg/errors"
)

// Extension is the unit a host loads: a named, versioned set of classes and free functions
type Extension struct {
	name      string
	version   string
	requires  version.Constraints
	classes   []*Class
	functions []*Function
	names     map[string]bool
}

// NewExtension creates an empty extension
func NewExtension(name, ver string) *Extension {
	e := &Extension{
		name:    name,
		version: ver,
		names:   map[string]bool{},
	}

	return e
}

// Name returns the extension name
func (e *Extension) Name() string {
	return e.name
}

// Version returns the extension's own version
func (e *Extension) Version() string {
	return e.version
}

// Requires sets the host API version constraint, e.g. ">= 1.0, < 2.0"
func (e *Extension) Requires(constraint string) error {
	c, err := version.NewConstraint(constraint)
	if err != nil {
		return errors.Wrap(err, "failed to NewConstraint")
	}

	e.requires = c

	return nil
}

// Constraint returns the host API constraint, or "" if any version is accepted
func (e *Extension) Constraint() string {
	if e.requires == nil {
		return ""
	}

	return e.requires.String()
}

// Compatible checks hostVersion against the extension's constraint
func (e *Extension) Compatible(hostVersion string) error {
	if e.requires == nil {
		return nil
	}

	v, err := version.NewVersion(hostVersion)
	if err != nil {
		return errors.Wrap(err, "failed to NewVersion")
	}

	if !e.requires.Check(v) {
		return errorf(ErrIncompatible, "%s requires %s, host is %s", e.name, e.requires, v)
	}

	return nil
}

// Add adds a class to the extension
func (e *Extension) Add(c *Class) error {
	if e.names[c.Name()] {
		return errorf(ErrDuplicateClass, "%s", c.Name())
	}

	e.names[c.Name()] = true
	e.classes = append(e.classes, c)

	return nil
}

// Function adds a free function to the extension
func (e *Extension) Function(f *Function) error {
	for _, existing := range e.functions {
		if existing.Name() == f.Name() {
			return errorf(ErrDuplicateFunction, "%s", f.Name())
		}
	}

	e.functions = append(e.functions, f)

	return nil
}

// Classes returns the extension's classes in the order they were added
func (e *Extension) Classes() []*Class {
	classes := make([]*Class, len(e.classes))
	copy(classes, e.classes)

	return classes
}

// Functions returns the extension's free functions in the order they were added
func (e *Extension) Functions() []*Function {
	fns := make([]*Function, len(e.functions))
	copy(fns, e.functions)

	return fns
}
