package native

import "github.com/pkg/errors"

var (
	ErrUnknownFlag       = errors.New("unknown flag")
	ErrDuplicateMethod   = errors.New("method already declared")
	ErrDuplicateClass    = errors.New("class already declared")
	ErrDuplicateFunction = errors.New("function already declared")
	ErrInterfaceMethod   = errors.New("interface methods must be abstract")
	ErrNotInstantiable   = errors.New("class cannot be instantiated")
	ErrIncompatible      = errors.New("extension is not compatible with host API version")
	ErrArgumentCount     = errors.New("wrong number of arguments")
	ErrArgumentType      = errors.New("argument has the wrong type")
)

// errorf wraps a sentinel with call-specific detail while keeping it matchable with errors.Is
func errorf(sentinel error, format string, args ...interface{}) error {
	return errors.Wrapf(sentinel, format, args...)
}
