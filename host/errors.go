package host

import "github.com/pkg/errors"

var (
	ErrDuplicateEntry = errors.New("function table entry already exists")
	ErrUnknownClass   = errors.New("unknown class")
	ErrUnknownMethod  = errors.New("unknown method")
	ErrUnknownObject  = errors.New("object does not exist")
	ErrAbstractMethod = errors.New("cannot call abstract method")
	ErrNotAccessible  = errors.New("method is not accessible from this scope")
	ErrNotStatic      = errors.New("non-static method called statically")
	ErrNativePanic    = errors.New("native method panicked")
)
