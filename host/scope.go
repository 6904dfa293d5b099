package host

import (
	"context"

	"github.com/suborbital/extkit/native"
)

type scopeKey struct{}

// WithCallerClass marks ctx as executing inside class, which grants access to its
// protected and private methods
func WithCallerClass(ctx context.Context, class string) context.Context {
	return context.WithValue(ctx, scopeKey{}, class)
}

// CallerClass returns the class ctx is executing inside, or "" for top-level script code
func CallerClass(ctx context.Context) string {
	class, _ := ctx.Value(scopeKey{}).(string)
	return class
}

// accessible applies visibility rules. Class hierarchies are not modelled, so protected
// behaves like private.
func accessible(ctx context.Context, entry *native.FunctionEntry) bool {
	if entry.Class == "" || entry.Flags.Has(native.Public) {
		return true
	}

	return CallerClass(ctx) == entry.Class
}
