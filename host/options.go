package host

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/suborbital/vektor/vlog"
)

// DefaultAPIVersion is the host API version extensions are checked against when none is configured
const DefaultAPIVersion = "1.0.0"

// Modifier changes how a Runtime is set up
type Modifier func(*Runtime)

// UseLogger sets the logger to be used.
func UseLogger(logger *vlog.Logger) Modifier {
	return func(r *Runtime) {
		r.log = logger
	}
}

// UseTracer sets the tracer used to span every call
func UseTracer(tracer trace.Tracer) Modifier {
	return func(r *Runtime) {
		r.tracer = tracer
	}
}

// APIVersion sets the host API version extension constraints are checked against
func APIVersion(v string) Modifier {
	return func(r *Runtime) {
		r.apiVersion = v
	}
}

func (r *Runtime) finalize() {
	if r.log == nil {
		r.log = vlog.Default(vlog.EnvPrefix("EXTKIT"))
	}

	if r.tracer == nil {
		r.tracer = otel.Tracer("github.com/suborbital/extkit/host")
	}

	if r.apiVersion == "" {
		r.apiVersion = DefaultAPIVersion
	}
}
