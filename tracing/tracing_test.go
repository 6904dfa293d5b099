package tracing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suborbital/extkit/options"
	"github.com/suborbital/vektor/vlog"
)

func TestSetupTracing(t *testing.T) {
	logger := vlog.Default(vlog.Level(vlog.LogLevelWarn))

	for _, typ := range []string{"", ExporterNone, "honeycomb"} {
		t.Run(typ, func(t *testing.T) {
			tp, err := SetupTracing(options.TracerConfig{TracerType: typ}, logger)
			require.NoError(t, err)

			_, span := tp.Tracer("test").Start(context.Background(), "noop")
			assert.False(t, span.SpanContext().IsSampled())
			span.End()

			assert.NoError(t, tp.Shutdown(context.Background()))
		})
	}

	_, err := SetupTracing(options.TracerConfig{TracerType: ExporterCollector}, logger)
	assert.Error(t, err)
}
