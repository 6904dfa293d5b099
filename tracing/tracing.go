package tracing

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdkTrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/suborbital/extkit/options"
	"github.com/suborbital/vektor/vlog"
)

const (
	ExporterCollector = "collector"
	ExporterNone      = "none"
)

// SetupTracing configures open telemetry according to config and installs the result as the global
// tracer provider. The caller is responsible for shutting the provider down.
func SetupTracing(config options.TracerConfig, logger *vlog.Logger) (*sdkTrace.TracerProvider, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	var traceProvider *sdkTrace.TracerProvider

	switch config.TracerType {
	case ExporterCollector:
		if config.Collector == nil || config.Collector.Endpoint == "" {
			return nil, errors.New("missing collector tracing config values")
		}

		logger.Info("configuring collector exporter for tracing")

		exporter, err := otlptracegrpc.New(ctx,
			otlptracegrpc.WithEndpoint(config.Collector.Endpoint),
			otlptracegrpc.WithInsecure(),
		)
		if err != nil {
			return nil, errors.Wrap(err, "failed to otlptracegrpc.New")
		}

		traceProvider = sdkTrace.NewTracerProvider(
			sdkTrace.WithBatcher(exporter),
			sdkTrace.WithSampler(sdkTrace.ParentBased(sdkTrace.TraceIDRatioBased(config.Probability))),
			sdkTrace.WithResource(resource.NewSchemaless(attribute.String("service.name", config.ServiceName))),
		)

		logger.Info("created collector trace exporter")
	default:
		logger.Warn("unrecognised tracer type configuration. Defaulting to no tracer")
		fallthrough
	case ExporterNone, "":
		// Create the most default trace provider and escape early.
		traceProvider = sdkTrace.NewTracerProvider(sdkTrace.WithSampler(sdkTrace.NeverSample()))

		logger.Debug("finished setting up default noop tracer")
	}

	otel.SetTracerProvider(traceProvider)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return traceProvider, nil
}
