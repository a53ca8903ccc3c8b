package infrastructure

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

const (
	// ServiceName identifies this service in exported spans.
	ServiceName = "calibgrid"
	// TracerName is the instrumentation scope for service-level spans.
	TracerName = "calibgrid/internal/services"
)

// InitializeTracing installs a tracer provider exporting spans to stdout and
// returns it with a shutdown function for graceful teardown. When disabled,
// the returned tracer is the global no-op tracer.
func InitializeTracing(ctx context.Context, enabled bool, logger *slog.Logger) (trace.Tracer, func(context.Context) error, error) {
	if !enabled {
		return otel.Tracer(TracerName), func(context.Context) error { return nil }, nil
	}

	exporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, nil, fmt.Errorf("create trace exporter: %w", err)
	}

	res, err := resource.Merge(resource.Default(), resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(ServiceName),
	))
	if err != nil {
		return nil, nil, fmt.Errorf("build trace resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)

	logger.InfoContext(ctx, "tracing initialized",
		slog.String("service", ServiceName),
		slog.String("exporter", "stdout"),
	)
	return tp.Tracer(TracerName), tp.Shutdown, nil
}
