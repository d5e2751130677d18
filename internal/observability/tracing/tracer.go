// Package tracing provides OpenTelemetry tracing integration: a global tracer,
// HTTP middleware, and tracer provider setup for the daemon.
package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

// tracer is the global tracer instance for the clipdigest application.
var tracer = otel.Tracer("clipdigest")

// GetTracer returns the global tracer for creating spans.
// This tracer can be used throughout the application to create new spans.
//
// Example usage:
//
//	ctx, span := tracing.GetTracer().Start(ctx, "operation-name")
//	defer span.End()
func GetTracer() trace.Tracer {
	return tracer
}

// Init installs a tracer provider and the W3C trace-context propagator.
// Spans are created and propagated; exporting is left to whatever processor
// the deployment attaches. Returns a shutdown function for graceful exit.
func Init() func(context.Context) error {
	provider := sdktrace.NewTracerProvider()
	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	tracer = otel.Tracer("clipdigest")
	return provider.Shutdown
}
