package tracer

import (
	"context"

	oteltrace "go.opentelemetry.io/otel/trace"
)

// Tracer provides distributed tracing capabilities for applications.
// It wraps the installed OpenTelemetry provider with a simplified
// interface for creating spans and reading correlation identifiers.
//
// This interface is implemented by the concrete *TracerClient type.
type Tracer interface {
	// StartSpan creates a new internal span with the given name. The span
	// is parented to the span in ctx, if any; otherwise it starts a new
	// trace. Always call span.End() when the operation completes,
	// typically via defer.
	StartSpan(ctx context.Context, name string) (context.Context, Span)

	// StartSpanWithKind is StartSpan with an explicit span kind, for
	// spans that sit on an RPC boundary (server, client, producer,
	// consumer).
	StartSpanWithKind(ctx context.Context, kind oteltrace.SpanKind, name string) (context.Context, Span)

	// TraceID returns the hex-encoded trace ID carried by ctx, or the
	// empty string when ctx holds no span. The ID is returned for
	// unsampled spans too, so log correlation never depends on sampling
	// decisions.
	TraceID(ctx context.Context) string

	// SpanID returns the hex-encoded span ID carried by ctx, or the
	// empty string when ctx holds no span.
	SpanID(ctx context.Context) string
}

// Span represents a single timed operation in a trace. It abstracts the
// underlying OpenTelemetry span so application code does not depend on
// the tracing library directly.
//
// Spans form a hierarchy: a span started from a context carrying another
// span becomes its child. Always call End() when the operation
// completes, typically via defer immediately after creation.
type Span interface {
	// End completes the span and hands it to the configured exporter
	// pipeline.
	End()

	// SetAttributes adds key/value attributes to the span. Strings,
	// ints, int64s, float64s and bools keep their type; anything else is
	// stringified.
	SetAttributes(attrs map[string]interface{})

	// RecordError records the error on the span and marks the span
	// status as failed.
	RecordError(err error)
}
