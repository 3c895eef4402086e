package propagator

import (
	"context"

	"go.opentelemetry.io/otel"
	oteltrace "go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc/metadata"
)

// extractedSpanName names the span opened for the work an incoming call
// performs in this service.
const extractedSpanName = "gRPC"

// Inject writes the trace context carried by ctx into the metadata map
// under the standard W3C trace-context keys, using the globally
// installed propagator. Existing propagation keys in the map are
// overwritten, never appended to.
//
// When ctx has no active span there is nothing to propagate and the map
// is left untouched. Inject never fails.
func Inject(ctx context.Context, md metadata.MD) {
	otel.GetTextMapPropagator().Inject(ctx, MetadataCarrier(md))
}

// Extract reads the trace context from the metadata map, reconstructs
// the remote parent, and immediately opens a new server-side span under
// it representing the work this service performs for the call.
//
// Extract never fails: when the propagation keys are absent or
// malformed the returned span starts a fresh trace root instead. The
// caller owns the returned span and must End it.
func Extract(ctx context.Context, md metadata.MD, tracer oteltrace.Tracer) (context.Context, oteltrace.Span) {
	ctx = otel.GetTextMapPropagator().Extract(ctx, MetadataCarrier(md))
	return tracer.Start(ctx, extractedSpanName, oteltrace.WithSpanKind(oteltrace.SpanKindServer))
}
