package tracer

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// instrumentationName identifies this package as the instrumentation
// scope on every span it creates.
const instrumentationName = "github.com/Abolfazl-Alemi/traces/tracer"

// spanImpl adapts an OpenTelemetry span to the Span interface.
type spanImpl struct {
	span oteltrace.Span
}

// End implements Span.
func (s *spanImpl) End() {
	s.span.End()
}

// SetAttributes implements Span. Supported value types keep their
// native representation; anything else falls back to fmt.Sprint.
func (s *spanImpl) SetAttributes(attrs map[string]interface{}) {
	if len(attrs) == 0 {
		return
	}

	attributes := make([]attribute.KeyValue, 0, len(attrs))

	for k, v := range attrs {
		switch val := v.(type) {
		case string:
			attributes = append(attributes, attribute.String(k, val))
		case int:
			attributes = append(attributes, attribute.Int(k, val))
		case int64:
			attributes = append(attributes, attribute.Int64(k, val))
		case float64:
			attributes = append(attributes, attribute.Float64(k, val))
		case bool:
			attributes = append(attributes, attribute.Bool(k, val))
		default:
			attributes = append(attributes, attribute.String(k, fmt.Sprint(val)))
		}
	}

	s.span.SetAttributes(attributes...)
}

// RecordError implements Span. It records the error event and sets the
// span status so failed operations stand out in trace visualizations.
func (s *spanImpl) RecordError(err error) {
	s.span.RecordError(err)
	s.span.SetStatus(codes.Error, err.Error())
}

// StartSpan creates a new internal span with the given name and returns
// an updated context containing it. The span becomes a child of any span
// in ctx; with an empty context it starts a new trace root.
//
// Example:
//
//	ctx, span := client.StartSpan(ctx, "process-request")
//	defer span.End()
func (t *TracerClient) StartSpan(ctx context.Context, name string) (context.Context, Span) {
	return t.StartSpanWithKind(ctx, oteltrace.SpanKindInternal, name)
}

// StartSpanWithKind creates a new span with an explicit kind. Use
// SpanKindServer/SpanKindClient for spans sitting on an RPC boundary so
// backends can compute latency breakdowns correctly.
func (t *TracerClient) StartSpanWithKind(ctx context.Context, kind oteltrace.SpanKind, name string) (context.Context, Span) {
	tracer := t.provider.Tracer(instrumentationName)
	ctx, otSpan := tracer.Start(ctx, name, oteltrace.WithSpanKind(kind))

	return ctx, &spanImpl{span: otSpan}
}

// TraceID implements Tracer by delegating to the package-level helper.
func (t *TracerClient) TraceID(ctx context.Context) string {
	return TraceID(ctx)
}

// SpanID implements Tracer by delegating to the package-level helper.
func (t *TracerClient) SpanID(ctx context.Context) string {
	return SpanID(ctx)
}

// TraceID returns the 32-character lowercase hex trace ID carried by
// ctx, or the empty string when ctx holds no span context. Unsampled and
// no-op span contexts still yield their identifiers, so logs can be
// correlated regardless of sampling decisions.
func TraceID(ctx context.Context) string {
	spanCtx := oteltrace.SpanContextFromContext(ctx)
	if !spanCtx.HasTraceID() {
		return ""
	}
	return spanCtx.TraceID().String()
}

// SpanID returns the 16-character lowercase hex span ID carried by ctx,
// or the empty string when ctx holds no span context.
func SpanID(ctx context.Context) string {
	spanCtx := oteltrace.SpanContextFromContext(ctx)
	if !spanCtx.HasSpanID() {
		return ""
	}
	return spanCtx.SpanID().String()
}
