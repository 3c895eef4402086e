package tracer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	oteltrace "go.opentelemetry.io/otel/trace"
)

func newTestClient(t *testing.T) *TracerClient {
	t.Helper()
	client, err := NewClient(Config{
		ServiceName:  "test",
		AppEnv:       EnvironmentLocal,
		EnableTraces: false,
	}, DefaultCapabilities())
	require.NoError(t, err)
	return client
}

func TestStartSpan_ReturnsSpanAndContext(t *testing.T) {
	t.Parallel()
	client := newTestClient(t)

	ctx, span := client.StartSpan(context.Background(), "test-op")

	assert.NotNil(t, span)
	assert.NotNil(t, ctx)
	span.End()
}

func TestStartSpan_ChildInheritsTraceID(t *testing.T) {
	t.Parallel()
	client := newTestClient(t)

	parentCtx, parentSpan := client.StartSpan(context.Background(), "parent")
	defer parentSpan.End()

	childCtx, childSpan := client.StartSpan(parentCtx, "child")
	defer childSpan.End()

	assert.Equal(t, TraceID(parentCtx), TraceID(childCtx))
	assert.NotEqual(t, SpanID(parentCtx), SpanID(childCtx))
}

func TestStartSpanWithKind_SetsKind(t *testing.T) {
	t.Parallel()
	client := newTestClient(t)

	ctx, span := client.StartSpanWithKind(context.Background(), oteltrace.SpanKindServer, "rpc-op")
	defer span.End()

	assert.True(t, oteltrace.SpanFromContext(ctx).SpanContext().IsValid())
}

func TestSetAttributes_AllTypes(t *testing.T) {
	t.Parallel()
	client := newTestClient(t)
	_, span := client.StartSpan(context.Background(), "attrs-op")
	defer span.End()

	assert.NotPanics(t, func() {
		span.SetAttributes(map[string]interface{}{
			"str":     "hello",
			"int":     42,
			"int64":   int64(100),
			"float64": 3.14,
			"bool":    true,
			"other":   []string{"a", "b"}, // fallback to fmt.Sprint
		})
	})
}

func TestSetAttributes_EmptyMap(t *testing.T) {
	t.Parallel()
	client := newTestClient(t)
	_, span := client.StartSpan(context.Background(), "attrs-op")
	defer span.End()

	assert.NotPanics(t, func() {
		span.SetAttributes(map[string]interface{}{})
	})
}

func TestRecordError(t *testing.T) {
	t.Parallel()
	client := newTestClient(t)
	_, span := client.StartSpan(context.Background(), "err-op")
	defer span.End()

	assert.NotPanics(t, func() {
		span.RecordError(errors.New("something went wrong"))
	})
}

func TestTraceID_EmptyContext(t *testing.T) {
	t.Parallel()
	assert.Empty(t, TraceID(context.Background()))
	assert.Empty(t, SpanID(context.Background()))
}

func TestTraceID_ActiveSpan(t *testing.T) {
	t.Parallel()
	client := newTestClient(t)

	ctx, span := client.StartSpan(context.Background(), "id-op")
	defer span.End()

	assert.Len(t, TraceID(ctx), 32)
	assert.Len(t, SpanID(ctx), 16)
}

func TestTraceID_UnsampledSpanStillHasIdentifiers(t *testing.T) {
	t.Parallel()

	traceID, err := oteltrace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	require.NoError(t, err)
	spanID, err := oteltrace.SpanIDFromHex("00f067aa0ba902b7")
	require.NoError(t, err)

	// Not sampled: TraceFlags zero.
	spanCtx := oteltrace.NewSpanContext(oteltrace.SpanContextConfig{
		TraceID: traceID,
		SpanID:  spanID,
	})
	ctx := oteltrace.ContextWithSpanContext(context.Background(), spanCtx)

	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", TraceID(ctx))
	assert.Equal(t, "00f067aa0ba902b7", SpanID(ctx))
}

func TestTracerInterface_Implemented(t *testing.T) {
	t.Parallel()
	var tr Tracer = newTestClient(t)

	ctx, span := tr.StartSpan(context.Background(), "iface-op")
	defer span.End()

	assert.Equal(t, TraceID(ctx), tr.TraceID(ctx))
	assert.Equal(t, SpanID(ctx), tr.SpanID(ctx))
}
