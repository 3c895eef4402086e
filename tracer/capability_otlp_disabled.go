//go:build traces_no_otlp

package tracer

import (
	"context"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const capOtlpCompiled = false

func newOtlpExporter(_ context.Context, _ ExporterDescriptor) (sdktrace.SpanExporter, error) {
	return nil, wrapErr(ErrInvalidFeatures, "binary was built with traces_no_otlp")
}
