//go:build !traces_no_otlp

package tracer

import (
	"context"

	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const capOtlpCompiled = true

// newOtlpExporter builds the OTLP gRPC span exporter described by the
// descriptor. Construction failures map to ErrExporterProvider.
func newOtlpExporter(ctx context.Context, desc ExporterDescriptor) (sdktrace.SpanExporter, error) {
	opts := []otlptracegrpc.Option{
		otlptracegrpc.WithEndpoint(desc.Endpoint),
		otlptracegrpc.WithCompressor("gzip"),
	}
	if desc.Timeout > 0 {
		opts = append(opts, otlptracegrpc.WithTimeout(desc.Timeout))
	}
	if len(desc.Headers) > 0 {
		opts = append(opts, otlptracegrpc.WithHeaders(desc.Headers))
	}

	exporter, err := otlptracegrpc.New(ctx, opts...)
	if err != nil {
		return nil, wrapErr(ErrExporterProvider, "otlp grpc exporter: %v", err)
	}
	return exporter, nil
}
