//go:build !traces_no_stdout

package tracer

import (
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const capStdoutCompiled = true

// newStdoutExporter builds the console span exporter used in development.
func newStdoutExporter() (sdktrace.SpanExporter, error) {
	exporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, wrapErr(ErrExporterProvider, "stdout exporter: %v", err)
	}
	return exporter, nil
}
