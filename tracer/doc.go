// Package tracer bootstraps distributed tracing with OpenTelemetry.
//
// The package decides, from configuration and the exporter capabilities
// compiled into the binary, which exporter pipeline and sampling
// strategy to install, builds the tracer provider, and registers it as
// the process-wide default. It then offers a simplified surface for
// creating spans and reading trace/span identifiers for log correlation.
//
// # Architecture
//
// The package follows the "accept interfaces, return structs" Go idiom:
//   - Tracer interface: defines the contract for tracing operations
//   - TracerClient struct: concrete implementation, owns the provider
//   - Span interface: defines the contract for span operations
//   - SelectExporter / SelectSampler: pure selection functions mapping
//     (capabilities, configuration) to descriptors
//
// Selection precedence, descriptors and the error taxonomy are
// documented on SelectExporter, SelectSampler and the Err* variables.
//
// # Basic usage
//
//	client, err := tracer.NewClient(tracer.Config{
//	    ServiceName:      "user-service",
//	    ServiceNamespace: "identity",
//	    AppEnv:           tracer.EnvironmentLocal,
//	    EnableTraces:     true,
//	}, tracer.DefaultCapabilities())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Shutdown(context.Background())
//
//	ctx, span := client.StartSpan(ctx, "process-request")
//	defer span.End()
//
//	span.SetAttributes(map[string]interface{}{
//	    "user.id": "123",
//	})
//
// # Capability flags
//
// Exporter backends are compiled in by default and can be removed with
// build tags, mirroring how the binary is trimmed for constrained
// deployments:
//
//	go build -tags traces_no_otlp     # drop the OTLP gRPC exporter
//	go build -tags traces_no_stdout   # drop the stdout exporter
//
// DefaultCapabilities reflects the tags the binary was built with.
// Selection stays a pure function over the capability set, so tests can
// exercise every combination without rebuilding.
//
// # Lifecycle
//
// NewClient installs the provider exactly once at startup. Installing a
// second provider in the same process replaces the first and logs a
// warning; avoid relying on this outside of tests. The host must call
// Shutdown before exit so buffered spans reach the exporter.
//
// # FX module integration
//
//	app := fx.New(
//	    tracer.FXModule,
//	    fx.Provide(
//	        func() tracer.Config { return cfg },
//	        tracer.DefaultCapabilities,
//	    ),
//	    fx.Invoke(func(t tracer.Tracer) {
//	        ctx, span := t.StartSpan(context.Background(), "app-startup")
//	        defer span.End()
//	    }),
//	)
//	app.Run()
//
// # Log correlation
//
// tracer.TraceID and tracer.SpanID return the hex identifiers carried by
// a context even when the span is unsampled or tracing is disabled, so
// log correlation never breaks based on sampling decisions.
//
// # Thread safety
//
// All methods on TracerClient and Span are safe for concurrent use by
// multiple goroutines.
package tracer
