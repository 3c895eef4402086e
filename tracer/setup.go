package tracer

import (
	"context"
	"log"
	"sync/atomic"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
)

// Per-span limits applied to every installed provider, keeping export
// payload sizes bounded.
const (
	maxEventsPerSpan     = 64
	maxAttributesPerSpan = 16
)

// installed tracks whether a provider has already been registered as the
// process-wide default. Installation is expected to happen exactly once
// at startup; a second install replaces the global provider
// (last-writer-wins) and logs a warning.
var installed atomic.Bool

// TracerClient owns the installed tracer provider and its exporter
// pipeline. It is the handle the host keeps for the life of the process
// and must be shut down (or at least flushed) before exit, otherwise the
// final batch of buffered spans may be dropped.
//
// TracerClient is safe for concurrent use; creating spans requires no
// external locking. It implements the Tracer interface.
type TracerClient struct {
	provider *sdktrace.TracerProvider
	exporter ExporterDescriptor
	sampler  SamplingDescriptor
}

// NewClient validates the configuration, resolves the exporter and
// sampler descriptors, builds the corresponding pipeline, and installs
// the resulting provider as the process-wide default together with a
// W3C TraceContext + Baggage composite propagator.
//
// Pipeline construction per descriptor:
//   - ExporterOtlpGrpc: batched, asynchronous export over gRPC.
//     NewClient may block briefly while the transport channel is set up.
//   - ExporterStdout: synchronous export to standard output.
//   - ExporterNoOp: no processor at all; spans are created but never
//     exported, so context propagation keeps working when tracing is off.
//
// Errors are ErrConversion (invalid configuration value),
// ErrInvalidFeatures (requested exporter not compiled in, propagated
// from SelectExporter) or ErrExporterProvider (pipeline construction
// failed). None are retried here; the caller decides whether to abort
// startup or continue without tracing.
//
// Example:
//
//	client, err := tracer.NewClient(tracer.Config{
//	    ServiceName:      "user-service",
//	    ServiceNamespace: "identity",
//	    AppEnv:           tracer.EnvironmentProduction,
//	    EnableTraces:     true,
//	    Exporter:         tracer.ExporterOtlpGrpc,
//	    ExporterEndpoint: "collector:4317",
//	    SampleRatio:      0.1,
//	}, tracer.DefaultCapabilities())
func NewClient(cfg Config, caps CapabilitySet) (*TracerClient, error) {
	return newClientWithContext(context.Background(), cfg, caps)
}

// newClientWithContext is the context-taking variant of NewClient, used
// by tests to bound exporter construction.
func newClientWithContext(ctx context.Context, cfg Config, caps CapabilitySet) (*TracerClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	exporterDesc, err := SelectExporter(caps, cfg)
	if err != nil {
		return nil, err
	}
	samplerDesc := SelectSampler(cfg)

	limits := sdktrace.NewSpanLimits()
	limits.EventCountLimit = maxEventsPerSpan
	limits.AttributeCountLimit = maxAttributesPerSpan

	options := []sdktrace.TracerProviderOption{
		sdktrace.WithSampler(buildSampler(samplerDesc)),
		sdktrace.WithResource(buildResource(cfg)),
		sdktrace.WithRawSpanLimits(limits),
	}

	switch exporterDesc.Kind {
	case ExporterOtlpGrpc:
		exporter, err := newOtlpExporter(ctx, exporterDesc)
		if err != nil {
			return nil, err
		}
		options = append(options, sdktrace.WithBatcher(exporter))
	case ExporterStdout:
		exporter, err := newStdoutExporter()
		if err != nil {
			return nil, err
		}
		options = append(options, sdktrace.WithSyncer(exporter))
	case ExporterNoOp:
		// No processor: spans are created and sampled but never leave
		// the process.
	}

	tp := sdktrace.NewTracerProvider(options...)

	if installed.Swap(true) {
		log.Println("WARN: tracer provider already installed, replacing the global provider")
	}
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return &TracerClient{
		provider: tp,
		exporter: exporterDesc,
		sampler:  samplerDesc,
	}, nil
}

// buildResource assembles the immutable resource attributes attached to
// every span emitted by the installed provider.
func buildResource(cfg Config) *resource.Resource {
	return resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceName),
		semconv.ServiceNamespace(cfg.ServiceNamespace),
		attribute.String("environment", string(cfg.AppEnv)),
		attribute.String("library.language", "go"),
	)
}

// buildSampler converts a sampling descriptor into the SDK sampler.
// Ratio-based sampling is parent-based so child spans follow the
// decision made at the trace root.
func buildSampler(desc SamplingDescriptor) sdktrace.Sampler {
	if desc.Kind == SamplerAlwaysOn {
		return sdktrace.AlwaysSample()
	}
	return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(desc.Ratio))
}

// Exporter returns the exporter descriptor the provider was built with.
func (t *TracerClient) Exporter() ExporterDescriptor {
	return t.exporter
}

// Sampler returns the sampling descriptor the provider was built with.
func (t *TracerClient) Sampler() SamplingDescriptor {
	return t.sampler
}

// ForceFlush exports all spans buffered by the pipeline without shutting
// it down. Use it at checkpoints where losing buffered spans would be
// costly, such as before a risky operation in short-lived processes.
func (t *TracerClient) ForceFlush(ctx context.Context) error {
	if t.provider == nil {
		return nil
	}
	return t.provider.ForceFlush(ctx)
}

// Shutdown flushes buffered spans and releases the exporter pipeline.
// The host must call it before process exit; skipping it may silently
// drop the final batch. The client must not be used afterwards.
func (t *TracerClient) Shutdown(ctx context.Context) error {
	if t.provider == nil {
		return nil
	}
	return t.provider.Shutdown(ctx)
}
