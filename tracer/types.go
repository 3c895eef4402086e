package tracer

import "time"

// ExporterKind enumerates the span exporter backends this package can
// install. Exactly one kind is chosen per process.
type ExporterKind string

const (
	// ExporterStdout writes finished spans to standard output. Intended
	// for development; spans are exported synchronously.
	ExporterStdout ExporterKind = "stdout"

	// ExporterOtlpGrpc sends finished spans to an OTLP collector over
	// gRPC. Intended for production; spans are batched and exported on a
	// background goroutine owned by the SDK.
	ExporterOtlpGrpc ExporterKind = "otlp_grpc"

	// ExporterNoOp installs a provider that never exports. Used when
	// tracing is disabled or no exporter capability is compiled in.
	ExporterNoOp ExporterKind = "noop"
)

// Capability identifies an exporter backend compiled into the binary.
type Capability uint8

const (
	// CapabilityOtlp means the OTLP gRPC exporter is available.
	CapabilityOtlp Capability = 1 << iota

	// CapabilityStdout means the stdout exporter is available.
	CapabilityStdout
)

// CapabilitySet is the set of exporter backends compiled into the binary.
// It is fixed at build time and passed into SelectExporter as a plain
// value so selection stays a pure function. Use DefaultCapabilities for
// the set the binary was actually built with.
type CapabilitySet uint8

// Has reports whether the set contains the given capability.
func (s CapabilitySet) Has(c Capability) bool {
	return s&CapabilitySet(c) != 0
}

// With returns a copy of the set with the given capability added.
func (s CapabilitySet) With(c Capability) CapabilitySet {
	return s | CapabilitySet(c)
}

// ExporterDescriptor describes the exporter pipeline chosen for this
// process. Endpoint, Timeout and Headers are only meaningful for
// ExporterOtlpGrpc.
type ExporterDescriptor struct {
	Kind     ExporterKind
	Endpoint string
	Timeout  time.Duration
	Headers  map[string]string
}

// SamplerKind enumerates the supported sampling strategies.
type SamplerKind string

const (
	// SamplerAlwaysOn samples every span. Used in local environments.
	SamplerAlwaysOn SamplerKind = "always_on"

	// SamplerRatioBased samples a fraction of traces by trace ID,
	// respecting the parent's sampling decision for child spans.
	SamplerRatioBased SamplerKind = "ratio_based"
)

// SamplingDescriptor describes the sampling strategy chosen for this
// process. Ratio is only meaningful for SamplerRatioBased.
type SamplingDescriptor struct {
	Kind  SamplerKind
	Ratio float64
}
