package tracer

import "time"

// Environment identifies the deployment environment the service runs in.
// The value drives the sampling strategy: local environments sample every
// span so developers see complete traces, while any other environment uses
// ratio-based sampling to keep export overhead acceptable.
type Environment string

// Well-known environment values. Any other string is treated as a
// non-local environment and sampled by ratio.
const (
	// EnvironmentLocal marks a developer machine. Every span is sampled.
	EnvironmentLocal Environment = "local"

	// EnvironmentDevelopment marks a shared development deployment.
	EnvironmentDevelopment Environment = "development"

	// EnvironmentStaging marks a pre-production deployment.
	EnvironmentStaging Environment = "staging"

	// EnvironmentProduction marks a production deployment.
	EnvironmentProduction Environment = "production"
)

// IsLocal reports whether the environment is a developer machine.
func (e Environment) IsLocal() bool {
	return e == EnvironmentLocal
}

// DefaultSampleRatio is the trace sampling ratio applied in non-local
// environments when Config.SampleRatio is left unset.
const DefaultSampleRatio = 0.1

// Config defines the configuration for the tracer provider.
// It is a fully-populated value handed in by the host application's
// configuration layer; this package performs no env or file parsing.
type Config struct {
	// ServiceName specifies the name of the service emitting spans.
	// It becomes the service.name resource attribute on every span and
	// should be a stable, descriptive identifier such as "user-service"
	// or "payment-processor".
	ServiceName string

	// ServiceNamespace groups related services under one namespace.
	// It becomes the service.namespace resource attribute.
	ServiceNamespace string

	// AppEnv indicates the deployment environment where the service is
	// running. It becomes the environment resource attribute and selects
	// the sampling strategy: EnvironmentLocal samples everything, any
	// other value samples by SampleRatio.
	AppEnv Environment

	// EnableTraces controls whether spans are exported at all. When
	// false the provider is installed with a no-op pipeline regardless
	// of which exporter capabilities were compiled in. Tracing remains
	// functional for context propagation; spans are simply never sent
	// anywhere.
	EnableTraces bool

	// Exporter names the exporter kind the configuration asks for.
	// Requesting a kind that was not compiled into the binary is a
	// configuration/build mismatch and surfaces as ErrInvalidFeatures.
	// The zero value requests ExporterStdout.
	Exporter ExporterKind

	// ExporterEndpoint is the OTLP collector endpoint, for example
	// "collector:4317". Required when Exporter is ExporterOtlpGrpc.
	ExporterEndpoint string

	// ExportTimeout bounds each export call made by the OTLP exporter.
	// It is forwarded unchanged to the exporter transport. Zero means
	// the exporter default; a negative value is ErrConversion.
	ExportTimeout time.Duration

	// SampleRatio is the fraction of traces sampled in non-local
	// environments, in [0, 1]. Zero means DefaultSampleRatio. Values
	// outside the range are ErrConversion.
	SampleRatio float64

	// AccessKey is an optional credential sent with every OTLP export
	// request, for collectors behind an authenticating gateway.
	AccessKey string

	// AccessKeyHeader is the metadata header name the AccessKey is sent
	// under. Defaults to "api-key" when AccessKey is set and this is
	// empty.
	AccessKeyHeader string
}

// defaultAccessKeyHeader is used when AccessKey is set without a header name.
const defaultAccessKeyHeader = "api-key"

// Validate checks the configuration values that must be convertible into
// an exporter or sampler descriptor. It returns ErrConversion when
// SampleRatio is outside [0, 1] or ExportTimeout is negative.
func (c Config) Validate() error {
	if c.SampleRatio < 0 || c.SampleRatio > 1 {
		return wrapErr(ErrConversion, "sample ratio %v is outside [0, 1]", c.SampleRatio)
	}
	if c.ExportTimeout < 0 {
		return wrapErr(ErrConversion, "export timeout %v is negative", c.ExportTimeout)
	}
	return nil
}

// sampleRatio returns the configured ratio, falling back to the default
// when unset.
func (c Config) sampleRatio() float64 {
	if c.SampleRatio == 0 {
		return DefaultSampleRatio
	}
	return c.SampleRatio
}

// accessKeyHeader returns the header name the access key travels under.
func (c Config) accessKeyHeader() string {
	if c.AccessKeyHeader == "" {
		return defaultAccessKeyHeader
	}
	return c.AccessKeyHeader
}
