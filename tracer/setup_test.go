package tracer

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient_TracingDisabled(t *testing.T) {
	t.Parallel()
	cfg := Config{
		ServiceName:  "test-service",
		AppEnv:       EnvironmentLocal,
		EnableTraces: false,
	}

	client, err := NewClient(cfg, DefaultCapabilities())

	require.NoError(t, err)
	assert.NotNil(t, client)
	assert.Equal(t, ExporterNoOp, client.Exporter().Kind)
}

func TestNewClient_LocalStdoutScenario(t *testing.T) {
	t.Parallel()
	cfg := Config{
		ServiceName:  "test-service",
		AppEnv:       EnvironmentLocal,
		EnableTraces: true,
		Exporter:     ExporterStdout,
	}

	client, err := NewClient(cfg, CapabilitySet(0).With(CapabilityStdout))

	require.NoError(t, err)
	assert.Equal(t, ExporterStdout, client.Exporter().Kind)
	assert.Equal(t, SamplerAlwaysOn, client.Sampler().Kind)
}

func TestNewClient_ProductionOtlpScenario(t *testing.T) {
	t.Parallel()
	cfg := Config{
		ServiceName:      "test-service",
		ServiceNamespace: "test",
		AppEnv:           EnvironmentProduction,
		EnableTraces:     true,
		Exporter:         ExporterOtlpGrpc,
		ExporterEndpoint: "https://collector:4317",
		SampleRatio:      0.1,
	}

	// The OTLP gRPC exporter connects lazily, so construction succeeds
	// without a reachable collector.
	client, err := NewClient(cfg, CapabilitySet(0).With(CapabilityOtlp))

	require.NoError(t, err)
	assert.Equal(t, ExporterOtlpGrpc, client.Exporter().Kind)
	assert.Equal(t, "https://collector:4317", client.Exporter().Endpoint)
	assert.Equal(t, SamplerRatioBased, client.Sampler().Kind)
	assert.Equal(t, 0.1, client.Sampler().Ratio)

	// Shutdown flushes into the void; only the spans buffered so far can
	// be lost, and there are none.
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	_ = client.Shutdown(ctx)
}

func TestNewClient_OtlpRequestedWithoutCapability(t *testing.T) {
	t.Parallel()
	cfg := Config{
		ServiceName:      "test-service",
		AppEnv:           EnvironmentProduction,
		EnableTraces:     true,
		Exporter:         ExporterOtlpGrpc,
		ExporterEndpoint: "collector:4317",
	}

	client, err := NewClient(cfg, CapabilitySet(0))

	assert.Nil(t, client)
	assert.ErrorIs(t, err, ErrInvalidFeatures)
}

func TestNewClient_InvalidSampleRatio(t *testing.T) {
	t.Parallel()
	cfg := Config{
		ServiceName:  "test-service",
		AppEnv:       EnvironmentProduction,
		EnableTraces: true,
		SampleRatio:  1.5,
	}

	client, err := NewClient(cfg, DefaultCapabilities())

	assert.Nil(t, client)
	assert.ErrorIs(t, err, ErrConversion)
}

func TestNewClient_EmptyServiceName(t *testing.T) {
	t.Parallel()
	cfg := Config{
		ServiceName:  "",
		AppEnv:       EnvironmentLocal,
		EnableTraces: false,
	}

	client, err := NewClient(cfg, DefaultCapabilities())

	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestNewClient_SecondInstallReplacesProvider(t *testing.T) {
	t.Parallel()
	cfg := Config{ServiceName: "test-service", AppEnv: EnvironmentLocal, EnableTraces: false}

	first, err := NewClient(cfg, DefaultCapabilities())
	require.NoError(t, err)

	// Last writer wins; the second install succeeds and logs a warning.
	second, err := NewClient(cfg, DefaultCapabilities())
	require.NoError(t, err)

	assert.NotSame(t, first, second)
}

func TestShutdown_FlushesWithoutError(t *testing.T) {
	t.Parallel()
	client, err := NewClient(Config{ServiceName: "test-service", AppEnv: EnvironmentLocal, EnableTraces: false}, DefaultCapabilities())
	require.NoError(t, err)

	_, span := client.StartSpan(context.Background(), "pending-op")
	span.End()

	assert.NoError(t, client.ForceFlush(context.Background()))
	assert.NoError(t, client.Shutdown(context.Background()))
}
