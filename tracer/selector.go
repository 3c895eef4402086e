package tracer

// SelectSampler resolves the sampling strategy for the process from the
// configuration. Local environments always sample so development sees
// full traces; every other environment samples a fraction of traces by
// trace ID, defaulting to DefaultSampleRatio when the ratio is unset.
//
// SelectSampler is a pure function with no error path; Config.Validate
// has already rejected out-of-range ratios by the time it runs.
func SelectSampler(cfg Config) SamplingDescriptor {
	if cfg.AppEnv.IsLocal() {
		return SamplingDescriptor{Kind: SamplerAlwaysOn}
	}
	return SamplingDescriptor{Kind: SamplerRatioBased, Ratio: cfg.sampleRatio()}
}

// SelectExporter resolves the exporter pipeline for the process from the
// compiled capability set and the configuration. The precedence is
// deterministic:
//
//  1. EnableTraces false always wins and yields ExporterNoOp, so tracing
//     can be disabled without touching build flags.
//  2. The OTLP gRPC exporter is chosen when it was requested, compiled
//     in, and an endpoint is configured.
//  3. The stdout exporter is chosen when it is compiled in.
//  4. Otherwise ExporterNoOp.
//
// Requesting an exporter kind that is not in the capability set is a
// configuration/build mismatch and returns ErrInvalidFeatures instead of
// silently falling back.
func SelectExporter(caps CapabilitySet, cfg Config) (ExporterDescriptor, error) {
	if !cfg.EnableTraces {
		return ExporterDescriptor{Kind: ExporterNoOp}, nil
	}

	switch cfg.Exporter {
	case ExporterOtlpGrpc:
		if !caps.Has(CapabilityOtlp) {
			return ExporterDescriptor{}, wrapErr(ErrInvalidFeatures, "otlp exporter requested but not compiled in")
		}
	case ExporterStdout, "":
		if !caps.Has(CapabilityStdout) {
			return ExporterDescriptor{}, wrapErr(ErrInvalidFeatures, "stdout exporter requested but not compiled in")
		}
	case ExporterNoOp:
		return ExporterDescriptor{Kind: ExporterNoOp}, nil
	default:
		return ExporterDescriptor{}, wrapErr(ErrConversion, "unknown exporter kind %q", cfg.Exporter)
	}

	if caps.Has(CapabilityOtlp) && cfg.Exporter == ExporterOtlpGrpc && cfg.ExporterEndpoint != "" {
		desc := ExporterDescriptor{
			Kind:     ExporterOtlpGrpc,
			Endpoint: cfg.ExporterEndpoint,
			Timeout:  cfg.ExportTimeout,
		}
		if cfg.AccessKey != "" {
			desc.Headers = map[string]string{cfg.accessKeyHeader(): cfg.AccessKey}
		}
		return desc, nil
	}

	if caps.Has(CapabilityStdout) {
		return ExporterDescriptor{Kind: ExporterStdout}, nil
	}

	return ExporterDescriptor{Kind: ExporterNoOp}, nil
}
