package tracer

// DefaultCapabilities returns the exporter capability set compiled into
// this binary. Individual backends can be compiled out with the
// "traces_no_otlp" and "traces_no_stdout" build tags, which drops their
// exporter dependencies from the final binary.
//
// The returned set is fixed at build time; callers pass it into
// SelectExporter or NewClient unchanged.
func DefaultCapabilities() CapabilitySet {
	var caps CapabilitySet
	if capOtlpCompiled {
		caps = caps.With(CapabilityOtlp)
	}
	if capStdoutCompiled {
		caps = caps.With(CapabilityStdout)
	}
	return caps
}
