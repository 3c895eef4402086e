package tracer

import (
	"errors"
	"fmt"
)

// Tracer setup error taxonomy. All of these surface synchronously from
// NewClient; none are retried internally. The caller decides whether to
// abort startup or continue without tracing.
var (
	// ErrInternal is returned when an unexpected invariant violation
	// occurs, such as the SDK returning an unrepresentable state.
	ErrInternal = errors.New("internal error")

	// ErrInvalidFeatures is returned when the configuration requests an
	// exporter kind that was not compiled into the binary. This is a
	// configuration/build mismatch and is not recoverable at runtime.
	ErrInvalidFeatures = errors.New("this exporter requires specific capabilities")

	// ErrConversion is returned when a configuration value cannot be
	// converted into its descriptor field, such as a sample ratio outside
	// [0, 1] or a negative export timeout.
	ErrConversion = errors.New("conversion error")

	// ErrExporterProvider is returned when the chosen exporter pipeline
	// could not be constructed, such as a transport setup failure.
	ErrExporterProvider = errors.New("failure to create the exporter provider")
)

// wrapErr attaches a formatted detail message to one of the sentinel
// errors above, keeping it matchable with errors.Is.
func wrapErr(sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...))
}
