package logger

// Log level constants that define the available logging levels.
// These string constants are used in configuration to set the desired log level.
const (
	// Debug represents the most verbose logging level, intended for development
	// and troubleshooting. All log messages are output.
	Debug = "debug"

	// Info represents the standard logging level for general operational
	// information. Debug messages are suppressed.
	Info = "info"

	// Warning represents the logging level for potential issues that aren't errors.
	Warning = "warning"

	// Error represents the logging level for error conditions only.
	Error = "error"
)

// Config defines the configuration structure for the logger.
type Config struct {
	// Level determines the minimum log level that will be output.
	// Valid values are "debug", "info", "warning" and "error"; anything
	// else falls back to "info".
	Level string

	// ServiceName is attached to every log entry as the "service" field.
	ServiceName string

	// CallerSkip controls how many call frames are skipped when resolving
	// the caller annotation. The default of 1 is correct for direct use;
	// set 2 when this logger is wrapped by another logging facade.
	CallerSkip int

	// EnableTracing turns on trace correlation: the context-aware logging
	// methods will attach trace_id and span_id fields extracted from the
	// context, linking log entries to the distributed trace they belong
	// to. Correlation works for unsampled spans too.
	EnableTracing bool
}
