package propagator

import (
	"go.opentelemetry.io/otel/propagation"
	"google.golang.org/grpc/metadata"
)

// MetadataCarrier adapts a gRPC metadata map to the OpenTelemetry
// TextMapCarrier contract so the installed propagator can read and write
// trace-context headers on it.
//
// The carrier is a view: it does not own the underlying map and only
// touches the well-known propagation keys. Key lookups are
// case-insensitive and Set overwrites any existing values for a key, so
// re-injecting into an already-injected map leaves exactly one value per
// propagation header.
type MetadataCarrier metadata.MD

var _ propagation.TextMapCarrier = MetadataCarrier{}

// Get returns the first value associated with the key, or the empty
// string when the key is absent.
func (c MetadataCarrier) Get(key string) string {
	values := metadata.MD(c).Get(key)
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

// Set replaces all values for the key with the given value.
func (c MetadataCarrier) Set(key, value string) {
	metadata.MD(c).Set(key, value)
}

// Keys lists the keys present in the metadata map.
func (c MetadataCarrier) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	return keys
}
