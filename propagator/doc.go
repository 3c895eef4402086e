// Package propagator carries trace context across gRPC call boundaries.
//
// The package adapts gRPC call metadata (a case-insensitive, multi-valued
// string map) to the OpenTelemetry text-map carrier contract, and exposes
// a symmetric Inject/Extract pair built on the globally installed
// propagator: Inject writes the W3C trace-context headers of the current
// span into outgoing metadata, Extract reconstructs the parent context
// from incoming metadata and opens the server-side span under it.
//
// Both operations are best-effort by contract:
//   - Inject is a silent no-op when the context carries no active span;
//     propagation is instrumentation, not a correctness requirement of
//     the request path.
//   - Extract never fails. Missing or malformed headers degrade to a
//     fresh trace root, so one misbehaving upstream caller cannot break
//     downstream request handling.
//
// # Usage
//
// On an outgoing call:
//
//	md := metadata.MD{}
//	propagator.Inject(ctx, md)
//	ctx = metadata.NewOutgoingContext(ctx, md)
//
// On an incoming call:
//
//	md, _ := metadata.FromIncomingContext(ctx)
//	ctx, span := propagator.Extract(ctx, md, tracer)
//	defer span.End()
//
// Or wire both ends at once with the unary interceptors:
//
//	conn, err := grpc.NewClient(target,
//	    grpc.WithUnaryInterceptor(propagator.UnaryClientInterceptor()))
//
//	srv := grpc.NewServer(
//	    grpc.UnaryInterceptor(propagator.UnaryServerInterceptor(tracer)))
//
// The carrier works against any transport exposing a multi-valued string
// map; gRPC metadata is the concrete instance this package ships.
package propagator
