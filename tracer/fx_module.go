package tracer

import (
	"context"
	"log"

	"go.uber.org/fx"
)

// FXModule provides a Uber FX module that configures distributed tracing
// for your application. It registers the tracer client with the
// dependency injection system and sets up lifecycle management so the
// provider is flushed and shut down when the application stops.
//
// The module provides:
//  1. *TracerClient (concrete type) for direct use
//  2. Tracer interface for dependency injection
//  3. A shutdown hook that flushes buffered spans on stop
//
// The host supplies the Config and CapabilitySet:
//
//	app := fx.New(
//	    tracer.FXModule,
//	    fx.Provide(
//	        func() tracer.Config { return cfg },
//	        tracer.DefaultCapabilities,
//	    ),
//	)
//	app.Run()
var FXModule = fx.Module("tracer",
	fx.Provide(
		NewClient, // Provides *TracerClient
		// Also provide the Tracer interface
		fx.Annotate(
			func(t *TracerClient) Tracer { return t },
			fx.As(new(Tracer)),
		),
	),
	fx.Invoke(RegisterTracerLifecycle),
)

// RegisterTracerLifecycle registers a shutdown hook for the tracer with
// the FX lifecycle. Shutting the provider down flushes buffered spans to
// the exporter; skipping it may drop the final batch.
//
// This function is invoked by FXModule and normally does not need to be
// called directly.
func RegisterTracerLifecycle(lc fx.Lifecycle, tracer *TracerClient) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Println("INFO: shutting down tracer...")
			if tracer.provider == nil {
				log.Println("INFO: tracer provider is nil, skipping shutdown")
				return nil
			}
			return tracer.Shutdown(ctx)
		},
	})
}
