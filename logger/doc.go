// Package logger provides structured logging with trace correlation.
//
// The package wraps Uber's Zap logger behind a small interface and, when
// tracing is enabled, stamps log entries with the trace_id and span_id
// carried by the request context. Correlation uses the tracer package's
// identifier helpers, which work for unsampled spans too, so log entries
// can always be joined with their trace.
//
// # Basic usage
//
//	log := logger.NewLoggerClient(logger.Config{
//	    Level:         logger.Info,
//	    ServiceName:   "user-service",
//	    EnableTracing: true,
//	})
//
//	log.Info("application started", nil)
//	log.InfoWithContext(ctx, "request handled", nil, map[string]interface{}{
//	    "user.id": "123",
//	})
//
// # FX module integration
//
//	app := fx.New(
//	    logger.FXModule,
//	    fx.Provide(func() logger.Config { return cfg }),
//	)
//	app.Run()
package logger
