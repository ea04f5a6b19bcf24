// Package o11y provides observability primitives for promptcmd: structured
// logging via slog and a thin OpenTelemetry tracer wrapper. The CLI traces
// the resolve step (span "resolver.resolve"); load balancing and building
// are not traced.
//
// # Logging
//
// [Logger] wraps slog.Logger with context-aware convenience methods and
// functional options for configuration:
//
//	logger := o11y.NewLogger(
//	    o11y.WithLogLevel("debug"),
//	    o11y.WithJSON(),
//	)
//	logger.Debug(ctx, "resolved field",
//	    "field", "temperature",
//	    "source", "Dotprompt(summarize)",
//	)
//
// Loggers propagate through context via [WithLogger] and [FromContext].
//
// # Tracing
//
// [InitTracer] configures a process-wide OTel tracer provider that writes
// spans to stdout (suitable for a short-lived CLI invocation; there is no
// long-running collector to push to). [StartSpan] starts a span for one
// resolver/load-balancer/builder step:
//
//	shutdown, err := o11y.InitTracer("promptcmd")
//	defer shutdown(ctx)
//
//	ctx, end := o11y.StartSpan(ctx, "resolver.resolve")
//	defer end(nil)
package o11y
