package o11y

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

// InitTracer installs a process-wide TracerProvider that exports spans to
// stdout and registers it as the global OTel tracer. It returns a shutdown
// function the caller must invoke before the process exits so buffered
// spans are flushed.
func InitTracer(serviceName string) (shutdown func(context.Context) error, err error) {
	exp, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, err
	}

	res := resource.NewWithAttributes(semconv.SchemaURL,
		semconv.ServiceName(serviceName),
	)

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)

	return tp.Shutdown, nil
}

// StartSpan starts a span named op under the global tracer and returns the
// derived context plus a function to end the span, recording err (if any)
// as the span's status.
func StartSpan(ctx context.Context, op string) (context.Context, func(err error)) {
	ctx, span := otel.Tracer("promptcmd").Start(ctx, op)
	return ctx, func(err error) {
		if err != nil {
			span.RecordError(err)
		}
		span.End()
	}
}

// NoopTracerProvider returns the current global TracerProvider. Before
// InitTracer runs that is OTel's default provider, which discards all spans;
// after InitTracer it is the stdout-exporting provider InitTracer installed.
func NoopTracerProvider() trace.TracerProvider {
	return otel.GetTracerProvider()
}
