// Package tracing wraps fetch functions in OpenTelemetry spans. It is
// entirely optional — with no tracer provider configured the global no-op
// provider makes the wrapper free.
package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/futurity-ai/fastcache"
)

// Config holds the OpenTelemetry configuration used by [Fetch].
type Config struct {
	// TracerProvider supplies the Tracer used to create spans. When nil
	// the global otel.GetTracerProvider() is used.
	TracerProvider trace.TracerProvider
}

// tracer returns a configured [trace.Tracer].
func (c *Config) tracer() trace.Tracer {
	tp := c.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	return tp.Tracer("github.com/futurity-ai/fastcache/tracing")
}

// Fetch wraps fetch so every invocation runs inside a span named
// "fastcache.fetch" carrying the category and identifier. Combined with
// fastcache.NewFetcher a span is only created when the cache actually
// misses, since the wrapped function is never called on a hit. A nil cfg
// uses the global tracer provider.
func Fetch[T any](cfg *Config, category, identifier string, fetch fastcache.FetchFunc[T]) fastcache.FetchFunc[T] {
	var c Config
	if cfg != nil {
		c = *cfg
	}
	return func(ctx context.Context) (T, error) {
		ctx, span := c.tracer().Start(ctx, "fastcache.fetch", trace.WithSpanKind(trace.SpanKindClient))
		defer span.End()
		span.SetAttributes(
			attribute.String("cache.category", category),
			attribute.String("cache.identifier", identifier),
		)

		v, err := fetch(ctx)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return v, err
		}
		span.SetStatus(codes.Ok, "")
		return v, nil
	}
}
