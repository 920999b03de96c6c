// Package tracing provides OpenTelemetry tracing integration.
//
// NewProvider installs an SDK tracer provider (stdout exporter when enabled)
// and the W3C propagators; Middleware opens one server span per HTTP request.
//
// Example usage:
//
//	p, err := tracing.NewProvider(ctx, tracing.Config{ServiceName: "article-api", SampleRatio: 1})
//	if err != nil { ... }
//	defer p.Shutdown(context.Background())
//
//	handler := tracing.Middleware(router)
package tracing
