// Package observability groups the logging, metrics and tracing packages
// used by the HTTP layer, the use case and the stores.
//
// Subpackages:
//   - logging: slog construction and request scoped loggers
//   - metrics: Prometheus collectors and recorders
//   - tracing: OpenTelemetry provider and HTTP middleware
package observability
