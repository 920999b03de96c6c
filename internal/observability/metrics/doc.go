// Package metrics provides Prometheus metrics registry and recording utilities.
//
// This package centralizes all application metrics including:
//   - HTTP request metrics (duration, count, size, in-flight, rate limited)
//   - Business metrics (article count, operations by result)
//   - Database query and circuit breaker metrics
//
// All metrics are automatically registered with the Prometheus default registry
// and exposed via the /metrics endpoint.
//
// Example usage:
//
//	import "article-api/internal/observability/metrics"
//
//	func create(ctx context.Context) error {
//	    start := time.Now()
//	    // ... insert ...
//	    metrics.RecordOperationDuration("insert_article", time.Since(start))
//	    metrics.RecordArticleOperation("create", metrics.ResultSuccess)
//	    return nil
//	}
package metrics
