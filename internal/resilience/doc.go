// Package resilience groups fault tolerance helpers for the article service.
//
// The circuitbreaker subpackage wraps the article store so that, while the
// database keeps failing, requests fail fast instead of queueing on a dead
// connection pool. Calls are never retried.
//
// Usage Example:
//
//	store := circuitbreaker.NewRepository(pgRepo, circuitbreaker.StoreConfig())
//	svc := &article.Service{Repo: store}
package resilience
