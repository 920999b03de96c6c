package metrics

// RecordArticleOperation counts a finished use case call.
// Result should be one of the Result* constants.
func RecordArticleOperation(operation, result string) {
	ArticleOperationsTotal.WithLabelValues(operation, result).Inc()
}

// UpdateArticlesTotal sets the article gauge from a full listing.
func UpdateArticlesTotal(count int) {
	ArticlesTotal.Set(float64(count))
}

// IncArticlesTotal adjusts the article gauge after a create.
func IncArticlesTotal() {
	ArticlesTotal.Inc()
}

// DecArticlesTotal adjusts the article gauge after a delete.
func DecArticlesTotal() {
	ArticlesTotal.Dec()
}

// SetCircuitBreakerState publishes a breaker state using gobreaker's numbering.
func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}
