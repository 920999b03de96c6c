package metrics

import (
	"testing"
	"time"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, op, result string) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, ArticleOperationsTotal.WithLabelValues(op, result).Write(&m))
	return m.GetCounter().GetValue()
}

func gaugeValue(t *testing.T) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, ArticlesTotal.Write(&m))
	return m.GetGauge().GetValue()
}

func TestRecordArticleOperation(t *testing.T) {
	tests := []struct {
		name   string
		op     string
		result string
	}{
		{name: "create success", op: "create", result: ResultSuccess},
		{name: "get not found", op: "get", result: ResultNotFound},
		{name: "update invalid", op: "update", result: ResultInvalid},
		{name: "delete error", op: "delete", result: ResultError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := counterValue(t, tt.op, tt.result)
			RecordArticleOperation(tt.op, tt.result)
			assert.Equal(t, before+1, counterValue(t, tt.op, tt.result))
		})
	}
}

func TestArticlesTotalGauge(t *testing.T) {
	UpdateArticlesTotal(5)
	assert.Equal(t, float64(5), gaugeValue(t))

	IncArticlesTotal()
	assert.Equal(t, float64(6), gaugeValue(t))

	DecArticlesTotal()
	DecArticlesTotal()
	assert.Equal(t, float64(4), gaugeValue(t))
}

func TestSetCircuitBreakerState(t *testing.T) {
	SetCircuitBreakerState("test-breaker", 2)

	var m dto.Metric
	require.NoError(t, CircuitBreakerState.WithLabelValues("test-breaker").Write(&m))
	assert.Equal(t, float64(2), m.GetGauge().GetValue())
}

func TestRecordHTTPRequest(t *testing.T) {
	before := func() float64 {
		var m dto.Metric
		require.NoError(t, HTTPRequestsTotal.WithLabelValues("GET", "/articles", "200").Write(&m))
		return m.GetCounter().GetValue()
	}()

	assert.NotPanics(t, func() {
		RecordHTTPRequest("GET", "/articles", "200", 15*time.Millisecond, 0, 128)
	})

	var m dto.Metric
	require.NoError(t, HTTPRequestsTotal.WithLabelValues("GET", "/articles", "200").Write(&m))
	assert.Equal(t, before+1, m.GetCounter().GetValue())
}

func TestRecordOperationDuration(t *testing.T) {
	assert.NotPanics(t, func() {
		RecordOperationDuration("select_articles", 3*time.Millisecond)
	})
}
