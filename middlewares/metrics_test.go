package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/okoth/wabus/metrics"
)

func TestMetricsMiddlewareRecordsRequests(t *testing.T) {
	handler := MetricsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	before := testutil.ToFloat64(metrics.HttpRequestsTotal.WithLabelValues("/health", "200", "GET"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	after := testutil.ToFloat64(metrics.HttpRequestsTotal.WithLabelValues("/health", "200", "GET"))
	if after != before+1 {
		t.Errorf("Expected request counter to increase by 1, got %v -> %v", before, after)
	}
}

func TestMetricsMiddlewareRecordsErrors(t *testing.T) {
	handler := MetricsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))

	before := testutil.ToFloat64(metrics.HttpErrorsTotal.WithLabelValues("/missing", "404", "GET"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))

	after := testutil.ToFloat64(metrics.HttpErrorsTotal.WithLabelValues("/missing", "404", "GET"))
	if after != before+1 {
		t.Errorf("Expected error counter to increase by 1, got %v -> %v", before, after)
	}
}
