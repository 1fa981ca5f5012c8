package observability_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hotel_recs/internal/adapters/observability"
)

func TestMetricsRegistryAndHandler(t *testing.T) {
	reg := observability.InitRegistry()

	// record one sample so counters are non-zero
	observability.ObserveHTTP("/recommend", "POST", 200, 12*time.Millisecond)
	observability.ObserveEmbedding("embed", nil, 30*time.Millisecond)

	mh := observability.MetricsHandler(reg)
	req := httptest.NewRequest("GET", "/metrics", nil)
	rr := httptest.NewRecorder()
	mh.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("metrics status: %d", rr.Code)
	}
	body, _ := io.ReadAll(rr.Body)
	out := string(body)
	if !strings.Contains(out, "hotels_http_requests_total") {
		t.Fatalf("expected hotels_http_requests_total in output")
	}
	if !strings.Contains(out, "hotels_embedding_requests_total") {
		t.Fatalf("expected hotels_embedding_requests_total in output")
	}
}
