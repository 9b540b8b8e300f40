package metrics

import (
	"net/http/httptest"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestPrometheusRecorder_RecordsAndExposes(t *testing.T) {
	reg := prom.NewRegistry()
	rec := NewPrometheusRecorder(reg)

	rec.ObserveRequest("/menu", 200, 25*time.Millisecond)
	rec.ObserveRequest("/menu", 200, 10*time.Millisecond)
	rec.IncFetch("menuItems", FetchOK)
	rec.IncFetch("events", FetchError)

	req := httptest.NewRequest("GET", "/metrics", nil)
	w := httptest.NewRecorder()
	rec.Handler().ServeHTTP(w, req)

	body := w.Body.String()
	require.Contains(t, body, `emberoak_http_requests_total{path="/menu",status="200"} 2`)
	require.Contains(t, body, `emberoak_content_fetch_total{query="menuItems",result="ok"} 1`)
	require.Contains(t, body, `emberoak_content_fetch_total{query="events",result="error"} 1`)
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *PrometheusRecorder
	rec.ObserveRequest("/", 200, time.Millisecond)
	rec.IncFetch("homePage", FetchEmpty)
}
