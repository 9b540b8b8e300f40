package metrics

import (
	"net/http"
	"strconv"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	registry        *prom.Registry
	requestsTotal   *prom.CounterVec
	requestDuration *prom.HistogramVec
	fetchResults    *prom.CounterVec
}

// NewPrometheusRecorder constructs and registers the serving metrics.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{registry: reg}
	pr.requestsTotal = prom.NewCounterVec(prom.CounterOpts{
		Namespace: "emberoak",
		Name:      "http_requests_total",
		Help:      "HTTP requests by path and status",
	}, []string{"path", "status"})
	pr.requestDuration = prom.NewHistogramVec(prom.HistogramOpts{
		Namespace: "emberoak",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request duration by path",
		Buckets:   prom.DefBuckets,
	}, []string{"path"})
	pr.fetchResults = prom.NewCounterVec(prom.CounterOpts{
		Namespace: "emberoak",
		Name:      "content_fetch_total",
		Help:      "Content store reads by query name and outcome",
	}, []string{"query", "result"})
	reg.MustRegister(pr.requestsTotal, pr.requestDuration, pr.fetchResults)
	return pr
}

func (p *PrometheusRecorder) ObserveRequest(path string, status int, d time.Duration) {
	if p == nil || p.requestsTotal == nil {
		return
	}
	p.requestsTotal.WithLabelValues(path, strconv.Itoa(status)).Inc()
	p.requestDuration.WithLabelValues(path).Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncFetch(query string, result FetchResult) {
	if p == nil || p.fetchResults == nil {
		return
	}
	p.fetchResults.WithLabelValues(query, string(result)).Inc()
}

// Handler exposes the registry for the /metrics endpoint.
func (p *PrometheusRecorder) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}

var _ Recorder = (*PrometheusRecorder)(nil)
