package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	LookupOutcomesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "city_lookup_outcomes_total",
		Help: "Total number of city lookups by outcome",
	}, []string{"outcome"})
	UpstreamRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "city_lookup_upstream_requests_total",
		Help: "Total zippopotam.us requests by result",
	}, []string{"status"})
	UpstreamDurationSeconds = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "city_lookup_upstream_duration_seconds",
		Help:    "zippopotam.us request duration in seconds",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	})
	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "city_lookup_http_requests_total",
		Help: "Total number of HTTP requests served",
	}, []string{"method", "path", "status"})
	HTTPRequestDurationSeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "city_lookup_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	}, []string{"method", "path"})
)

// Upstream request results
const (
	UpstreamOK          = "ok"
	UpstreamNetworkFail = "network_error"
	UpstreamBadStatus   = "bad_status"
	UpstreamDecodeFail  = "decode_error"
)

func init() {
	prometheus.MustRegister(LookupOutcomesTotal)
	prometheus.MustRegister(UpstreamRequestsTotal)
	prometheus.MustRegister(UpstreamDurationSeconds)
	prometheus.MustRegister(HTTPRequestsTotal)
	prometheus.MustRegister(HTTPRequestDurationSeconds)
}

// Handler exposes the default registry in the Prometheus text format
func Handler() http.Handler {
	return promhttp.Handler()
}
