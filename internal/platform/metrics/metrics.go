package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	GeoSearchesTotal    *prometheus.CounterVec
	RateLimitRejections prometheus.Counter
}

// New creates and registers all Prometheus metrics on the default registry.
func New() *Metrics {
	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "orgdir_http_requests_total",
			Help: "Total HTTP requests by method, route and status code",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "orgdir_http_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		GeoSearchesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "orgdir_geo_searches_total",
			Help: "Geo searches served, by kind (radius or rectangle)",
		}, []string{"kind"}),
		RateLimitRejections: promauto.NewCounter(prometheus.CounterOpts{
			Name: "orgdir_rate_limit_rejections_total",
			Help: "Requests rejected by the rate limiter",
		}),
	}
}

// ObserveRequest records one finished HTTP request.
func (m *Metrics) ObserveRequest(method, route, status string, elapsed time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}

// IncGeoSearch counts one geo search of the given kind.
func (m *Metrics) IncGeoSearch(kind string) {
	m.GeoSearchesTotal.WithLabelValues(kind).Inc()
}

// IncRateLimitRejection counts one 429 response.
func (m *Metrics) IncRateLimitRejection() {
	m.RateLimitRejections.Inc()
}
