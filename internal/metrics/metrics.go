// Package metrics exposes Prometheus collectors for the web server.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder owns every collector and the registry they live in.
type Recorder struct {
	namespace string
	buckets   []float64
	registry  *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	chartRender         *prometheus.HistogramVec
	themeChanges        *prometheus.CounterVec
	reportExports       *prometheus.CounterVec
	reportInFlight      prometheus.Gauge
}

// Option applies a configuration option to the Recorder.
type Option func(*Recorder)

// WithNamespace sets the namespace for all metrics.
func WithNamespace(namespace string) Option {
	return func(r *Recorder) {
		if namespace != "" {
			r.namespace = namespace
		}
	}
}

// WithHistogramBuckets sets custom histogram buckets for latency metrics.
func WithHistogramBuckets(buckets []float64) Option {
	return func(r *Recorder) {
		if len(buckets) > 0 {
			r.buckets = buckets
		}
	}
}

// WithRegistry registers collectors on registry instead of a fresh one.
func WithRegistry(registry *prometheus.Registry) Option {
	return func(r *Recorder) {
		if registry != nil {
			r.registry = registry
		}
	}
}

// NewRecorder creates the collectors. Each Recorder gets its own registry
// unless one is supplied, so tests never collide on registration.
func NewRecorder(opts ...Option) *Recorder {
	r := &Recorder{
		namespace: "synthml",
		buckets:   prometheus.DefBuckets,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.registry == nil {
		r.registry = prometheus.NewRegistry()
		r.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	factory := promauto.With(r.registry)
	r.httpRequests = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: r.namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by method, route and status.",
	}, []string{"method", "route", "status"})
	r.httpRequestDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: r.namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route.",
		Buckets:   r.buckets,
	}, []string{"route"})
	r.chartRender = factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: r.namespace,
		Name:      "chart_render_duration_seconds",
		Help:      "Time spent building chart SVG or geometry.",
		Buckets:   r.buckets,
	}, []string{"chart"})
	r.themeChanges = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: r.namespace,
		Name:      "theme_changes_total",
		Help:      "Theme preference updates by chosen theme.",
	}, []string{"theme"})
	r.reportExports = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: r.namespace,
		Name:      "report_exports_total",
		Help:      "Data-quality report exports by result.",
	}, []string{"result"})
	r.reportInFlight = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: r.namespace,
		Name:      "report_exports_in_flight",
		Help:      "Report builds currently holding a slot.",
	})
	return r
}

// ObserveRequest records one finished HTTP request.
func (r *Recorder) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	r.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.httpRequestDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}

// ObserveChart records how long a chart took to build.
func (r *Recorder) ObserveChart(chart string, elapsed time.Duration) {
	r.chartRender.WithLabelValues(chart).Observe(elapsed.Seconds())
}

// ThemeChanged counts a persisted theme update.
func (r *Recorder) ThemeChanged(theme string) {
	r.themeChanges.WithLabelValues(theme).Inc()
}

// Report export results.
const (
	ReportOK       = "ok"
	ReportError    = "error"
	ReportRejected = "rejected"
)

// ReportExported counts a report export attempt by result.
func (r *Recorder) ReportExported(result string) {
	r.reportExports.WithLabelValues(result).Inc()
}

// ReportStarted and ReportFinished bracket a report build.
func (r *Recorder) ReportStarted()  { r.reportInFlight.Inc() }
func (r *Recorder) ReportFinished() { r.reportInFlight.Dec() }

// Registry returns the registry the collectors were registered on.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
