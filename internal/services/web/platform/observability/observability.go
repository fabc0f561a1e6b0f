// Package observability provides request logging and Prometheus metrics for
// the web service.
package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/risemars/site/internal/services/web/platform/httpx"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Contact submission outcomes.
const (
	OutcomeAccepted    = "accepted"
	OutcomeInvalid     = "invalid"
	OutcomeRateLimited = "rate_limited"
	OutcomeForbidden   = "forbidden"
	OutcomeCanceled    = "canceled"
)

// Metrics holds the web service collectors.
type Metrics struct {
	RequestsTotal      *prometheus.CounterVec
	RequestDuration    *prometheus.HistogramVec
	ContactSubmissions *prometheus.CounterVec
	FeaturedStreams    prometheus.Gauge

	gatherer prometheus.Gatherer
}

// NewMetrics registers the web collectors on reg. A nil reg uses a private
// registry so tests and disabled deployments never touch the global one.
//
// Metrics:
//   - risemars_http_requests_total{view,method,status}
//   - risemars_http_request_duration_seconds{view,method}
//   - risemars_contact_submissions_total{outcome}
//   - risemars_featured_streams_active
func NewMetrics(reg *prometheus.Registry) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	factory := promauto.With(reg)
	return &Metrics{
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "risemars_http_requests_total",
				Help: "Total number of HTTP requests by resolved view",
			},
			[]string{"view", "method", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "risemars_http_request_duration_seconds",
				Help:    "HTTP request latency by resolved view",
				Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
			},
			[]string{"view", "method"},
		),
		ContactSubmissions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "risemars_contact_submissions_total",
				Help: "Contact form submissions by outcome",
			},
			[]string{"outcome"},
		),
		FeaturedStreams: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "risemars_featured_streams_active",
				Help: "Open featured-service event streams",
			},
		),
		gatherer: reg,
	}
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil || m.gatherer == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// RecordContact counts one contact submission outcome.
func (m *Metrics) RecordContact(outcome string) {
	if m == nil {
		return
	}
	m.ContactSubmissions.WithLabelValues(outcome).Inc()
}

// StreamOpened tracks one featured stream subscriber and returns its release func.
func (m *Metrics) StreamOpened() func() {
	if m == nil {
		return func() {}
	}
	m.FeaturedStreams.Inc()
	return m.FeaturedStreams.Dec
}

// Instrument records request counts and latency labelled by resolved view.
func (m *Metrics) Instrument(label httpx.RouteLabeler) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		if m == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := httpx.NewResponseRecorder(w)
			next.ServeHTTP(rec, r)
			view := viewLabel(label, r)
			m.RequestsTotal.WithLabelValues(view, r.Method, strconv.Itoa(rec.Status())).Inc()
			m.RequestDuration.WithLabelValues(view, r.Method).Observe(time.Since(start).Seconds())
		})
	}
}

// RequestLogger writes one access log entry per request.
func RequestLogger(logger *zap.Logger, label httpx.RouteLabeler) httpx.Middleware {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := httpx.NewResponseRecorder(w)
			next.ServeHTTP(rec, r)

			level := zapcore.InfoLevel
			if rec.Status() >= http.StatusInternalServerError {
				level = zapcore.ErrorLevel
			}
			logger.Log(level, "http request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("view", viewLabel(label, r)),
				zap.Int("status", rec.Status()),
				zap.Int("bytes", rec.BytesWritten()),
				zap.Duration("latency", time.Since(start)),
				zap.String("request_id", httpx.RequestIDFrom(r)),
			)
		})
	}
}

func viewLabel(label httpx.RouteLabeler, r *http.Request) string {
	if label == nil {
		return "unknown"
	}
	if view := label(r); view != "" {
		return view
	}
	return "unknown"
}
