// Package metrics exposes business and HTTP counters through Prometheus.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"vidgate/internal/domain/entity"
	"vidgate/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "vidgate"

// Metrics holds all Prometheus collectors and implements service.MetricsRecorder.
type Metrics struct {
	registry *prometheus.Registry

	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Business metrics
	QuotaDecisionsTotal *prometheus.CounterVec
	BonusGrantsTotal    *prometheus.CounterVec
	DeliveriesTotal     *prometheus.CounterVec
	LoginOutcomesTotal  *prometheus.CounterVec
	LiveLoginSessions   prometheus.Gauge
}

// NewRegistry creates the registry the process exports on /metrics.
func NewRegistry() *prometheus.Registry {
	return prometheus.NewRegistry()
}

// New creates and registers all collectors.
func New(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		registry: registry,
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		QuotaDecisionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "quota_decisions_total",
				Help:      "Quota decisions by verdict",
			},
			[]string{"verdict"},
		),
		BonusGrantsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "bonus_grants_total",
				Help:      "Temporary premium grants by the path that applied them",
			},
			[]string{"path"},
		),
		DeliveriesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "deliveries_total",
				Help:      "Item deliveries by status",
			},
			[]string{"status"},
		),
		LoginOutcomesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "login_outcomes_total",
				Help:      "Terminal login outcomes",
			},
			[]string{"outcome"},
		),
		LiveLoginSessions: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "login_sessions_live",
				Help:      "Login sessions currently held in memory",
			},
		),
	}

	registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.QuotaDecisionsTotal,
		m.BonusGrantsTotal,
		m.DeliveriesTotal,
		m.LoginOutcomesTotal,
		m.LiveLoginSessions,
	)

	return m
}

// NewRecorder exposes m as the use cases' recorder.
func NewRecorder(m *Metrics) service.MetricsRecorder {
	return m
}

func (m *Metrics) ObserveDecision(verdict entity.Verdict) {
	m.QuotaDecisionsTotal.WithLabelValues(verdict.String()).Inc()
}

func (m *Metrics) ObserveBonusGrant(path string) {
	m.BonusGrantsTotal.WithLabelValues(path).Inc()
}

func (m *Metrics) ObserveDelivery(success bool) {
	status := "success"
	if !success {
		status = "failure"
	}

	m.DeliveriesTotal.WithLabelValues(status).Inc()
}

func (m *Metrics) ObserveLoginOutcome(outcome string) {
	m.LoginOutcomesTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) SetLiveLoginSessions(n int) {
	m.LiveLoginSessions.Set(float64(n))
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware instruments echo requests. The route template is used as path label
// so per-user URLs do not explode cardinality.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			path := c.Path()
			if path == "" {
				path = "unmatched"
			}

			status := c.Response().Status
			if httpErr, ok := err.(*echo.HTTPError); ok {
				status = httpErr.Code
			}

			m.HTTPRequestsTotal.WithLabelValues(c.Request().Method, path, strconv.Itoa(status)).Inc()
			m.HTTPRequestDuration.WithLabelValues(c.Request().Method, path).Observe(time.Since(start).Seconds())

			return err
		}
	}
}
