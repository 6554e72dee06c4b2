// Package metrics exposes HTTP and booking counters to Prometheus.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry        *prometheus.Registry
	requestCounter  *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	activeRequests  prometheus.Gauge
	hoursLogged     *prometheus.CounterVec
	rejectedLogs    *prometheus.CounterVec
	allocationMoves prometheus.Counter
}

// New registers the collectors on a private registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		requestCounter: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "clocking_http_requests_total",
				Help: "HTTP requests by route, method and status code",
			},
			[]string{"route", "method", "status"},
		),
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "clocking_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route", "method"},
		),
		activeRequests: factory.NewGauge(prometheus.GaugeOpts{
			Name: "clocking_http_active_requests",
			Help: "In-flight HTTP requests",
		}),
		hoursLogged: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "clocking_hours_logged_total",
				Help: "Hours recorded in new time logs by demand type",
			},
			[]string{"demand_type"},
		),
		rejectedLogs: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "clocking_time_logs_rejected_total",
				Help: "Time log submissions rejected by validation",
			},
			[]string{"reason"},
		),
		allocationMoves: factory.NewCounter(prometheus.CounterOpts{
			Name: "clocking_allocation_moves_total",
			Help: "Allocations dragged to a new user or date",
		}),
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware records one observation per request, labelled with the chi
// route pattern so path parameters do not explode cardinality.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.activeRequests.Inc()
		defer m.activeRequests.Dec()

		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		route := "unknown"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.requestCounter.WithLabelValues(route, r.Method, strconv.Itoa(status)).Inc()
		m.requestDuration.WithLabelValues(route, r.Method).Observe(time.Since(start).Seconds())
	})
}

func (m *Metrics) LogRecorded(demandType string, hours float64) {
	m.hoursLogged.WithLabelValues(demandType).Add(hours)
}

func (m *Metrics) LogRejected(reason string) {
	m.rejectedLogs.WithLabelValues(reason).Inc()
}

func (m *Metrics) AllocationMoved() {
	m.allocationMoves.Inc()
}
