// Package metrics exposes Prometheus collectors for HTTP traffic and the
// tracking pixel.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	TrackingEvents      *prometheus.CounterVec
	TrackingSkipped     *prometheus.CounterVec
	PaymentFallbacks    prometheus.Counter
}

// New registers every collector on reg. Pass prometheus.DefaultRegisterer in
// the server and a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		HTTPRequestsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		TrackingEvents: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "portal_tracking_events_total",
				Help: "Tracking events recorded, by target type and event",
			},
			[]string{"type", "event"},
		),
		TrackingSkipped: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "portal_tracking_skipped_total",
				Help: "Tracking requests that recorded nothing, by reason",
			},
			[]string{"reason"},
		),
		PaymentFallbacks: f.NewCounter(
			prometheus.CounterOpts{
				Name: "portal_payment_link_fallbacks_total",
				Help: "Proposals created with a placeholder payment link because the gateway failed",
			},
		),
	}
}

// Middleware records request count and latency per route template.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		m.HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		m.HTTPRequestDuration.WithLabelValues(c.Request.Method, path, status).Observe(time.Since(start).Seconds())
	}
}

// The methods below are nil-safe so use cases can run without metrics.

func (m *Metrics) RecordTrackingEvent(targetType, event string) {
	if m == nil {
		return
	}
	m.TrackingEvents.WithLabelValues(targetType, event).Inc()
}

func (m *Metrics) RecordTrackingSkipped(reason string) {
	if m == nil {
		return
	}
	m.TrackingSkipped.WithLabelValues(reason).Inc()
}

func (m *Metrics) RecordPaymentFallback() {
	if m == nil {
		return
	}
	m.PaymentFallbacks.Inc()
}
