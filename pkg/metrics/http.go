package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// HTTPMetrics records request metadata for the API surface.
type HTTPMetrics struct {
	duration *prometheus.HistogramVec
	requests *prometheus.CounterVec
	checkout *prometheus.CounterVec
}

// NewHTTPMetrics registers the HTTP metrics on the provided registerer.
func NewHTTPMetrics(reg prometheus.Registerer) *HTTPMetrics {
	if reg == nil {
		return &HTTPMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total HTTP requests served.",
	}, []string{"method", "route", "status"})
	checkout := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "checkout_handoffs_total",
		Help: "Checkout hand-offs generated, labeled by payment method.",
	}, []string{"payment_method"})
	reg.MustRegister(duration, requests, checkout)
	return &HTTPMetrics{
		duration: duration,
		requests: requests,
		checkout: checkout,
	}
}

// ObserveRequest records one served request.
func (h *HTTPMetrics) ObserveRequest(method, route string, status int, duration time.Duration) {
	if h == nil || h.duration == nil {
		return
	}
	route = normalizeLabel(route)
	h.duration.WithLabelValues(method, route).Observe(duration.Seconds())
	h.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}

// IncCheckoutHandoff increments the checkout counter for a payment method.
func (h *HTTPMetrics) IncCheckoutHandoff(paymentMethod string) {
	if h == nil || h.checkout == nil {
		return
	}
	h.checkout.WithLabelValues(normalizeLabel(paymentMethod)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
