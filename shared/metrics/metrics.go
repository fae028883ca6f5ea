// Package metrics holds the Prometheus collectors exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "busticket"

const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by method, route and status code.",
	}, []string{"method", "route", "code"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by method and route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	Registrations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "account_registrations_total",
		Help:      "Account registration attempts by result.",
	}, []string{"result"})

	Logins = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "account_logins_total",
		Help:      "Login attempts by result.",
	}, []string{"result"})

	Bookings = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_total",
		Help:      "Booking mutations by operation.",
	}, []string{"operation"})
)

// Result maps an error to the result label.
func Result(err error) string {
	if err != nil {
		return ResultFailure
	}

	return ResultSuccess
}
