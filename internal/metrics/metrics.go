package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "twitch_client"

// Metrics holds Prometheus metrics for calls made to Twitch.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	RequestsTotal       *prometheus.CounterVec
	RequestDuration     *prometheus.HistogramVec
	TokenRequestsTotal  *prometheus.CounterVec
	ReportedErrorsTotal prometheus.Counter
}

// New creates and registers the client metrics on the given registry.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "Total number of requests sent to Twitch.",
		}, []string{"endpoint", "status_code"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_duration_seconds",
			Help:      "Duration of requests sent to Twitch in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"endpoint"}),
		TokenRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "token_requests_total",
			Help:      "Total number of client credentials token requests.",
		}, []string{"result"}),
		ReportedErrorsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reported_errors_total",
			Help:      "Total number of upstream errors forwarded to the error reporter.",
		}),
	}

	reg.MustRegister(m.RequestsTotal, m.RequestDuration, m.TokenRequestsTotal, m.ReportedErrorsTotal)
	return m
}

// ObserveRequest records one finished upstream request. statusCode is "error"
// when no response was received.
func (m *Metrics) ObserveRequest(endpoint, statusCode string, d time.Duration) {
	if m == nil {
		return
	}
	m.RequestsTotal.WithLabelValues(endpoint, statusCode).Inc()
	m.RequestDuration.WithLabelValues(endpoint).Observe(d.Seconds())
}

func (m *Metrics) ObserveTokenRequest(result string) {
	if m == nil {
		return
	}
	m.TokenRequestsTotal.WithLabelValues(result).Inc()
}

func (m *Metrics) IncReportedErrors() {
	if m == nil {
		return
	}
	m.ReportedErrorsTotal.Inc()
}
